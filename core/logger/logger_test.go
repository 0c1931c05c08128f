package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLinesLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	session := NewJSONLinesLogger(buf).NewSession()

	require.NoError(t, session.CommandRun([]string{"echo", "hi"}, true))
	require.NoError(t, session.SpawnResult("/bin/hello", 42))
	require.NoError(t, session.UnknownCommand("zzz"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entries []LogEntry
	for _, line := range lines {
		var le LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &le))
		entries = append(entries, le)
	}

	require.NotNil(t, entries[0].CommandRun)
	assert.Equal(t, []string{"echo", "hi"}, entries[0].CommandRun.Argv)
	assert.True(t, entries[0].CommandRun.Builtin)

	require.NotNil(t, entries[1].SpawnResult)
	assert.Equal(t, "/bin/hello", entries[1].SpawnResult.Path)
	assert.Equal(t, 42, entries[1].SpawnResult.PID)

	require.NotNil(t, entries[2].UnknownCommand)
	assert.Equal(t, "zzz", entries[2].UnknownCommand.Command)

	// All events carry the same session ID and a timestamp.
	for _, le := range entries {
		assert.Equal(t, entries[0].SessionID, le.SessionID)
		assert.NotZero(t, le.TimestampMicros)
	}
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	l := NewNopLogger()
	assert.NotEqual(t, l.NewSession().sessionID, l.NewSession().sessionID)
}

func TestNopLogger(t *testing.T) {
	session := NewNopLogger().NewSession()
	assert.NoError(t, session.SessionStart("console", ""))
	assert.NoError(t, session.SessionEnd(0))
}
