package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanux-os/nsh/core/sys"
	"github.com/nanux-os/nsh/core/term"
)

func testEditor(input string) (*LineEditor, *bytes.Buffer) {
	out := &bytes.Buffer{}
	g := &sys.StreamGateway{In: strings.NewReader(input), Out: out}
	return NewLineEditor(g, term.NewConsole(g)), out
}

func TestReadLine(t *testing.T) {
	editor, out := testEditor("hello\n")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "hello", string(line))
	assert.Equal(t, "hello\n", out.String(), "every byte is echoed")
}

func TestReadLineBackspace(t *testing.T) {
	editor, out := testEditor("abcd\x08\x08!\n")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "ab!", string(line))
	assert.Equal(t, "abcd"+term.EraseChar+term.EraseChar+"!\n", out.String())
}

func TestReadLineBackspaceEmpty(t *testing.T) {
	// Backspace at column zero is a no-op and echoes nothing.
	editor, out := testEditor("\x08hi\n")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "hi", string(line))
	assert.Equal(t, "hi\n", out.String())
}

func TestReadLineErasesToShorterLine(t *testing.T) {
	const n = 10
	editor, _ := testEditor(strings.Repeat("x", n) + "\x08\n")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Len(t, line, n-1)
}

func TestReadLineTruncatesAtCapacity(t *testing.T) {
	editor, _ := testEditor(strings.Repeat("a", 600) + "\n")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Len(t, line, MaxLine-1, "the line is truncated, not an error")

	// The overflow bytes become the start of the next line.
	line, ok = editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, 600-(MaxLine-1), len(line))
}

func TestReadLineDropsControlBytes(t *testing.T) {
	editor, _ := testEditor("a\x01\x02b\n")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "ab", string(line))
}

func TestReadLinePartialOnEOF(t *testing.T) {
	editor, _ := testEditor("partial")

	// A failed read with content completes the line.
	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "partial", string(line))

	// With nothing accumulated the input is gone.
	line, ok = editor.ReadLine()
	assert.False(t, ok)
	assert.Empty(t, line)
}

func TestReadLineCarriageReturn(t *testing.T) {
	// Raw terminals send CR for the Enter key.
	editor, _ := testEditor("hello\r")

	line, ok := editor.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "hello", string(line))
}
