// Package logger is a standardized event logging framework for the
// shell frontends. Events are append-only and newline-delimited JSON so
// they can be grepped and replayed by external tooling.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// LogRecorder is a callback that stores events in an external
// datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures interaction events for a shell frontend.
type Logger struct {
	Record LogRecorder
}

// NewJSONLinesLogger creates a Logger that exports events in newline
// delimited JSON object format.
func NewJSONLinesLogger(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogger discards all events.
func NewNopLogger() *Logger {
	return &Logger{Record: func(*LogEntry) error { return nil }}
}

// LogEntry is a single event. Exactly one of the event fields is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart   *SessionStart   `json:"session_start,omitempty"`
	SessionEnd     *SessionEnd     `json:"session_end,omitempty"`
	CommandRun     *CommandRun     `json:"command_run,omitempty"`
	SpawnResult    *SpawnResult    `json:"spawn_result,omitempty"`
	UnknownCommand *UnknownCommand `json:"unknown_command,omitempty"`
}

// SessionStart records a new interactive session.
type SessionStart struct {
	Frontend   string `json:"frontend"`
	RemoteAddr string `json:"remote_addr,omitempty"`
}

// SessionEnd records the code the session exited with.
type SessionEnd struct {
	ExitCode int `json:"exit_code"`
}

// CommandRun records one dispatched command cycle.
type CommandRun struct {
	Argv    []string `json:"argv"`
	Builtin bool     `json:"builtin"`
}

// SpawnResult records the outcome of handing a command to the kernel.
type SpawnResult struct {
	Path string `json:"path"`
	PID  int    `json:"pid"`
}

// UnknownCommand records a dispatch that matched neither a builtin nor
// a spawnable program.
type UnknownCommand struct {
	Command string `json:"command"`
}

func (l *Logger) record(sessionID string, le *LogEntry) error {
	le.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond)
	le.SessionID = sessionID
	return l.Record(le)
}

// NewSession creates a logger with an attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger tags events with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

func (s *SessionLogger) SessionStart(frontend, remoteAddr string) error {
	return s.logger.record(s.sessionID, &LogEntry{
		SessionStart: &SessionStart{Frontend: frontend, RemoteAddr: remoteAddr},
	})
}

func (s *SessionLogger) SessionEnd(exitCode int) error {
	return s.logger.record(s.sessionID, &LogEntry{
		SessionEnd: &SessionEnd{ExitCode: exitCode},
	})
}

func (s *SessionLogger) CommandRun(argv []string, builtin bool) error {
	return s.logger.record(s.sessionID, &LogEntry{
		CommandRun: &CommandRun{Argv: argv, Builtin: builtin},
	})
}

func (s *SessionLogger) SpawnResult(path string, pid int) error {
	return s.logger.record(s.sessionID, &LogEntry{
		SpawnResult: &SpawnResult{Path: path, PID: pid},
	})
}

func (s *SessionLogger) UnknownCommand(command string) error {
	return s.logger.record(s.sessionID, &LogEntry{
		UnknownCommand: &UnknownCommand{Command: command},
	})
}
