package sys

import (
	"io"
	"runtime"
)

// StreamGateway adapts a byte stream pair (an SSH session, a scripted
// test input) to the Gateway contract.
type StreamGateway struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// SpawnFn handles Spawn calls. A nil SpawnFn fails every spawn.
	SpawnFn SpawnFunc

	// ExitFn observes the code passed to Exit before the calling
	// goroutine is stopped. May be nil.
	ExitFn func(code int)
}

var _ Gateway = (*StreamGateway)(nil)

func (g *StreamGateway) Read(fd int, p []byte) int {
	if fd != Stdin || g.In == nil {
		return -1
	}
	n, err := g.In.Read(p)
	switch {
	case n > 0:
		return n
	case err == io.EOF:
		return 0
	case err != nil:
		return -1
	default:
		return n
	}
}

func (g *StreamGateway) Write(fd int, p []byte) int {
	var w io.Writer
	switch fd {
	case Stdout:
		w = g.Out
	case Stderr:
		w = g.ErrOut
		if w == nil {
			w = g.Out
		}
	default:
		return -1
	}
	if w == nil {
		return -1
	}
	n, err := w.Write(p)
	if err != nil {
		return -1
	}
	return n
}

func (g *StreamGateway) Spawn(path string) int {
	if g.SpawnFn == nil {
		return -1
	}
	return g.SpawnFn(path)
}

// Exit reports code to ExitFn and stops the calling goroutine. Like the
// kernel primitive it never returns; the shell must run on a goroutine
// whose completion the frontend can observe.
func (g *StreamGateway) Exit(code int) {
	if g.ExitFn != nil {
		g.ExitFn(code)
	}
	runtime.Goexit()
}
