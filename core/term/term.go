// Package term implements unbuffered console output helpers on top of
// the syscall gateway.
package term

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nanux-os/nsh/core/sys"
)

// Control sequences understood by the kernel's VT100-compatible
// console.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"

	// EraseChar backs over the character left of the cursor and blanks
	// it: backspace, space, backspace.
	EraseChar = "\b \b"
)

// The console's fixed palette. Escape emission is gated by
// Console.Colors rather than the process environment, so output is
// identical wherever the code runs.
var (
	Red     = newColor(color.FgRed)
	Green   = newColor(color.FgGreen)
	Yellow  = newColor(color.FgYellow)
	Blue    = newColor(color.FgBlue)
	Magenta = newColor(color.FgMagenta)
	Cyan    = newColor(color.FgCyan)
	White   = newColor(color.FgWhite)
)

func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var errWrite = errors.New("console write failed")

// Console writes to a single gateway descriptor. Writes go straight to
// the gateway; there is no buffering and no retry.
type Console struct {
	sys sys.Gateway
	fd  int

	// Colors enables ANSI color output. Leave off unless the session
	// is a PTY.
	Colors bool
}

// NewConsole returns a console on the gateway's stdout.
func NewConsole(g sys.Gateway) *Console {
	return NewConsoleFd(g, sys.Stdout)
}

// NewConsoleFd returns a console on an arbitrary output descriptor.
func NewConsoleFd(g sys.Gateway, fd int) *Console {
	return &Console{sys: g, fd: fd}
}

var _ io.Writer = (*Console)(nil)

// Write implements io.Writer over the gateway's write primitive.
func (c *Console) Write(p []byte) (int, error) {
	n := c.sys.Write(c.fd, p)
	if n < 0 {
		return 0, errWrite
	}
	return n, nil
}

func (c *Console) Print(s string) {
	c.sys.Write(c.fd, []byte(s))
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c, format, a...)
}

// Colorf prints with col when colors are on, plainly otherwise.
func (c *Console) Colorf(col *color.Color, format string, a ...interface{}) {
	if c.Colors {
		col.Fprintf(c, format, a...)
		return
	}
	fmt.Fprintf(c, format, a...)
}
