package shell

import (
	"github.com/nanux-os/nsh/core/sys"
	"github.com/nanux-os/nsh/core/term"
)

// MaxLine is the input buffer capacity. A line never holds more than
// MaxLine-1 bytes; the editor truncates rather than erroring.
const MaxLine = 512

const (
	byteBackspace = 0x08
	byteDelete    = 0x7f
	byteNewline   = '\n'
	byteReturn    = '\r'
)

// LineEditor reads one line at a time from the gateway, byte by byte,
// handling echo and erase itself: the kernel console has no line
// discipline.
type LineEditor struct {
	sys sys.Gateway
	out *term.Console
	buf [MaxLine]byte
}

func NewLineEditor(g sys.Gateway, out *term.Console) *LineEditor {
	return &LineEditor{sys: g, out: out}
}

// ReadLine blocks until a full line is available and returns a view
// into the editor's buffer. The view is only valid until the next call.
//
// A read result <= 0 completes the line early with whatever was
// accumulated; ok is false only when it happens before any byte of a
// new line arrived, meaning the input is gone for good.
func (e *LineEditor) ReadLine() (line []byte, ok bool) {
	cursor := 0
	for {
		b := e.buf[cursor : cursor+1]
		if n := e.sys.Read(sys.Stdin, b); n <= 0 {
			return e.buf[:cursor], cursor > 0
		}

		switch c := b[0]; {
		case c == byteNewline || c == byteReturn:
			e.out.Print("\n")
			return e.buf[:cursor], true

		case c == byteBackspace || c == byteDelete:
			if cursor > 0 {
				cursor--
				e.out.Print(term.EraseChar)
			}

		case c >= 0x20 && c <= 0x7e:
			cursor++
			e.out.Write(b)
			if cursor >= MaxLine-1 {
				// Buffer full: hand back the truncated line.
				return e.buf[:cursor], true
			}
		}
		// Everything else (control bytes, escape sequences) is dropped.
	}
}
