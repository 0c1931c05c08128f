package builtins

import "github.com/nanux-os/nsh/core/term"

// Exit leaves the shell through the kernel's exit primitive. The code
// is the first byte of the argument when it is a decimal digit, zero in
// every other case.
func Exit(p *Proc) int {
	code := 0
	if len(p.Argv) > 1 && len(p.Argv[1]) > 0 {
		if c := p.Argv[1][0]; c >= '0' && c <= '9' {
			code = int(c - '0')
		}
	}

	if p.Log != nil {
		p.Log.SessionEnd(code)
	}

	p.Out.Colorf(term.Green, "Exiting shell.\n")
	p.Sys.Exit(code)

	// Exit diverges; this is unreachable.
	return code
}

func init() {
	register("exit", "Exit the shell", Exit)
}
