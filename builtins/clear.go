package builtins

import "github.com/nanux-os/nsh/core/term"

// Clear wipes the screen and homes the cursor, VT100 style.
func Clear(p *Proc) int {
	p.Out.Print(term.ClearScreen)
	p.Out.Print(term.CursorHome)
	return 0
}

func init() {
	register("clear", "Clear the screen", Clear)
}
