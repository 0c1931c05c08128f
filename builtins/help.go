package builtins

import "github.com/nanux-os/nsh/core/term"

// Help prints the command listing: every registered builtin plus the
// external programs the configuration says ship with the kernel image.
func Help(p *Proc) int {
	p.Out.Print("\n")
	p.Out.Colorf(term.Cyan, "Available Commands:\n\n")

	p.Out.Print("  Built-in Commands:\n")
	for _, e := range List() {
		p.Out.Printf("    %-8s - %s\n", e.Name, e.Short)
	}

	if p.Cfg != nil && len(p.Cfg.Programs) > 0 {
		p.Out.Print("\n  External Programs:\n")
		for _, prog := range p.Cfg.Programs {
			p.Out.Printf("    %-8s - %s\n", prog.Name, prog.Description)
		}
	}

	p.Out.Print("\n")
	return 0
}

func init() {
	register("help", "Show this help message", Help)
}
