package builtins

// Echo prints its arguments joined by single spaces. With no arguments
// it prints an empty line.
func Echo(p *Proc) int {
	for i, arg := range p.Argv[1:] {
		if i > 0 {
			p.Out.Print(" ")
		}
		p.Out.Print(arg)
	}
	p.Out.Print("\n")
	return 0
}

func init() {
	register("echo", "Print arguments", Echo)
}
