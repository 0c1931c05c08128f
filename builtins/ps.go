package builtins

import "github.com/nanux-os/nsh/core/term"

// The kernel exposes no process-table query to userspace, so ps shows
// the two processes every boot is guaranteed to have.
// TODO: replace with a live listing once the kernel grows a proc-query
// syscall.
const psTable = `  PID  PPID  NAME
  ---  ----  ----
    1     0  init
    2     1  shell
`

// Ps reports a snapshot of system processes.
func Ps(p *Proc) int {
	p.Out.Print("\n")
	p.Out.Colorf(term.Cyan, "Running Processes:\n\n")
	p.Out.Print(psTable)
	p.Out.Print("\n")
	return 0
}

func init() {
	register("ps", "List running processes", Ps)
}
