// Package builtins implements the commands the shell executes itself
// rather than handing to the kernel.
package builtins

import (
	"sort"

	"github.com/nanux-os/nsh/core/config"
	"github.com/nanux-os/nsh/core/logger"
	"github.com/nanux-os/nsh/core/sys"
	"github.com/nanux-os/nsh/core/term"
)

// Proc is the execution context for one dispatched command cycle. The
// argument strings are snapshots of the shell's input buffer and are
// only meaningful until the next prompt.
type Proc struct {
	// Argv holds the command name and its arguments.
	Argv []string
	// Out is the console the builtin writes to.
	Out *term.Console
	// Sys is the kernel gateway; only exit uses it, and diverges.
	Sys sys.Gateway
	// Cfg is the active configuration.
	Cfg *config.Configuration
	// Log records dispatch events. May be nil.
	Log *logger.SessionLogger
}

// Func runs a builtin and reports its exit status.
type Func func(p *Proc) int

// Entry describes a registered builtin.
type Entry struct {
	Name  string
	Short string
	Run   Func
}

// table holds every registered builtin keyed by command name.
var table = make(map[string]Entry)

func register(name, short string, fn Func) {
	table[name] = Entry{Name: name, Short: short, Run: fn}
}

// Lookup returns the builtin registered under name, or nil.
func Lookup(name string) Func {
	if e, ok := table[name]; ok {
		return e.Run
	}
	return nil
}

// List returns all builtins sorted by name.
func List() []Entry {
	out := make([]Entry, 0, len(table))
	for _, e := range table {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
