// Package shell implements the interactive command loop that runs as
// the kernel console's userspace shell: prompt, raw line editing,
// tokenizing, builtin dispatch and external spawn.
package shell

import (
	"github.com/nanux-os/nsh/builtins"
	"github.com/nanux-os/nsh/core/config"
	"github.com/nanux-os/nsh/core/logger"
	"github.com/nanux-os/nsh/core/sys"
	"github.com/nanux-os/nsh/core/term"
)

// Shell owns the one input buffer and argument vector of the session.
// It is single threaded: one byte is consumed and fully reacted to
// before the next is requested, one command completes before the next
// prompt is shown.
type Shell struct {
	sys    sys.Gateway
	out    *term.Console
	cfg    *config.Configuration
	log    *logger.SessionLogger
	editor *LineEditor
	argv   [][]byte
}

// New creates a shell on the given gateway. A nil slog discards events.
func New(g sys.Gateway, cfg *config.Configuration, slog *logger.SessionLogger) *Shell {
	if slog == nil {
		slog = logger.NewNopLogger().NewSession()
	}

	out := term.NewConsole(g)
	return &Shell{
		sys:    g,
		out:    out,
		cfg:    cfg,
		log:    slog,
		editor: NewLineEditor(g, out),
		argv:   make([][]byte, 0, MaxArgs),
	}
}

// Console exposes the shell's output console, e.g. to enable colors
// when the session is a PTY.
func (s *Shell) Console() *term.Console {
	return s.out
}

// Run executes the prompt-read-tokenize-dispatch loop. It returns when
// the input closes; the exit builtin leaves through the gateway and
// never comes back here.
func (s *Shell) Run() {
	s.banner()

	for {
		s.prompt()

		line, ok := s.editor.ReadLine()
		if !ok {
			return
		}

		argv := Tokenize(line, s.argv[:0])
		if len(argv) == 0 {
			continue
		}

		s.dispatch(argv)
	}
}

func (s *Shell) dispatch(argv [][]byte) {
	// The argument views die with the input buffer at the next prompt;
	// the string snapshots made here are scoped to this one dispatch.
	args := make([]string, len(argv))
	for i, a := range argv {
		args[i] = string(a)
	}

	if fn := builtins.Lookup(args[0]); fn != nil {
		s.log.CommandRun(args, true)
		fn(&builtins.Proc{
			Argv: args,
			Out:  s.out,
			Sys:  s.sys,
			Cfg:  s.cfg,
			Log:  s.log,
		})
		return
	}

	s.log.CommandRun(args, false)
	s.spawnExternal(args[0])
}

func (s *Shell) banner() {
	s.out.Print("\n")
	s.out.Colorf(term.Magenta, "%s", s.cfg.Motd)
	s.out.Print("\n")
}

func (s *Shell) prompt() {
	s.out.Colorf(term.Magenta, "%s", s.cfg.Prompt.Name)
	s.out.Print(" ")
	s.out.Colorf(term.Cyan, "%s", s.cfg.Prompt.Symbol)
	s.out.Print(" ")
}
