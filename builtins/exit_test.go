package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanux-os/nsh/core/config"
	"github.com/nanux-os/nsh/core/sys"
	"github.com/nanux-os/nsh/core/sys/systest"
	"github.com/nanux-os/nsh/core/term"
)

func TestExit(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		code int
	}{
		{"no arg", []string{"exit"}, 0},
		{"digit", []string{"exit", "5"}, 5},
		{"leading digit only", []string{"exit", "42"}, 4},
		{"non numeric", []string{"exit", "foo"}, 0},
		{"empty arg", []string{"exit", ""}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &systest.Cmd{}
			cmd.Run(func(g sys.Gateway) {
				Exit(&Proc{Argv: tc.argv, Out: term.NewConsole(g), Sys: g, Cfg: config.Default()})
			})

			assert.True(t, cmd.Exited)
			assert.Equal(t, tc.code, cmd.ExitCode)
			assert.Contains(t, cmd.Output(), "Exiting shell.")
		})
	}
}
