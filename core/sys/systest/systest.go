// Package systest provides a scripted gateway for exercising shell
// components without a kernel underneath.
package systest

import (
	"bytes"
	"strings"
	"sync"

	"github.com/nanux-os/nsh/core/sys"
)

// Cmd drives code that consumes a Gateway with scripted input, similar
// to exec.Cmd. The zero value yields no input and fails every spawn.
type Cmd struct {
	// Input holds the bytes the gateway's stdin will yield before
	// reporting end of input.
	Input string

	// SpawnFn handles spawn requests; nil fails them all.
	SpawnFn sys.SpawnFunc

	// ExitCode and Exited record a gateway Exit call.
	ExitCode int
	Exited   bool

	output bytes.Buffer
	gw     *sys.StreamGateway
}

// Gateway returns the scripted gateway, building it on first use.
// Stdout and stderr share one capture buffer.
func (c *Cmd) Gateway() sys.Gateway {
	if c.gw == nil {
		c.gw = &sys.StreamGateway{
			In:      strings.NewReader(c.Input),
			Out:     &c.output,
			SpawnFn: c.SpawnFn,
			ExitFn: func(code int) {
				c.ExitCode = code
				c.Exited = true
			},
		}
	}
	return c.gw
}

// Run executes main with the scripted gateway on its own goroutine and
// waits for it to finish. A gateway Exit therefore stops main the way
// the kernel primitive would, without tearing down the test.
func (c *Cmd) Run(main func(g sys.Gateway)) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		main(c.Gateway())
	}()
	wg.Wait()
}

// Output returns everything written to stdout and stderr so far.
func (c *Cmd) Output() string {
	return c.output.String()
}
