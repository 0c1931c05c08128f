//go:build linux
// +build linux

package sys

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// HostGateway binds the Gateway contract to the host kernel so the
// shell can run on an ordinary Linux console.
type HostGateway struct {
	// OnExit runs right before the process terminates, e.g. to restore
	// the terminal state. May be nil.
	OnExit func()
}

// NewHostGateway returns a gateway backed by the host kernel.
func NewHostGateway() (*HostGateway, error) {
	return &HostGateway{}, nil
}

var _ Gateway = (*HostGateway)(nil)

func (g *HostGateway) Read(fd int, p []byte) int {
	n, err := unix.Read(fd, p)
	if err != nil {
		return -1
	}
	return n
}

func (g *HostGateway) Write(fd int, p []byte) int {
	n, err := unix.Write(fd, p)
	if err != nil {
		return -1
	}
	return n
}

// Spawn starts the program detached, mirroring the kernel's
// fire-and-forget contract. The child is reaped on a background
// goroutine so it does not linger as a zombie.
func (g *HostGateway) Spawn(path string) int {
	cmd := exec.Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return -1
	}
	go cmd.Wait()
	return cmd.Process.Pid
}

func (g *HostGateway) Exit(code int) {
	if g.OnExit != nil {
		g.OnExit()
	}
	os.Exit(code)
}

// MakeRaw switches the terminal on fd into the mode the shell expects:
// the editor supplies its own echo and erase handling, so canonical
// input and local echo are turned off. Input CR->NL translation stays
// on so Enter arrives as '\n'. The returned func restores the previous
// state.
func MakeRaw(fd int) (restore func(), err error) {
	old, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}

	return func() {
		unix.IoctlSetTermios(fd, unix.TCSETS, old)
	}, nil
}
