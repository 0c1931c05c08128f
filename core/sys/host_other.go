//go:build !linux
// +build !linux

package sys

import "errors"

var errLinuxOnly = errors.New("the host console gateway requires Linux")

// HostGateway is only implemented for Linux consoles.
type HostGateway struct {
	OnExit func()
}

func NewHostGateway() (*HostGateway, error) {
	return nil, errLinuxOnly
}

var _ Gateway = (*HostGateway)(nil)

func (g *HostGateway) Read(fd int, p []byte) int  { return -1 }
func (g *HostGateway) Write(fd int, p []byte) int { return -1 }
func (g *HostGateway) Spawn(path string) int      { return -1 }
func (g *HostGateway) Exit(code int)              {}

func MakeRaw(fd int) (func(), error) {
	return nil, errLinuxOnly
}
