package sys

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamGatewayRead(t *testing.T) {
	g := &StreamGateway{In: strings.NewReader("ab")}

	buf := make([]byte, 1)
	assert.Equal(t, 1, g.Read(Stdin, buf))
	assert.Equal(t, byte('a'), buf[0])
	assert.Equal(t, 1, g.Read(Stdin, buf))
	assert.Equal(t, byte('b'), buf[0])

	// End of input reads as "no more data", not as an error.
	assert.Equal(t, 0, g.Read(Stdin, buf))
	assert.Equal(t, 0, g.Read(Stdin, buf))
}

func TestStreamGatewayReadBadFd(t *testing.T) {
	g := &StreamGateway{In: strings.NewReader("ab")}

	assert.Equal(t, -1, g.Read(Stdout, make([]byte, 1)))
}

func TestStreamGatewayWrite(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	g := &StreamGateway{Out: out, ErrOut: errOut}

	assert.Equal(t, 3, g.Write(Stdout, []byte("abc")))
	assert.Equal(t, 2, g.Write(Stderr, []byte("de")))
	assert.Equal(t, "abc", out.String())
	assert.Equal(t, "de", errOut.String())

	assert.Equal(t, -1, g.Write(7, []byte("x")))
}

func TestStreamGatewayWriteStderrFallsBack(t *testing.T) {
	out := &bytes.Buffer{}
	g := &StreamGateway{Out: out}

	assert.Equal(t, 2, g.Write(Stderr, []byte("de")))
	assert.Equal(t, "de", out.String())
}

func TestStreamGatewaySpawnUnresolved(t *testing.T) {
	g := &StreamGateway{}

	assert.Equal(t, -1, g.Spawn("/bin/hello"))
}

func TestStreamGatewayExitDiverges(t *testing.T) {
	var gotCode int
	g := &StreamGateway{ExitFn: func(code int) { gotCode = code }}

	reached := false
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.Exit(3)
		reached = true
	}()
	wg.Wait()

	assert.Equal(t, 3, gotCode)
	assert.False(t, reached, "Exit must never return to its caller")
}
