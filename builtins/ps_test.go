package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPs(t *testing.T) {
	cmd, status := runBuiltin(t, Ps, "ps")

	assert.Equal(t, 0, status)
	newGoldie(t).Assert(t, "listing", []byte(cmd.Output()))
}

func TestPsIgnoresArguments(t *testing.T) {
	plain, _ := runBuiltin(t, Ps, "ps")
	withArgs, _ := runBuiltin(t, Ps, "ps", "-ef", "aux")

	assert.Equal(t, plain.Output(), withArgs.Output())
}
