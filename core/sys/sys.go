// Package sys defines the primitive-call boundary between the shell and
// the kernel. The shell only ever talks to the kernel through the four
// operations on Gateway; the numeric trap convention stays on the
// implementation side of this interface.
package sys

// Descriptor numbers on the kernel console.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// Gateway is the complete syscall surface available to a userspace
// process. Results follow the kernel ABI: negative values are errors
// and no finer-grained cause is reported.
//
// Every call is synchronous and blocking. Callers perform no buffering
// and no retries around them.
type Gateway interface {
	// Write writes p to fd. It returns the number of bytes written or a
	// negative error.
	Write(fd int, p []byte) int

	// Read reads up to len(p) bytes into p. It returns the number of
	// bytes read, 0 when no more data is available, or a negative
	// error.
	Read(fd int, p []byte) int

	// Spawn creates a new process from the executable at path and
	// returns its pid, or a negative error. The child runs detached:
	// the kernel exposes no wait, signal or reap primitive.
	Spawn(path string) int

	// Exit terminates the calling process. It never returns.
	Exit(code int)
}

// SpawnFunc resolves a spawn request when no real kernel is underneath,
// e.g. for SSH sessions and tests.
type SpawnFunc func(path string) int
