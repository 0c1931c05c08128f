package shell

import "github.com/nanux-os/nsh/core/term"

// MaxPath mirrors the kernel's 128-byte path buffer. One byte stays
// reserved for the terminator the kernel ABI expects, so a built path
// holds at most MaxPath-1 bytes.
const MaxPath = 128

// spawnPath builds "<dir>/<name>" into a fixed buffer, silently
// truncating the name when it would overflow.
func spawnPath(dir, name string) string {
	var path [MaxPath - 1]byte

	n := copy(path[:], dir)
	if n > 0 && path[n-1] != '/' && n < len(path) {
		path[n] = '/'
		n++
	}
	n += copy(path[n:], name)

	return string(path[:n])
}

// spawnExternal resolves name under the configured bin directory and
// hands it to the kernel. Fire-and-forget: the shell never waits for,
// signals or reaps the child.
func (s *Shell) spawnExternal(name string) {
	path := spawnPath(s.cfg.BinDir, name)

	pid := s.sys.Spawn(path)
	if pid < 0 {
		// The gateway reports no cause, so every failure reads the
		// same.
		s.log.UnknownCommand(name)
		s.out.Colorf(term.Red, "error: ")
		s.out.Printf("command not found: %s\n", name)
		return
	}

	s.log.SpawnResult(path, pid)
	s.out.Colorf(term.Green, "✓ ")
	s.out.Print("started process with PID ")
	s.out.Print(term.Decimal(pid))
	s.out.Print("\n")
}
