package shell

// MaxArgs is the argument vector capacity. Tokens beyond it are dropped
// silently.
const MaxArgs = 16

// Tokenize splits line into whitespace-delimited argument views
// appended to argv. The views alias line's backing array and are valid
// only until the buffer is reused for the next cycle; Tokenize holds
// the buffer's single ownership for the duration of the scan, so no
// copies are made. Scanning stops at a newline, a NUL or the end of the
// line.
func Tokenize(line []byte, argv [][]byte) [][]byte {
	i := 0
	for i < len(line) && len(argv) < MaxArgs {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) || line[i] == byteNewline || line[i] == 0 {
			break
		}

		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != byteNewline && line[i] != 0 {
			i++
		}
		argv = append(argv, line[start:i])
	}
	return argv
}
