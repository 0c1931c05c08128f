package term

// maxDecimal is enough digits for any 64-bit pid.
const maxDecimal = 20

// Decimal renders a non-negative integer in decimal ASCII without going
// through the allocator-backed strconv path: repeated remainder-by-10
// into a fixed buffer followed by an in-place reversal. Zero renders as
// "0".
func Decimal(n int) string {
	if n == 0 {
		return "0"
	}

	var buf [maxDecimal]byte
	i := 0
	for n > 0 {
		buf[i] = '0' + byte(n%10)
		n /= 10
		i++
	}
	for l, r := 0, i-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf[:i])
}
