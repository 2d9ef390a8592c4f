package enc

// accumulate multiplies the little-endian number held in digits (radix "to") by "from", adds
// carry and returns the grown digit buffer. This is one step of converting a big-endian number
// written in radix "from" into radix "to".
func accumulate(digits []byte, carry uint32, from, to uint32) []byte {
	for k := range digits {
		carry += uint32(digits[k]) * from
		digits[k] = byte(carry % to)
		carry /= to
	}
	for carry > 0 {
		digits = append(digits, byte(carry%to))
		carry /= to
	}
	return digits
}

// leadingZeros counts zero bytes at the start of src.
func leadingZeros(src []byte) int {
	n := 0
	for n < len(src) && src[n] == 0 {
		n++
	}
	return n
}

// leadingSymbols counts occurrences of c at the start of text.
func leadingSymbols(text string, c byte) int {
	n := 0
	for n < len(text) && text[n] == c {
		n++
	}
	return n
}
