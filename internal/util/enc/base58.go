package enc

import (
	"fmt"
)

// -------------------------------------------------------

// Base58Encoder treats the input as one big-endian number and writes it in radix 58 using the
// Bitcoin alphabet. Each leading zero byte is written as '1'.
type Base58Encoder struct {
}

func (b *Base58Encoder) Name() string {
	return "Base58"
}

func (b *Base58Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base58Encoder) Extension() string {
	return "base58"
}

func (b *Base58Encoder) Code() byte {
	return '3'
}

func (b *Base58Encoder) Alphabet() *Alphabet {
	return base58Alphabet
}

// EncodedLen uses log(256)/log(58) ~ 1.366, rounded up.
func (b *Base58Encoder) EncodedLen(n int) int {
	l := scaledLen(n, 138, 100)
	if l < 0 || l == maxInt {
		return -1
	}
	return l + 1
}

// DecodedLen is n, as a run of zero symbols decodes byte for byte.
func (b *Base58Encoder) DecodedLen(n int) int {
	return n
}

// digitsLen estimates the number of bytes for n significant symbols using
// log(radix)/log(256) ~ 0.732, rounded up.
func (b *Base58Encoder) digitsLen(n int) int {
	l := scaledLen(n, 733, 1000)
	if l < 0 {
		return n
	}
	return l + 1
}

func (b *Base58Encoder) AppendEncode(dst, src []byte) []byte {
	zeros := leadingZeros(src)
	for i := 0; i < zeros; i++ {
		dst = append(dst, cb58[0])
	}

	digits := make([]byte, 0, b.EncodedLen(len(src)-zeros))
	for _, v := range src[zeros:] {
		digits = accumulate(digits, uint32(v), 256, 58)
	}

	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, cb58[digits[i]])
	}
	return dst
}

func (b *Base58Encoder) Encode(data []byte) string {
	return encodeToString(b, data)
}

func (b *Base58Encoder) Decode(data string) ([]byte, error) {
	zeros := leadingSymbols(data, cb58[0])

	digits := make([]byte, 0, b.digitsLen(len(data)-zeros))
	for i := zeros; i < len(data); i++ {
		d, err := base58Alphabet.digit(b.Name(), data, i)
		if err != nil {
			return nil, err
		}
		digits = accumulate(digits, uint32(d), 58, 256)
	}

	dst := make([]byte, zeros, zeros+len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, digits[i])
	}
	return dst, nil
}

func (b *Base58Encoder) TestPatterns() []string {
	return []string{
		cb58,
		"112",
		"1qfr",
	}
}
