package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base62Encoder treats the input as one big-endian number and writes it in radix 62 using
// [0-9A-Za-z]. Each leading zero byte is written as '0', so leading zeros survive a round trip.
type Base62Encoder struct {
}

func (b *Base62Encoder) Name() string {
	return "Base62"
}

func (b *Base62Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base62Encoder) Extension() string {
	return "base62"
}

func (b *Base62Encoder) Code() byte {
	return '4'
}

func (b *Base62Encoder) Alphabet() *Alphabet {
	return base62Alphabet
}

// EncodedLen uses log(256)/log(62) ~ 1.344, rounded up.
func (b *Base62Encoder) EncodedLen(n int) int {
	l := scaledLen(n, 135, 100)
	if l < 0 || l == maxInt {
		return -1
	}
	return l + 1
}

// DecodedLen is n, as a run of zero symbols decodes byte for byte.
func (b *Base62Encoder) DecodedLen(n int) int {
	return n
}

// digitsLen estimates the number of bytes for n significant symbols using
// log(radix)/log(256) ~ 0.744, rounded up.
func (b *Base62Encoder) digitsLen(n int) int {
	l := scaledLen(n, 745, 1000)
	if l < 0 {
		return n
	}
	return l + 1
}

func (b *Base62Encoder) AppendEncode(dst, src []byte) []byte {
	zeros := leadingZeros(src)
	for i := 0; i < zeros; i++ {
		dst = append(dst, cb62[0])
	}

	digits := make([]byte, 0, b.EncodedLen(len(src)-zeros))
	for _, v := range src[zeros:] {
		digits = accumulate(digits, uint32(v), 256, 62)
	}

	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, cb62[digits[i]])
	}
	return dst
}

func (b *Base62Encoder) Encode(data []byte) string {
	return encodeToString(b, data)
}

// Decode fails with ErrEmptyInput for an empty string. All symbols are checked before any
// conversion takes place.
func (b *Base62Encoder) Decode(data string) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%v input", b.Name())
	}
	for i := 0; i < len(data); i++ {
		if _, err := base62Alphabet.digit(b.Name(), data, i); err != nil {
			return nil, err
		}
	}

	zeros := leadingSymbols(data, cb62[0])

	digits := make([]byte, 0, b.digitsLen(len(data)-zeros))
	for i := zeros; i < len(data); i++ {
		digits = accumulate(digits, uint32(base62Alphabet.FindIndex(data[i])), 62, 256)
	}

	dst := make([]byte, zeros, zeros+len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, digits[i])
	}
	return dst, nil
}

func (b *Base62Encoder) TestPatterns() []string {
	return []string{
		cb62,
		"00A",
		"zzzzzz",
	}
}
