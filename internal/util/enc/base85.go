package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters from '!' through 'u'. A partial last block is
// filled with zero bytes and still written as 5 characters, so the exact input length is not
// recoverable from the text alone. Carry the length out of band if it matters.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Extension() string {
	return "base85"
}

func (b *Base85Encoder) Code() byte {
	return '6'
}

func (b *Base85Encoder) Alphabet() *Alphabet {
	return base85Alphabet
}

func (b *Base85Encoder) EncodedLen(n int) int {
	return blockLen(n, 4, 5)
}

func (b *Base85Encoder) DecodedLen(n int) int {
	return n / 5 * 4
}

func (b *Base85Encoder) AppendEncode(dst, src []byte) []byte {
	for i := 0; i < len(src); i += 4 {
		var value uint32
		for j := 0; j < 4; j++ {
			value <<= 8
			if i+j < len(src) {
				value |= uint32(src[i+j])
			}
		}

		var block [5]byte
		for j := 4; j >= 0; j-- {
			block[j] = cb85[value%85]
			value /= 85
		}
		dst = append(dst, block[:]...)
	}
	return dst
}

func (b *Base85Encoder) Encode(data []byte) string {
	return encodeToString(b, data)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Decode ignores spaces, tabs and line breaks. The remaining symbols must form whole blocks of 5.
func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	n := 0
	for i := 0; i < len(data); i++ {
		if !isSpace(data[i]) {
			n++
		}
	}
	if n%5 != 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "%v input has %d symbols, which is not a multiple of 5", b.Name(), n)
	}

	dst := make([]byte, 0, b.DecodedLen(n))
	var value uint64
	count := 0
	for i := 0; i < len(data); i++ {
		if isSpace(data[i]) {
			continue
		}
		d, err := base85Alphabet.digit(b.Name(), data, i)
		if err != nil {
			return nil, err
		}
		value = value*85 + uint64(d)
		count++

		if count == 5 {
			if value > math.MaxUint32 {
				return nil, errors.Wrapf(ErrValueOverflow, "%v block ending at offset %d", b.Name(), i)
			}
			dst = append(dst, byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
			value, count = 0, 0
		}
	}
	return dst, nil
}

func (b *Base85Encoder) TestPatterns() []string {
	return []string{
		cb85,
		"!!!!!",
		"s8W-!",
		"87cURD]j7BEbo7d",
	}
}
