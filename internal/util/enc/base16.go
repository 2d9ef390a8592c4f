package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base16Encoder encodes 1 byte to 2 characters (hex, uppercase).
type Base16Encoder struct {
}

func (b *Base16Encoder) Name() string {
	return "Base16"
}

func (b *Base16Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base16Encoder) Extension() string {
	return "base16"
}

func (b *Base16Encoder) Code() byte {
	return '1'
}

func (b *Base16Encoder) Alphabet() *Alphabet {
	return base16Alphabet
}

func (b *Base16Encoder) EncodedLen(n int) int {
	return scaledLen(n, 2, 1)
}

func (b *Base16Encoder) DecodedLen(n int) int {
	return n / 2
}

func (b *Base16Encoder) AppendEncode(dst, src []byte) []byte {
	for _, v := range src {
		dst = append(dst, cb16[v>>4], cb16[v&0x0f])
	}
	return dst
}

func (b *Base16Encoder) Encode(data []byte) string {
	return encodeToString(b, data)
}

func (b *Base16Encoder) Decode(data string) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, errors.Wrapf(ErrOddLength, "%v input has %d symbols", b.Name(), len(data))
	}

	dst := make([]byte, 0, b.DecodedLen(len(data)))
	for i := 0; i < len(data); i += 2 {
		high, err := base16Alphabet.digit(b.Name(), data, i)
		if err != nil {
			return nil, err
		}
		low, err := base16Alphabet.digit(b.Name(), data, i+1)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(high<<4|low))
	}
	return dst, nil
}

func (b *Base16Encoder) TestPatterns() []string {
	return []string{
		cb16,
		"00FF7F80",
	}
}
