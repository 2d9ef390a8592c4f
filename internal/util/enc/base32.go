package enc

import (
	"fmt"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. The last group is padded with '=' to a full
// block of 8 characters.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Extension() string {
	return "base32"
}

func (b *Base32Encoder) Code() byte {
	return '2'
}

func (b *Base32Encoder) Alphabet() *Alphabet {
	return base32Alphabet
}

func (b *Base32Encoder) EncodedLen(n int) int {
	return blockLen(n, 5, 8)
}

func (b *Base32Encoder) DecodedLen(n int) int {
	return blockLen(n, 8, 5)
}

func (b *Base32Encoder) AppendEncode(dst, src []byte) []byte {
	start := len(dst)

	// Bits are consumed MSB-first. The window never holds more than 12 unread bits.
	var window uint32
	bits := uint(0)
	for _, v := range src {
		window = window<<8 | uint32(v)
		bits += 8
		for bits >= 5 {
			dst = append(dst, cb32[(window>>(bits-5))&0x1f])
			bits -= 5
		}
	}
	if bits > 0 {
		dst = append(dst, cb32[(window<<(5-bits))&0x1f])
	}

	for (len(dst)-start)%8 != 0 {
		dst = append(dst, padChar)
	}
	return dst
}

func (b *Base32Encoder) Encode(data []byte) string {
	return encodeToString(b, data)
}

// Decode accepts both padded and unpadded input. Missing pad characters are assumed.
func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	dst := make([]byte, 0, b.DecodedLen(len(data)))

	for i := 0; i < len(data); i += 8 {
		var block [8]byte
		for j := range block {
			if i+j < len(data) {
				block[j] = data[i+j]
			} else {
				block[j] = padChar
			}
		}

		var value uint64
		for j, c := range block {
			if c == padChar {
				continue
			}
			d, err := base32Alphabet.digit(b.Name(), data, i+j)
			if err != nil {
				return nil, err
			}
			value |= uint64(d) << (35 - 5*uint(j))
		}

		// A byte is only present if the symbol carrying its last bits is
		dst = append(dst, byte(value>>32))
		if block[3] != padChar {
			dst = append(dst, byte(value>>24))
		}
		if block[4] != padChar {
			dst = append(dst, byte(value>>16))
		}
		if block[6] != padChar {
			dst = append(dst, byte(value>>8))
		}
		if block[7] != padChar {
			dst = append(dst, byte(value))
		}
	}

	return dst, nil
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		cb32,
		"JBSWY3DP",
		"MY======",
		"MZXW6YQ=",
	}
}
