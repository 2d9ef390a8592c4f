package enc

import (
	"fmt"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet and '=' padding.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Extension() string {
	return "base64"
}

func (b *Base64Encoder) Code() byte {
	return '5'
}

func (b *Base64Encoder) Alphabet() *Alphabet {
	return base64Alphabet
}

func (b *Base64Encoder) EncodedLen(n int) int {
	return blockLen(n, 3, 4)
}

func (b *Base64Encoder) DecodedLen(n int) int {
	return blockLen(n, 4, 3)
}

func (b *Base64Encoder) AppendEncode(dst, src []byte) []byte {
	for i := 0; i < len(src); i += 3 {
		value := uint32(src[i]) << 16
		if i+1 < len(src) {
			value |= uint32(src[i+1]) << 8
		}
		if i+2 < len(src) {
			value |= uint32(src[i+2])
		}

		dst = append(dst, cb64[(value>>18)&0x3f], cb64[(value>>12)&0x3f])
		if i+1 < len(src) {
			dst = append(dst, cb64[(value>>6)&0x3f])
		} else {
			dst = append(dst, padChar)
		}
		if i+2 < len(src) {
			dst = append(dst, cb64[value&0x3f])
		} else {
			dst = append(dst, padChar)
		}
	}
	return dst
}

func (b *Base64Encoder) Encode(data []byte) string {
	return encodeToString(b, data)
}

// Decode accepts both padded and unpadded input. Missing pad characters are assumed.
func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	dst := make([]byte, 0, b.DecodedLen(len(data)))

	for i := 0; i < len(data); i += 4 {
		var block [4]byte
		for j := range block {
			if i+j < len(data) {
				block[j] = data[i+j]
			} else {
				block[j] = padChar
			}
		}

		var value uint32
		for j, c := range block {
			if c == padChar {
				continue
			}
			d, err := base64Alphabet.digit(b.Name(), data, i+j)
			if err != nil {
				return nil, err
			}
			value |= uint32(d) << (18 - 6*uint(j))
		}

		dst = append(dst, byte(value>>16))
		if block[2] != padChar {
			dst = append(dst, byte(value>>8))
		}
		if block[3] != padChar {
			dst = append(dst, byte(value))
		}
	}

	return dst, nil
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		cb64,
		"QQ==",
		"SGVsbG8=",
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129/",
	}
}
