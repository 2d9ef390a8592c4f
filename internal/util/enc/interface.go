package enc

import (
	"github.com/pkg/errors"
)

// Encoder is a binary-to-text codec working on one fixed alphabet.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Extension is the file extension (without the leading dot) of files encoded with this encoder
	Extension() string
	// Code represents the menu choice ('1' to '6') for the encoder
	Code() byte
	// Alphabet returns the symbol table of the encoder
	Alphabet() *Alphabet

	// EncodedLen returns the maximum length of the text produced for n input bytes. It returns
	// a negative number if the length does not fit into an int.
	EncodedLen(n int) int
	// DecodedLen returns the maximum number of bytes decoded from n symbols.
	DecodedLen(n int) int

	// AppendEncode encodes src, appends the symbols to dst and returns the extended buffer.
	// Size dst with EncodedLen to avoid reallocation.
	AppendEncode(dst, src []byte) []byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// TestPatterns returns a list of valid encoded strings for this encoding
	TestPatterns() []string
}

// CheckedEncode encodes src with the given encoder, but returns ErrAllocationFailure instead of
// panicking when the encoded text would be too large to address.
func CheckedEncode(e Encoder, src []byte) (string, error) {
	if e.EncodedLen(len(src)) < 0 {
		return "", errors.Wrapf(ErrAllocationFailure, "%v output for %d bytes", e.Name(), len(src))
	}
	return e.Encode(src), nil
}

func encodeToString(e Encoder, src []byte) string {
	n := e.EncodedLen(len(src))
	if n < 0 {
		panic(ErrAllocationFailure)
	}
	return string(e.AppendEncode(make([]byte, 0, n), src))
}

const maxInt = int(^uint(0) >> 1)

// scaledLen returns ceil(n*num/den) or -1 on overflow.
func scaledLen(n, num, den int) int {
	if n < 0 || n > (maxInt-den)/num {
		return -1
	}
	return (n*num + den - 1) / den
}

// blockLen returns the length of ceil(n/in) blocks of size out or -1 on overflow.
func blockLen(n, in, out int) int {
	if n < 0 {
		return -1
	}
	blocks := n / in
	if n%in != 0 {
		blocks++
	}
	if blocks > maxInt/out {
		return -1
	}
	return blocks * out
}
