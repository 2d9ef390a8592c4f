package enc

import (
	"errors"
	"fmt"
)

// Codec errors. Use errors.Is to match them, as they are usually returned wrapped.
var (
	ErrOddLength         = errors.New("odd length")
	ErrInvalidCharacter  = errors.New("invalid character")
	ErrInvalidLength     = errors.New("invalid length")
	ErrValueOverflow     = errors.New("block value overflow")
	ErrEmptyInput        = errors.New("empty input")
	ErrAllocationFailure = errors.New("allocation failure")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
)

// InvalidCharacterError is returned when the decoder finds a symbol which is not a part of its alphabet.
type InvalidCharacterError struct {
	Encoding string
	Symbol   byte
	Offset   int
}

// Error shows printable ASCII symbols quoted and any other byte in hex.
func (e *InvalidCharacterError) Error() string {
	if e.Symbol < 0x20 || e.Symbol > 0x7e {
		return fmt.Sprintf("%s: invalid character 0x%02x at offset %d", e.Encoding, e.Symbol, e.Offset)
	}
	return fmt.Sprintf("%s: invalid character %q at offset %d", e.Encoding, string([]byte{e.Symbol}), e.Offset)
}

// Is makes errors.Is(err, ErrInvalidCharacter) match.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
