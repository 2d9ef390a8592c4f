package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"unicode/utf8"
)

const padChar = '='

const (
	cb16 = "0123456789ABCDEF"
	cb32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cb58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	cb62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// 33 (!) through 117 (u)
	cb85 = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstu"
)

var (
	base16Alphabet = NewAlphabet(cb16)
	base32Alphabet = NewAlphabet(cb32)
	base58Alphabet = NewAlphabet(cb58)
	base62Alphabet = NewAlphabet(cb62)
	base64Alphabet = NewAlphabet(cb64)
	base85Alphabet = NewAlphabet(cb85)
)

// Alphabet is an ordered table of distinct ASCII symbols. The position of a symbol in the
// table is its digit value. An Alphabet is never modified after NewAlphabet returns, so it
// may be shared freely between goroutines.
type Alphabet struct {
	symbols string
	index   [256]int8
}

// NewAlphabet creates a new alphabet from the given symbols. It panics if the symbols are not
// ASCII or not pairwise distinct, as the reverse lookup would be ambiguous.
func NewAlphabet(symbols string) *Alphabet {
	if len(symbols) == 0 || len(symbols) >= utf8.RuneSelf {
		panic(fmt.Sprintf("alphabet must contain between 1 and %d symbols, got %d", utf8.RuneSelf-1, len(symbols)))
	}

	a := &Alphabet{
		symbols: symbols,
	}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= utf8.RuneSelf {
			panic(fmt.Sprintf("alphabet symbol %q at position %d is not ASCII", c, i))
		}
		if a.index[c] != -1 {
			panic(fmt.Sprintf("alphabet symbol %q appears more than once", c))
		}
		a.index[c] = int8(i)
	}
	return a
}

// FindIndex returns the digit value of the symbol or -1 if the symbol is not part of the alphabet.
func (a *Alphabet) FindIndex(c byte) int {
	return int(a.index[c])
}

// Contains returns true if the symbol is part of the alphabet
func (a *Alphabet) Contains(c byte) bool {
	return a.index[c] >= 0
}

// Symbol returns the symbol for the given digit value
func (a *Alphabet) Symbol(v int) byte {
	return a.symbols[v]
}

// Len is the radix of the alphabet
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

func (a *Alphabet) String() string {
	return a.symbols
}

// digit translates the symbol at offset i of text into its digit value.
func (a *Alphabet) digit(encoding, text string, i int) (int, error) {
	v := a.index[text[i]]
	if v < 0 {
		return 0, errors.WithStack(&InvalidCharacterError{
			Encoding: encoding,
			Symbol:   text[i],
			Offset:   i,
		})
	}
	return int(v), nil
}
