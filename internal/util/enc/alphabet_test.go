package enc

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_AlphabetSizes(t *testing.T) {
	sizes := map[Algorithm]int{
		Base16: 16,
		Base32: 32,
		Base58: 58,
		Base62: 62,
		Base64: 64,
		Base85: 85,
	}
	for a, size := range sizes {
		require.Equal(t, size, a.Encoder().Alphabet().Len(), a.String())
	}

	require.Equal(t, byte('!'), base85Alphabet.Symbol(0))
	require.Equal(t, byte('u'), base85Alphabet.Symbol(84))
}

func Test_FindIndex(t *testing.T) {
	for _, a := range Algorithms() {
		alphabet := a.Encoder().Alphabet()
		symbols := alphabet.String()

		for i := 0; i < alphabet.Len(); i++ {
			require.Equal(t, i, alphabet.FindIndex(symbols[i]), "%v symbol %q", a, symbols[i])
			require.Equal(t, symbols[i], alphabet.Symbol(i))
		}

		for c := 0; c < 256; c++ {
			if strings.IndexByte(symbols, byte(c)) >= 0 {
				continue
			}
			require.Equal(t, -1, alphabet.FindIndex(byte(c)), "%v found %q", a, byte(c))
			require.False(t, alphabet.Contains(byte(c)))
		}
	}
}

func Test_NewAlphabetRejectsDuplicates(t *testing.T) {
	require.Panics(t, func() {
		NewAlphabet("ABCA")
	})
	require.Panics(t, func() {
		NewAlphabet("")
	})
	require.Panics(t, func() {
		NewAlphabet("AB\300")
	})
	require.NotPanics(t, func() {
		NewAlphabet("AB")
	})
}
