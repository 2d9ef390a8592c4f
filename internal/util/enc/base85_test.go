package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base85Encoder(t *testing.T) {
	encoder := Base85Encoder{}
	require.Equal(t, "", encoder.Encode(nil))
	require.Equal(t, "!!!!!", encoder.Encode([]byte{0, 0, 0, 0}))
	require.Equal(t, "s8W-!", encoder.Encode([]byte{0xff, 0xff, 0xff, 0xff}))
	require.Equal(t, "87cURD]j7BEbo7d", encoder.Encode([]byte("Hello world\000")))

	encoded := encoder.Encode(encoderTest)
	require.NotContains(t, encoded, "v")
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

// A partial last block is written as a full block. Decoding such text yields the original data
// followed by the zero bytes used to fill the block.
func Test_Base85PartialBlock(t *testing.T) {
	encoder := Base85Encoder{}
	for _, encoderTest := range encoderTests {
		encoded := encoder.Encode(encoderTest)
		require.Zero(t, len(encoded)%5)

		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)

		padded := len(encoderTest) + (4-len(encoderTest)%4)%4
		require.Len(t, decoded, padded)
		require.Equal(t, encoderTest, decoded[:len(encoderTest)])
		require.Equal(t, make([]byte, padded-len(encoderTest)), decoded[len(encoderTest):])
	}
}

func Test_Base85Whitespace(t *testing.T) {
	encoder := Base85Encoder{}
	decoded, err := encoder.Decode(" !!!!!\r\n\t!!!!!\n")
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), decoded)
}

func Test_Base85InvalidLength(t *testing.T) {
	encoder := Base85Encoder{}
	_, err := encoder.Decode("!!!!")
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = encoder.Decode("!!!!!\n!")
	require.ErrorIs(t, err, ErrInvalidLength)
}

func Test_Base85Overflow(t *testing.T) {
	encoder := Base85Encoder{}
	_, err := encoder.Decode("uuuuu")
	require.ErrorIs(t, err, ErrValueOverflow)

	_, err = encoder.Decode("s8W-\"")
	require.ErrorIs(t, err, ErrValueOverflow)
}
