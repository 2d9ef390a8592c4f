package transcode

import (
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeInput(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func intPtr(i int) *int {
	return &i
}

func Test_EncodeDecodeFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	data := []byte("Hello, world!\n\x00\x01\x02\xff")

	for _, alg := range enc.Algorithms() {
		input := writeInput(t, in, "message.txt", data)

		encoded, err := EncodeFile(Job{Input: input, OutputDir: out, Algorithm: alg})
		require.NoError(t, err, alg.String())
		require.Equal(t, filepath.Join(out, "message.txt."+alg.Extension()), encoded.Output)
		require.Equal(t, len(data), encoded.InputSize)
		require.Equal(t, alg, encoded.Algorithm)

		text, err := os.ReadFile(encoded.Output)
		require.NoError(t, err)
		require.Equal(t, alg.Encoder().Encode(data), string(text))
		require.Equal(t, len(text), encoded.OutputSize)

		restoreDir := t.TempDir()
		decoded, err := DecodeFile(Job{Input: encoded.Output, OutputDir: restoreDir, Length: intPtr(len(data))})
		require.NoError(t, err, alg.String())
		require.Equal(t, alg, decoded.Algorithm)
		require.Equal(t, filepath.Join(restoreDir, "message.txt"), decoded.Output)

		restored, err := os.ReadFile(decoded.Output)
		require.NoError(t, err)
		require.Equal(t, data, restored, alg.String())
	}
}

func Test_DecodeFileBase85Padding(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "hello.base85", []byte(enc.Base85Encoding.Encode([]byte("Hello"))))

	decoded, err := DecodeFile(Job{Input: input, OutputDir: dir})
	require.NoError(t, err)
	require.Equal(t, 8, decoded.OutputSize)

	decoded, err = DecodeFile(Job{Input: input, OutputDir: dir, Length: intPtr(5)})
	require.NoError(t, err)
	require.Equal(t, 5, decoded.OutputSize)

	restored, err := os.ReadFile(decoded.Output)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), restored)

	_, err = DecodeFile(Job{Input: input, OutputDir: dir, Length: intPtr(9)})
	require.ErrorIs(t, err, enc.ErrInvalidLength)
}

func Test_DecodeFileTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()

	input := writeInput(t, dir, "a.base64", []byte("QQ==\r\n"))
	result, err := DecodeFile(Job{Input: input, OutputDir: out})
	require.NoError(t, err)

	restored, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), restored)

	input = writeInput(t, dir, "b.base64", []byte("QQ==\n\n"))
	_, err = DecodeFile(Job{Input: input, OutputDir: out})
	require.ErrorIs(t, err, enc.ErrInvalidCharacter)
}

func Test_DecodeFileAlgorithmOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "data.txt", []byte("48656C6C6F"))

	_, err := DecodeFile(Job{Input: input, OutputDir: dir})
	require.ErrorIs(t, err, enc.ErrUnknownAlgorithm)

	result, err := DecodeFile(Job{Input: input, OutputDir: dir, Algorithm: enc.Base16})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "data"), result.Output)

	restored, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), restored)
}

func Test_DecodeFileInvalid(t *testing.T) {
	dir := t.TempDir()

	input := writeInput(t, dir, "odd.base16", []byte("ABC"))
	_, err := DecodeFile(Job{Input: input, OutputDir: dir})
	require.ErrorIs(t, err, enc.ErrOddLength)

	input = writeInput(t, dir, "empty.base62", []byte(""))
	_, err = DecodeFile(Job{Input: input, OutputDir: dir})
	require.ErrorIs(t, err, enc.ErrEmptyInput)

	_, err = DecodeFile(Job{Input: filepath.Join(dir, "missing.base64"), OutputDir: dir})
	require.ErrorIs(t, err, ErrIO)
}

func Test_EncodeFileUnknownAlgorithm(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "data.txt", []byte("x"))

	_, err := EncodeFile(Job{Input: input, OutputDir: dir})
	require.ErrorIs(t, err, enc.ErrUnknownAlgorithm)
}

func Test_JobDefaultOutputDir(t *testing.T) {
	require.Equal(t, DefaultOutputDir, Job{}.outputDir())
	require.Equal(t, "elsewhere", Job{OutputDir: "elsewhere"}.outputDir())
	require.Contains(t, Job{Input: "file.bin", Algorithm: enc.Base58}.String(), "file.bin")
}

func Test_TrimNewline(t *testing.T) {
	require.Equal(t, "abc", TrimNewline("abc\n"))
	require.Equal(t, "abc", TrimNewline("abc\r\n"))
	require.Equal(t, "abc\n", TrimNewline("abc\n\n"))
	require.Equal(t, "abc", TrimNewline("abc"))
	require.Equal(t, "", TrimNewline(""))
}
