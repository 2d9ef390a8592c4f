package interactive

import (
	"bytes"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

// scriptedPrompter answers the questions from prepared lists.
type scriptedPrompter struct {
	choices []int
	inputs  []string
	labels  []string
}

func (s *scriptedPrompter) Select(label string, items []string) (int, error) {
	s.labels = append(s.labels, label)
	if len(s.choices) == 0 {
		return -1, errors.New("no more choices")
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c, nil
}

func (s *scriptedPrompter) Input(label string, validate func(string) error) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.inputs) == 0 {
		return "", errors.New("no more inputs")
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	if err := validate(in); err != nil {
		return "", err
	}
	return in, nil
}

func Test_Menu(t *testing.T) {
	menu := Menu()
	require.Len(t, menu, 6)
	require.Equal(t, "1. Base16 - Data, hashing, memory addresses", menu[0])
	require.Equal(t, "3. Base58 - Cryptocurrencies, e.g., Bitcoin", menu[2])
	require.Equal(t, "6. Base85 - PDF, PostScript, data compression", menu[5])
}

func Test_ValidateFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	require.NoError(t, validateFile(file))
	require.NoError(t, validateFile(" "+file+" "))
	require.Error(t, validateFile(""))
	require.Error(t, validateFile(dir))
	require.Error(t, validateFile(filepath.Join(dir, "missing")))
}

func Test_InteractiveEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "output")
	input := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(input, []byte("Hello"), 0644))

	buf := &bytes.Buffer{}
	p := &scriptedPrompter{choices: []int{0, 4}, inputs: []string{input}}
	cmd := &Command{OutputDir: out, Prompter: p, Out: buf}
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, []string{"Encode / Decode", "Enter the file path", "Choose the encoding"}, p.labels)

	encoded := filepath.Join(out, "note.txt.base64")
	text, err := os.ReadFile(encoded)
	require.NoError(t, err)
	require.Equal(t, "SGVsbG8=", string(text))
	require.Contains(t, buf.String(), "Encoded "+input)

	restoreDir := filepath.Join(dir, "restored")
	p = &scriptedPrompter{choices: []int{1}, inputs: []string{encoded}}
	cmd = &Command{OutputDir: restoreDir, Prompter: p, Out: buf}
	require.NoError(t, cmd.Execute(nil))

	data, err := os.ReadFile(filepath.Join(restoreDir, "note.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), data)
}

func Test_InteractiveDecodeAsksForAlgorithm(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hex.txt")
	require.NoError(t, os.WriteFile(input, []byte("414243"), 0644))

	p := &scriptedPrompter{choices: []int{1, 0}, inputs: []string{input}}
	cmd := &Command{OutputDir: dir, Prompter: p, Out: &bytes.Buffer{}}
	require.NoError(t, cmd.Execute(nil))

	data, err := os.ReadFile(filepath.Join(dir, "hex"))
	require.NoError(t, err)
	require.Equal(t, []byte("ABC"), data)
}

func Test_InteractiveErrors(t *testing.T) {
	dir := t.TempDir()

	p := &scriptedPrompter{choices: []int{0}, inputs: []string{filepath.Join(dir, "missing")}}
	cmd := &Command{OutputDir: dir, Prompter: p, Out: &bytes.Buffer{}}
	require.Error(t, cmd.Execute(nil))

	input := filepath.Join(dir, "odd.base16")
	require.NoError(t, os.WriteFile(input, []byte("ABC"), 0644))
	p = &scriptedPrompter{choices: []int{1}, inputs: []string{input}}
	cmd = &Command{OutputDir: dir, Prompter: p, Out: &bytes.Buffer{}}
	require.ErrorIs(t, cmd.Execute(nil), enc.ErrOddLength)

	p = &scriptedPrompter{choices: []int{0, 9}, inputs: []string{input}}
	cmd = &Command{OutputDir: dir, Prompter: p, Out: &bytes.Buffer{}}
	require.ErrorIs(t, cmd.Execute(nil), enc.ErrUnknownAlgorithm)
}
