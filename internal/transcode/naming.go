package transcode

import (
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/pkg/errors"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where encoded and decoded files are written unless configured otherwise.
const DefaultOutputDir = "output"

// EncodedName returns the name of the encoded file: the base name of the input with the extension
// of the algorithm appended, e.g. "photo.jpg" -> "photo.jpg.base64".
func EncodedName(name string, alg enc.Algorithm) string {
	return filepath.Base(name) + "." + alg.Extension()
}

// AlgorithmFromName returns the algorithm named by the last extension of the file.
func AlgorithmFromName(name string) (enc.Algorithm, error) {
	ext := filepath.Ext(filepath.Base(name))
	if ext == "" {
		return 0, errors.Wrapf(enc.ErrUnknownAlgorithm, "%v has no extension", name)
	}
	return enc.ParseAlgorithm(ext)
}

// DecodedName strips one extension from the base name of the file. A name which would become
// empty is kept as is.
func DecodedName(name string) string {
	base := filepath.Base(name)
	stripped := strings.TrimSuffix(base, filepath.Ext(base))
	if stripped == "" {
		return base
	}
	return stripped
}
