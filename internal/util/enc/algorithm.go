package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// Algorithm is the closed set of supported encodings, in menu order.
type Algorithm int

const (
	Base16 Algorithm = iota + 1
	Base32
	Base58
	Base62
	Base64
	Base85
)

// Shared, stateless encoder instances. They are safe for concurrent use.
var (
	Base16Encoding Encoder = &Base16Encoder{}
	Base32Encoding Encoder = &Base32Encoder{}
	Base58Encoding Encoder = &Base58Encoder{}
	Base62Encoding Encoder = &Base62Encoder{}
	Base64Encoding Encoder = &Base64Encoder{}
	Base85Encoding Encoder = &Base85Encoder{}
)

// Algorithms returns all supported algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{Base16, Base32, Base58, Base62, Base64, Base85}
}

// Encoder returns the encoder implementing the algorithm or nil if the algorithm is not valid.
func (a Algorithm) Encoder() Encoder {
	switch a {
	case Base16:
		return Base16Encoding
	case Base32:
		return Base32Encoding
	case Base58:
		return Base58Encoding
	case Base62:
		return Base62Encoding
	case Base64:
		return Base64Encoding
	case Base85:
		return Base85Encoding
	default:
		return nil
	}
}

func (a Algorithm) Valid() bool {
	return a.Encoder() != nil
}

func (a Algorithm) String() string {
	if e := a.Encoder(); e != nil {
		return e.Name()
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Extension returns the file extension (without the dot) or an empty string for invalid algorithms.
func (a Algorithm) Extension() string {
	if e := a.Encoder(); e != nil {
		return e.Extension()
	}
	return ""
}

// ParseAlgorithm finds the algorithm by its name or file extension, e.g. "Base64", "base64" or
// ".base64". The lookup is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.TrimPrefix(strings.TrimSpace(s), ".")
	for _, a := range Algorithms() {
		if strings.EqualFold(name, a.Extension()) {
			return a, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", s)
}

// AlgorithmFromChoice maps the menu choice (1-6) to the algorithm.
func AlgorithmFromChoice(n int) (Algorithm, error) {
	a := Algorithm(n)
	if !a.Valid() {
		return 0, errors.Wrapf(ErrUnknownAlgorithm, "choice %d is not between 1 and %d", n, len(Algorithms()))
	}
	return a, nil
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%v", a)
	}
	return []byte(a.Extension()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalFlag allows the algorithm to be used directly as a command line option.
func (a *Algorithm) UnmarshalFlag(value string) error {
	return a.UnmarshalText([]byte(value))
}

func (a Algorithm) MarshalFlag() (string, error) {
	text, err := a.MarshalText()
	return string(text), err
}
