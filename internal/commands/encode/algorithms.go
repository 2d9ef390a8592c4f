package encode

import (
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/bokysan/basecodec/internal/util/fields"
	"strings"
)

// Algorithms collects the algorithms given on the command line, either with repeated options or as a
// comma-separated list, e.g. `-a base16,base64 -a base85`. Duplicates are ignored.
type Algorithms []enc.Algorithm

func (a *Algorithms) UnmarshalFlag(value string) error {
	for _, name := range fields.Split(value) {
		alg, err := enc.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		if !a.Contains(alg) {
			*a = append(*a, alg)
		}
	}
	return nil
}

func (a *Algorithms) UnmarshalText(text []byte) error {
	return a.UnmarshalFlag(string(text))
}

func (a Algorithms) Contains(alg enc.Algorithm) bool {
	for _, v := range a {
		if v == alg {
			return true
		}
	}
	return false
}

func (a Algorithms) String() string {
	names := make([]string, 0, len(a))
	for _, v := range a {
		names = append(names, v.Extension())
	}
	return strings.Join(names, ",")
}
