package util

import (
	"errors"
	"github.com/bokysan/basecodec/internal/transcode"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
)

const (
	ErrOddLength         = 10
	ErrInvalidCharacter  = 11
	ErrInvalidLength     = 12
	ErrEmptyInput        = 13
	ErrAllocationFailure = 14
	ErrUnknownAlgorithm  = 15
	ErrIO                = 16
	ErrGeneric           = 99
)

var exitCodes = []struct {
	err  error
	code int
}{
	{enc.ErrOddLength, ErrOddLength},
	{enc.ErrInvalidCharacter, ErrInvalidCharacter},
	{enc.ErrInvalidLength, ErrInvalidLength},
	{enc.ErrValueOverflow, ErrInvalidLength},
	{enc.ErrEmptyInput, ErrEmptyInput},
	{enc.ErrAllocationFailure, ErrAllocationFailure},
	{enc.ErrUnknownAlgorithm, ErrUnknownAlgorithm},
	{transcode.ErrIO, ErrIO},
}

// ExitCode maps an error to the process exit code. Command line errors keep the `flags.Error` type,
// codec and I/O failures map to their own codes and anything else is ErrGeneric. For an aggregated
// batch error the code of the first failure is used.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		return ExitCode(merr.Errors[0])
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		return int(flagsError.Type)
	}

	for _, c := range exitCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return ErrGeneric
}
