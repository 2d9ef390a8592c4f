package util

import (
	"errors"
	"github.com/bokysan/basecodec/internal/transcode"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))

	require.Equal(t, ErrOddLength, ExitCode(enc.ErrOddLength))
	require.Equal(t, ErrInvalidCharacter, ExitCode(pkgerrors.WithStack(&enc.InvalidCharacterError{Encoding: "Base64", Symbol: '-', Offset: 2})))
	require.Equal(t, ErrInvalidLength, ExitCode(pkgerrors.Wrapf(enc.ErrInvalidLength, "Base85")))
	require.Equal(t, ErrInvalidLength, ExitCode(enc.ErrValueOverflow))
	require.Equal(t, ErrEmptyInput, ExitCode(enc.ErrEmptyInput))
	require.Equal(t, ErrAllocationFailure, ExitCode(enc.ErrAllocationFailure))
	require.Equal(t, ErrUnknownAlgorithm, ExitCode(pkgerrors.Wrapf(enc.ErrUnknownAlgorithm, "base91")))
	require.Equal(t, ErrIO, ExitCode(&transcode.IOError{Op: "read", Path: "x", Err: os.ErrNotExist}))
}

func Test_ExitCodeFlagsError(t *testing.T) {
	err := pkgerrors.WithStack(&flags.Error{Type: flags.ErrRequired, Message: "missing"})
	require.Equal(t, int(flags.ErrRequired), ExitCode(err))
}

func Test_ExitCodeMultiError(t *testing.T) {
	var errs error
	errs = multierror.Append(errs, pkgerrors.Wrapf(enc.ErrEmptyInput, "a.base62"))
	errs = multierror.Append(errs, enc.ErrOddLength)
	require.Equal(t, ErrEmptyInput, ExitCode(errs))
}
