package commands

import (
	"fmt"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/transcode"
	"github.com/pkg/errors"
	"io"
	"os"
)

// Prepare applies the general options before a command starts working.
func Prepare() error {
	if err := logging.SetupLogging(); err != nil {
		return errors.WithStack(err)
	}
	if args.General.MaxInputSize > 0 {
		transcode.MaxInputSize = args.General.MaxInputSize
	}
	return nil
}

// Output returns w or standard output if w is not set.
func Output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// PrintResults writes one line per finished job. Failed jobs are skipped, they are reported through the error.
//goland:noinspection GoUnhandledErrorResult
func PrintResults(w io.Writer, verb string, results []*transcode.Result) {
	for _, r := range results {
		if r == nil {
			continue
		}
		fmt.Fprintf(w, "%s %v (%d bytes) with %v into %v (%d bytes)\n", verb, r.Input, r.InputSize, r.Algorithm, r.Output, r.OutputSize)
	}
}
