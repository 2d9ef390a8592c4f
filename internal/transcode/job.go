package transcode

import (
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"path/filepath"
	"strings"
)

// Job describes a single file to encode or decode.
type Job struct {
	// Input is the path of the file to read
	Input string
	// OutputDir is the directory receiving the result. Defaults to DefaultOutputDir.
	OutputDir string
	// Algorithm is required for encoding. When decoding, a zero value means the algorithm is taken
	// from the extension of the input file.
	Algorithm enc.Algorithm
	// Length, if set, is the exact length of the decoded data. Decoded output is truncated to it.
	Length *int
}

// Result describes a finished job.
type Result struct {
	Input      string
	Output     string
	Algorithm  enc.Algorithm
	InputSize  int
	OutputSize int
}

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

func (j Job) String() string {
	return dumper.Sdump(j)
}

func (j Job) outputDir() string {
	if j.OutputDir == "" {
		return DefaultOutputDir
	}
	return j.OutputDir
}

// EncodedPath returns where EncodeFile writes the result of the job.
func EncodedPath(job Job) string {
	return filepath.Join(job.outputDir(), EncodedName(job.Input, job.Algorithm))
}

// DecodedPath returns where DecodeFile writes the result of the job.
func DecodedPath(job Job) string {
	return filepath.Join(job.outputDir(), DecodedName(job.Input))
}

// TrimNewline removes one trailing line ending, as left behind by most text editors.
func TrimNewline(text string) string {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2]
	}
	return strings.TrimSuffix(text, "\n")
}

// DecodeText decodes the text with the encoder. The trailing line ending is ignored and the
// result is truncated to length, if provided.
func DecodeText(e enc.Encoder, text string, length *int) ([]byte, error) {
	data, err := e.Decode(TrimNewline(text))
	if err != nil {
		return nil, err
	}
	if length != nil {
		if *length < 0 || *length > len(data) {
			return nil, errors.Wrapf(enc.ErrInvalidLength, "length %d does not fit %d decoded bytes", *length, len(data))
		}
		data = data[:*length]
	}
	return data, nil
}

// EncodeFile reads the input file and writes its encoded form into the output directory.
func EncodeFile(job Job) (*Result, error) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Encoding: %v", job)
	}

	e := job.Algorithm.Encoder()
	if e == nil {
		return nil, errors.Wrapf(enc.ErrUnknownAlgorithm, "%v", job.Algorithm)
	}

	data, err := ReadFile(job.Input)
	if err != nil {
		return nil, err
	}

	text, err := enc.CheckedEncode(e, data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not encode %v", job.Input)
	}

	output := EncodedPath(job)
	if err := WriteFile(output, []byte(text)); err != nil {
		return nil, err
	}

	log.Debugf("Encoded %v (%d bytes) with %v into %v (%d bytes)", job.Input, len(data), e.Name(), output, len(text))

	return &Result{
		Input:      job.Input,
		Output:     output,
		Algorithm:  job.Algorithm,
		InputSize:  len(data),
		OutputSize: len(text),
	}, nil
}

// DecodeFile reads the encoded input file and writes the decoded data into the output directory.
// The output name is the input name without its last extension.
func DecodeFile(job Job) (*Result, error) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Decoding: %v", job)
	}

	alg := job.Algorithm
	if !alg.Valid() {
		var err error
		if alg, err = AlgorithmFromName(job.Input); err != nil {
			return nil, err
		}
	}
	e := alg.Encoder()

	data, err := ReadFile(job.Input)
	if err != nil {
		return nil, err
	}

	decoded, err := DecodeText(e, string(data), job.Length)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %v", job.Input)
	}

	output := DecodedPath(job)
	if err := WriteFile(output, decoded); err != nil {
		return nil, err
	}

	log.Debugf("Decoded %v (%d bytes) with %v into %v (%d bytes)", job.Input, len(data), e.Name(), output, len(decoded))

	return &Result{
		Input:      job.Input,
		Output:     output,
		Algorithm:  alg,
		InputSize:  len(data),
		OutputSize: len(decoded),
	}, nil
}
