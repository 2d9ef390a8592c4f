package transcode

import (
	"bytes"
	"fmt"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
)

// ErrIO matches every file system failure reported by this package.
var ErrIO = errors.New("i/o error")

// MaxInputSize is the largest file ReadFile will load into memory.
var MaxInputSize int64 = 1 << 30

// IOError records a failed file system operation and the path it was working on.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) match.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}

// ReadFile loads the whole file into memory.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ioError("stat", path, err)
	}
	if info.IsDir() {
		return nil, ioError("read", path, errors.New("is a directory"))
	}
	if info.Size() > MaxInputSize {
		return nil, errors.Wrapf(enc.ErrAllocationFailure, "%v is %d bytes, limit is %d", path, info.Size(), MaxInputSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return data, nil
}

// WriteFile replaces the content of the file, creating the file and its parent directories as needed.
// Readers never see a partially written file.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ioError("mkdir", dir, err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return ioError("write", path, err)
	}
	return nil
}
