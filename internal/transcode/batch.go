package transcode

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"path/filepath"
	"sync"
)

// ErrDuplicateOutput is returned when two jobs of a batch would write the same file.
var ErrDuplicateOutput = errors.New("duplicate output")

// Func processes a single job, e.g. EncodeFile or DecodeFile.
type Func func(Job) (*Result, error)

// Batch runs every job in its own goroutine and waits for all of them. Results are returned in job
// order; a failed job leaves a nil result and its error is part of the returned multierror, again in
// job order.
func Batch(jobs []Job, fn Func) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	failures := make([]error, len(jobs))

	wg := &sync.WaitGroup{}
	wg.Add(len(jobs))
	for i, job := range jobs {
		go func(i int, job Job) {
			defer wg.Done()
			results[i], failures[i] = fn(job)
		}(i, job)
	}
	wg.Wait()

	var errs error
	for _, err := range failures {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return results, errs
}

// CheckOutputs makes sure no two jobs write to the same path, e.g. `a/x.txt` and `b/x.txt` encoded into
// the same directory. Every clash is reported.
func CheckOutputs(jobs []Job, output func(Job) string) error {
	var errs error
	seen := make(map[string]string, len(jobs))
	for _, job := range jobs {
		path := filepath.Clean(output(job))
		if first, ok := seen[path]; ok {
			errs = multierror.Append(errs, errors.Wrapf(ErrDuplicateOutput, "%v and %v would both be written to %v", first, job.Input, path))
			continue
		}
		seen[path] = job.Input
	}
	return errs
}
