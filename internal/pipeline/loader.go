package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/ledger"
	"github.com/theirongolddev/spendr/internal/model"
)

// LoadResult holds the output of loading one or more exported workbooks.
type LoadResult struct {
	Store       *ledger.Store
	TotalFiles  int
	LoadedFiles int
	FileErrors  []FileError
}

// FileError records a workbook that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e FileError) Unwrap() error { return e.Err }

// Err joins every file error, or returns nil when all files loaded.
func (r *LoadResult) Err() error {
	errs := make([]error, len(r.FileErrors))
	for i, fe := range r.FileErrors {
		errs[i] = fe
	}
	return errors.Join(errs...)
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load reads every workbook in paths using a bounded worker pool and merges
// the records into a new store. Files are merged in the order given, so the
// store's record order does not depend on scheduling. A file that fails to
// read is reported in FileErrors and skipped.
func Load(ctx context.Context, paths []string, opts []export.Option, progressFn ProgressFunc) (*LoadResult, error) {
	result := &LoadResult{
		Store:      ledger.New(),
		TotalFiles: len(paths),
	}
	if len(paths) == 0 {
		return result, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	type loaded struct {
		records []model.Expense
		err     error
	}

	work := make(chan int, len(paths))
	results := make([]loaded, len(paths))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range paths {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				if err := ctx.Err(); err != nil {
					results[idx].err = err
					continue
				}
				records, err := export.ReadExcel(paths[idx], opts...)
				results[idx] = loaded{records: records, err: err}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(paths))
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading workbooks: %w", err)
	}

	for i, r := range results {
		if r.err != nil {
			result.FileErrors = append(result.FileErrors, FileError{Path: paths[i], Err: r.err})
			continue
		}
		result.LoadedFiles++
		result.Store.Add(r.records...)
	}

	return result, nil
}
