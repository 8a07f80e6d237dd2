// Package fileproc provides concurrent file processing utilities.
package fileproc

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// ProcessingError represents an error that occurred while processing a file.
type ProcessingError struct {
	Path string
	Err  error
}

func (e ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// DefaultWorkerMultiplier is the multiplier applied to NumCPU for worker count.
// 2x suits the mixed I/O and scanning workload.
const DefaultWorkerMultiplier = 2

// ProgressFunc is called after each file is processed.
type ProgressFunc func()

// ErrorFunc is called when a file processing error occurs.
// Receives the file path and the error. If nil, errors are silently skipped.
type ErrorFunc func(path string, err error)

// ForEachFile processes files in parallel, calling fn for each file.
// Results are collected and returned in arbitrary order; errors from
// individual files are silently skipped.
func ForEachFile[T any](files []string, fn func(string) (T, error)) []T {
	return ForEachFileN(files, 0, fn, nil, nil)
}

// ForEachFileWithProgress processes files in parallel with optional progress callback.
func ForEachFileWithProgress[T any](files []string, fn func(string) (T, error), onProgress ProgressFunc) []T {
	return ForEachFileN(files, 0, fn, onProgress, nil)
}

// ForEachFileN processes files with configurable worker count and callbacks.
// If maxWorkers is <= 0, defaults to 2x NumCPU. A file whose fn returns an
// error contributes no result; the error is reported through onError.
func ForEachFileN[T any](files []string, maxWorkers int, fn func(string) (T, error), onProgress ProgressFunc, onError ErrorFunc) []T {
	if len(files) == 0 {
		return nil
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU() * DefaultWorkerMultiplier
	}

	results := make([]T, 0, len(files))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for _, path := range files {
		p.Go(func() {
			result, err := fn(path)

			if err != nil {
				if onError != nil {
					onError(path, err)
				}
				if onProgress != nil {
					onProgress()
				}
				return
			}

			if onProgress != nil {
				onProgress()
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
	}
	p.Wait()

	return results
}
