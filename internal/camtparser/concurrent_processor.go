package camtparser

import (
	"context"
	"runtime"
	"sync"

	"fjacquet/camt-report/internal/logging"
)

// sequentialThreshold is the file count below which workers are not worth starting
const sequentialThreshold = 4

// FileResult is the outcome of processing one file
type FileResult struct {
	Path string
	Err  error
}

// FileFunc processes a single file
type FileFunc func(ctx context.Context, path string) error

// ConcurrentProcessor runs a FileFunc over many files with a bounded worker pool.
// Results are returned in input order.
type ConcurrentProcessor struct {
	logger      logging.Logger
	workerCount int
}

// NewConcurrentProcessor creates a processor. workers <= 0 selects runtime.NumCPU().
func NewConcurrentProcessor(logger logging.Logger, workers int) *ConcurrentProcessor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ConcurrentProcessor{
		logger:      logger,
		workerCount: workers,
	}
}

// ProcessFiles applies fn to every path. Files not started before ctx is cancelled
// report ctx.Err().
func (cp *ConcurrentProcessor) ProcessFiles(ctx context.Context, paths []string, fn FileFunc) []FileResult {
	if len(paths) < sequentialThreshold || cp.workerCount == 1 {
		return cp.processSequential(ctx, paths, fn)
	}
	return cp.processConcurrent(ctx, paths, fn)
}

func (cp *ConcurrentProcessor) processSequential(ctx context.Context, paths []string, fn FileFunc) []FileResult {
	results := make([]FileResult, len(paths))
	for i, path := range paths {
		results[i] = FileResult{Path: path}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		results[i].Err = fn(ctx, path)
	}
	return results
}

type indexedPath struct {
	index int
	path  string
}

func (cp *ConcurrentProcessor) processConcurrent(ctx context.Context, paths []string, fn FileFunc) []FileResult {
	results := make([]FileResult, len(paths))
	for i, path := range paths {
		results[i] = FileResult{Path: path}
	}

	workers := cp.workerCount
	if workers > len(paths) {
		workers = len(paths)
	}

	work := make(chan indexedPath)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				// each index is written by exactly one worker
				results[item.index].Err = fn(ctx, item.path)
			}
		}()
	}

feed:
	for i, path := range paths {
		select {
		case work <- indexedPath{index: i, path: path}:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j].Err = ctx.Err()
			}
			break feed
		}
	}
	close(work)
	wg.Wait()

	cp.logger.Debug("Concurrent processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(paths)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})

	return results
}
