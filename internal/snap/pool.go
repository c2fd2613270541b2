package snap

import (
	"context"
	"sync"
)

// batchTask is one unit of work for the pool: a contiguous slice of
// segments to snap, addressed by its position so results can be placed
// back in the original order regardless of completion order (spec §5:
// snapping must be deterministic even though it runs in parallel).
type batchTask struct {
	index    int
	segments []toSnap
}

// batchResult is the outcome of snapping one batch.
type batchResult struct {
	index    int
	attrs    []attributed
	err      error
}

// ProgressFunc is called after each batch completes.
type ProgressFunc func(completedBatches, totalBatches int)

// runPool splits segments into cfg.BatchSize batches and snaps them
// across cfg.Workers goroutines, adapted from the teacher's tile worker
// pool: a buffered task channel feeding fixed workers, with results
// collected into a pre-sized slice so output order never depends on
// goroutine scheduling.
func runPool(ctx context.Context, segments []toSnap, snapOne func(toSnap) attributed, cfg Config, onProgress ProgressFunc) []attributed {
	if len(segments) == 0 {
		return nil
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 250
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var batches []batchTask
	for start := 0; start < len(segments); start += batchSize {
		end := start + batchSize
		if end > len(segments) {
			end = len(segments)
		}
		batches = append(batches, batchTask{index: len(batches), segments: segments[start:end]})
	}

	taskCh := make(chan batchTask, len(batches))
	resultCh := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range taskCh {
				select {
				case <-ctx.Done():
					resultCh <- batchResult{index: b.index, err: ctx.Err()}
					continue
				default:
				}
				out := make([]attributed, len(b.segments))
				for i, s := range b.segments {
					out[i] = snapOne(s)
				}
				resultCh <- batchResult{index: b.index, attrs: out}
			}
		}()
	}

	for _, b := range batches {
		taskCh <- b
	}
	close(taskCh)

	results := make([][]attributed, len(batches))
	completed := 0
	for range batches {
		r := <-resultCh
		results[r.index] = r.attrs
		completed++
		if onProgress != nil {
			onProgress(completed, len(batches))
		}
	}
	wg.Wait()

	out := make([]attributed, 0, len(segments))
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
