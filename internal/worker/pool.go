package worker

import (
	"context"
	"sync"
)

// Run fans tasks out over a bounded number of goroutines and returns one
// result per task, in task order. Each task runs at most once; when ctx is
// cancelled, unstarted tasks are skipped and their results stay the zero
// value. The match engine itself is single-threaded — this pool only
// parallelizes per-file work, such as converting several GEDCOM files.
func Run[T, R any](ctx context.Context, workers int, tasks []T, fn func(context.Context, T) R) []R {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	results := make([]R, len(tasks))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = fn(ctx, tasks[i])
			}
		}()
	}

	for i := range tasks {
		select {
		case <-ctx.Done():
			close(indices)
			wg.Wait()
			return results
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()
	return results
}
