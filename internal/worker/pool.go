// Package worker provides a small fixed-size fan-out for independent tasks.
package worker

import (
	"context"
	"sync"
)

// Pool runs indexed tasks on a fixed number of goroutines. Results are
// written by the task function into caller-owned, per-index storage, so the
// pool itself needs no synchronization beyond the index channel.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given concurrency, minimum one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run invokes task for every index in [0, n), honoring context cancellation.
// It returns once every started task has finished.
func (p *Pool) Run(ctx context.Context, n int, task func(ctx context.Context, i int)) {
	indexCh := make(chan int, n)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-indexCh:
					if !ok {
						return
					}
					task(ctx, i)
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		indexCh <- i
	}
	close(indexCh)

	wg.Wait()
}
