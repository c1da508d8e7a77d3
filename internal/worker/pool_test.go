package worker_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"resxcheck/internal/worker"
)

func TestPoolRunsEveryIndex(t *testing.T) {
	const n = 50
	results := make([]int, n)

	worker.NewPool(4).Run(context.Background(), n, func(_ context.Context, i int) {
		results[i] = i + 1
	})

	for i, v := range results {
		assert.Equal(t, i+1, v)
	}
}

func TestPoolMinimumOneWorker(t *testing.T) {
	var count atomic.Int32
	worker.NewPool(0).Run(context.Background(), 3, func(_ context.Context, _ int) {
		count.Add(1)
	})
	assert.Equal(t, int32(3), count.Load())
}

func TestPoolCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count atomic.Int32
	worker.NewPool(2).Run(ctx, 100, func(_ context.Context, _ int) {
		count.Add(1)
	})

	// A pre-cancelled context stops workers before they drain the queue.
	assert.Less(t, int(count.Load()), 100)
}
