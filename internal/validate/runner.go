package validate

import (
	"context"

	"resxcheck/internal/grouping"
	"resxcheck/internal/worker"
)

// Run validates independent groups in parallel and returns their results in
// input order. Each group owns its diagnostic bag, so no synchronization is
// needed beyond the fan-out itself.
func (v *Validator) Run(ctx context.Context, groups []grouping.Group, workers int) []*GroupResult {
	results := make([]*GroupResult, len(groups))

	pool := worker.NewPool(workers)
	pool.Run(ctx, len(groups), func(_ context.Context, i int) {
		results[i] = v.Group(groups[i])
	})

	// Cancellation can leave gaps; fill them with skipped results so callers
	// can range without nil checks. A skipped group was never validated and
	// must not be mistaken for a clean one.
	for i, r := range results {
		if r == nil {
			results[i] = &GroupResult{Group: groups[i], Bag: NewBag(), Skipped: true}
		}
	}
	return results
}
