package clusterkit

import (
	"context"
	"math"
	"math/rand"
	"slices"
	"time"
)

// stagnationLimit stops a Lloyd run once this many consecutive
// iterations report an exactly equal SSE.
const stagnationLimit = 3

// Lloyd runs the alternating assign/recompute local search from the
// given initial centroids until the SSE stagnates or the iteration cap
// is reached. init is not modified.
//
// The returned Result holds the best state observed across all
// iterations, not necessarily the final one (the SSE sequence is
// non-increasing in exact arithmetic, but float rounding can regress
// it by a hair).
func (c *Clusterer) Lloyd(ctx context.Context, init Centroids) (*Result, error) {
	if err := c.checkInit(init); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.lloyd(ctx, init.Clone(), c.o.rng)
	c.o.metrics.RecordRun(StrategyLloyd, resIterations(res), time.Since(start), err)
	c.o.logger.LogRun(ctx, StrategyLloyd, resSSE(res), resIterations(res), time.Since(start), err)

	return res, err
}

// lloyd is the engine shared by every strategy. It owns cents (the
// caller passes a private copy) and mutates it in place across
// iterations.
func (c *Clusterer) lloyd(ctx context.Context, cents Centroids, rng *rand.Rand) (*Result, error) {
	part := make(Partition, c.ds.Len())

	best := &Result{SSE: math.Inf(1), Stop: StopExhausted}

	prev := math.Inf(1)
	equalRun := 1

	iter := 0
	for ; iter < c.o.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := c.assign(ctx, cents, part, rng); err != nil {
			return nil, err
		}

		recompute(c.ds, part, cents)

		sse, err := SSE(c.ds, cents, part)
		if err != nil {
			return nil, err
		}

		c.o.metrics.RecordIteration(sse)

		if sse < best.SSE {
			best.SSE = sse
			best.Partition = slices.Clone(part)
			best.Centroids = cents.Clone()
		}

		if sse == prev {
			equalRun++
			if equalRun >= stagnationLimit {
				best.Stop = StopConverged
				iter++
				break
			}
		} else {
			equalRun = 1
		}
		prev = sse
	}

	best.Iterations = iter

	return best, nil
}

func resSSE(res *Result) float64 {
	if res == nil {
		return math.NaN()
	}
	return res.SSE
}

func resIterations(res *Result) int {
	if res == nil {
		return 0
	}
	return res.Iterations
}
