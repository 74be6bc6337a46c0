package clusterkit

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/time/rate"
)

// Swap runs random-swap hill climbing from the given initial
// centroids: each round moves one uniformly random centroid onto one
// uniformly random dataset point, re-optimizes with a full Lloyd
// search, and keeps the optimized centroids only if the SSE improved.
// A rejected round restores just the perturbed row.
//
// Rounds are inherently sequential (each acceptance decision depends
// on the previously accepted state); only the Lloyd search inside a
// round uses assignment-level parallelism. init is not modified.
func (c *Clusterer) Swap(ctx context.Context, init Centroids, rounds int) (*Result, error) {
	if err := c.checkInit(init); err != nil {
		return nil, err
	}
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}

	start := time.Now()
	res, err := c.swap(ctx, init, rounds)
	c.o.metrics.RecordRun(StrategySwap, resIterations(res), time.Since(start), err)
	c.o.logger.LogRun(ctx, StrategySwap, resSSE(res), resIterations(res), time.Since(start), err)

	return res, err
}

func (c *Clusterer) swap(ctx context.Context, init Centroids, rounds int) (*Result, error) {
	rng := c.o.rng
	n := c.ds.Len()

	cents := init.Clone()
	best := &Result{SSE: math.Inf(1)}

	prevRow := make([]float32, c.ds.Dim())
	progress := rate.Sometimes{Interval: progressLogInterval}

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slot := rng.Intn(c.k)
		point := rng.Intn(n)

		copy(prevRow, cents.At(slot))
		cents.setRow(slot, c.ds.At(point))

		// Full independent local optimization from the perturbed set;
		// lloyd works on its own copy so cents keeps only the swap.
		res, err := c.lloyd(ctx, cents.Clone(), rng)
		if err != nil {
			return nil, err
		}

		accepted := res.SSE < best.SSE
		if accepted {
			best = res
			cents = res.Centroids.Clone()
		} else {
			cents.setRow(slot, prevRow)
		}

		c.o.metrics.RecordSwap(accepted, res.SSE)

		progress.Do(func() {
			c.o.logger.DebugContext(ctx, "swap progress",
				"round", round+1,
				"of", rounds,
				"best_sse", best.SSE,
			)
		})
	}

	return best, nil
}
