package clusterkit

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bisect grows a centroid set from one centroid (the global mean) to k
// by repeatedly splitting the cluster contributing the most SSE: the
// victim's points are re-clustered with a constrained two-centroid
// Lloyd search, the parent centroid is replaced by the two children,
// and the whole grown set is re-optimized before the next split.
//
// The result is the best state of the final full-set optimization.
func (c *Clusterer) Bisect(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := c.bisect(ctx)
	c.o.metrics.RecordRun(StrategyBisect, resIterations(res), time.Since(start), err)
	c.o.logger.LogRun(ctx, StrategyBisect, resSSE(res), resIterations(res), time.Since(start), err)

	return res, err
}

func (c *Clusterer) bisect(ctx context.Context) (*Result, error) {
	rng := c.o.rng

	cents := Centroids{data: mean(c.ds), dim: c.ds.Dim()}

	var last *Result
	part := make(Partition, c.ds.Len())

	for cents.K() < c.k {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := c.assign(ctx, cents, part, rng); err != nil {
			return nil, err
		}

		contrib := sseBySlot(c.ds, cents, part)
		worst := argmax(contrib)

		children, err := c.splitCluster(ctx, cents.At(worst), part.Members(worst), rng)
		if err != nil {
			return nil, err
		}

		cents = cents.withRowSplit(worst, children[0], children[1])

		res, err := c.lloyd(ctx, cents.Clone(), rng)
		if err != nil {
			return nil, err
		}

		cents = res.Centroids.Clone()
		last = res

		c.o.logger.DebugContext(ctx, "bisect step",
			"centroids", cents.K(),
			"split_slot", worst,
			"sse", res.SSE,
		)
	}

	if last == nil { // k == 1
		return c.lloyd(ctx, cents.Clone(), rng)
	}

	return last, nil
}

// splitCluster runs a two-centroid local search restricted to the
// member points and returns the two child centroids. Degenerate
// clusters (a single point, or all points at one location) fall back
// to pairing the parent with a random dataset point.
func (c *Clusterer) splitCluster(ctx context.Context, parent []float32, members *roaring.Bitmap, rng *rand.Rand) ([2][]float32, error) {
	fallback := [2][]float32{
		slices.Clone(parent),
		c.ds.At(rng.Intn(c.ds.Len())),
	}

	sub := c.ds.subset(members)
	if sub.Len() < 2 {
		return fallback, nil
	}

	subClusterer := &Clusterer{ds: sub, k: 2, o: c.o}

	res, err := subClusterer.lloyd(ctx, subClusterer.initRandom(rng), rng)
	if err != nil {
		if errors.Is(err, ErrRepairExhausted) {
			return fallback, nil
		}
		return [2][]float32{}, err
	}

	return [2][]float32{res.Centroids.At(0), res.Centroids.At(1)}, nil
}

func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}

	return best
}
