package clusterkit

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clusterkit/distance"
)

// parallelThreshold is the minimum dataset size worth fanning the
// assignment loop out over goroutines.
const parallelThreshold = 2048

// assign maps every point to its nearest centroid, writing into part.
// Ties break toward the highest slot index (the scan keeps the last
// minimum it sees).
//
// A pass that leaves any slot without members is repaired: every empty
// slot is reseeded to a uniformly random dataset point and the whole
// assignment reruns. The repair loop is bounded; exhaustion means the
// dataset cannot populate k clusters (for example fewer distinct
// locations than k) and surfaces ErrRepairExhausted.
//
// Repair passes are atomic: part is only ever a complete assignment
// against one centroid snapshot, never a partially repaired mix.
func (c *Clusterer) assign(ctx context.Context, cents Centroids, part Partition, rng *rand.Rand) error {
	n := c.ds.Len()
	if n == 0 {
		return ErrEmptyDataset
	}

	k := cents.K()
	if k == 0 {
		return ErrEmptyCentroids
	}

	counts := make([]int, k)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		clear(counts)

		if c.o.parallelism > 1 && n >= parallelThreshold {
			if err := c.assignParallel(ctx, cents, part, counts); err != nil {
				return err
			}
		} else {
			assignRange(c.ds, cents, part, counts, 0, n)
		}

		empty := counts[:0:0]
		for slot, count := range counts {
			if count == 0 {
				empty = append(empty, slot)
			}
		}

		if len(empty) == 0 {
			return nil
		}

		if attempt >= c.o.maxRepairAttempts {
			return ErrRepairExhausted
		}

		for _, slot := range empty {
			cents.setRow(slot, c.ds.At(rng.Intn(n)))
		}

		c.o.metrics.RecordRepair(len(empty))
		c.o.logger.LogRepair(ctx, attempt+1, len(empty))
	}
}

// assignParallel scores the point range in chunks on an errgroup.
// Chunks write disjoint regions of part; slot counts are accumulated
// per chunk and merged afterwards so the empty-slot check always sees
// a complete pass.
func (c *Clusterer) assignParallel(ctx context.Context, cents Centroids, part Partition, counts []int) error {
	n := c.ds.Len()
	workers := c.o.parallelism
	chunk := (n + workers - 1) / workers

	locals := make([][]int, 0, workers)

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)

		local := make([]int, cents.K())
		locals = append(locals, local)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			assignRange(c.ds, cents, part, local, lo, hi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, local := range locals {
		for slot, count := range local {
			counts[slot] += count
		}
	}

	return nil
}

func assignRange(ds Dataset, cents Centroids, part Partition, counts []int, lo, hi int) {
	k := cents.K()

	for i := lo; i < hi; i++ {
		p := ds.At(i)

		best := 0
		bestDist := distance.SquaredL2(p, cents.At(0))
		for slot := 1; slot < k; slot++ {
			// <= keeps the last tied minimum, matching the slot order
			// the rest of the engine relies on.
			if d := distance.SquaredL2(p, cents.At(slot)); d <= bestDist {
				bestDist = d
				best = slot
			}
		}

		part[i] = best
		counts[best]++
	}
}
