package clusterkit

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// progressLogInterval throttles per-round progress logging in the
// long-running metaheuristics.
const progressLogInterval = time.Second

// Restart runs `repeats` independent Lloyd searches, each from a fresh
// uniformly random initialization, and returns the best result.
//
// Trials run concurrently up to the Parallelism option. Each trial
// draws its own random stream derived from the Clusterer's source
// before any trial starts, so the set of trials (and therefore the
// winner) depends only on the seed, not on scheduling.
func (c *Clusterer) Restart(ctx context.Context, repeats int) (*Result, error) {
	if repeats < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRepeats, repeats)
	}

	start := time.Now()
	res, err := c.restart(ctx, repeats)
	c.o.metrics.RecordRun(StrategyRestart, resIterations(res), time.Since(start), err)
	c.o.logger.LogRun(ctx, StrategyRestart, resSSE(res), resIterations(res), time.Since(start), err)

	return res, err
}

func (c *Clusterer) restart(ctx context.Context, repeats int) (*Result, error) {
	// rand.Rand is not goroutine-safe; hand every trial its own stream.
	seeds := make([]int64, repeats)
	for i := range seeds {
		seeds[i] = c.o.rng.Int63()
	}

	var (
		mu   sync.Mutex
		best *Result
		done int
	)

	progress := rate.Sometimes{Interval: progressLogInterval}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.o.parallelism)

	for t := 0; t < repeats; t++ {
		t := t
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[t])) //nolint:gosec

			res, err := c.lloyd(gctx, c.initRandom(rng), rng)
			if err != nil {
				return err
			}

			c.o.metrics.RecordTrial(res.SSE)

			mu.Lock()
			if best == nil || res.SSE < best.SSE {
				best = res
			}
			done++
			trials, sse := done, best.SSE
			mu.Unlock()

			progress.Do(func() {
				c.o.logger.DebugContext(gctx, "restart progress",
					"trials", trials,
					"of", repeats,
					"best_sse", sse,
				)
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return best, nil
}
