package clusterkit

import (
	"fmt"
	"math/rand"
)

// Strategy names, as reported to loggers and metrics collectors.
const (
	StrategyLloyd   = "lloyd"
	StrategyRestart = "restart"
	StrategySwap    = "swap"
	StrategyBisect  = "bisect"
)

// Clusterer clusters one fixed dataset into k groups. It validates its
// inputs once at construction; every search entry point then works on
// the same dataset.
//
// A Clusterer must not be used from multiple goroutines at once: the
// random source and search state belong to the running call.
type Clusterer struct {
	ds Dataset
	k  int
	o  options
}

// New creates a Clusterer for ds and k. It refuses to start with an
// empty dataset, a non-positive k, or fewer points than k.
func New(ds Dataset, k int, optFns ...Option) (*Clusterer, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if ds.Len() < k {
		return nil, fmt.Errorf("%w: %d points, k=%d", ErrTooFewPoints, ds.Len(), k)
	}

	return &Clusterer{ds: ds, k: k, o: applyOptions(optFns)}, nil
}

// K returns the configured cluster count.
func (c *Clusterer) K() int { return c.k }

// Dataset returns the dataset being clustered.
func (c *Clusterer) Dataset() Dataset { return c.ds }

// InitRandom draws a fresh centroid set of k distinct dataset points,
// sampled uniformly without replacement.
func (c *Clusterer) InitRandom() Centroids {
	return c.initRandom(c.o.rng)
}

func (c *Clusterer) initRandom(rng *rand.Rand) Centroids {
	perm := rng.Perm(c.ds.Len())

	cents := NewCentroids(c.k, c.ds.Dim())
	for i := 0; i < c.k; i++ {
		cents.setRow(i, c.ds.At(perm[i]))
	}

	return cents
}

// checkInit validates a caller-supplied initial centroid set.
func (c *Clusterer) checkInit(init Centroids) error {
	if init.K() == 0 {
		return ErrEmptyCentroids
	}
	if init.Dim() != c.ds.Dim() {
		return &ErrDimensionMismatch{Expected: c.ds.Dim(), Actual: init.Dim()}
	}
	if init.K() != c.k {
		return fmt.Errorf("%w: got %d centroids, want k=%d", ErrInvalidK, init.K(), c.k)
	}

	return nil
}
