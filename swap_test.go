package clusterkit

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap_Validation(t *testing.T) {
	ck := newTestClusterer(t, [][]float32{{0, 0}, {1, 1}, {2, 2}}, 2, WithSeed(1))

	_, err := ck.Swap(context.Background(), ck.InitRandom(), 0)
	assert.ErrorIs(t, err, ErrInvalidRounds)

	_, err = ck.Swap(context.Background(), Centroids{}, 5)
	assert.ErrorIs(t, err, ErrEmptyCentroids)
}

// Properties: the running best SSE never increases across rounds, a
// round is accepted exactly when it improves on it, and a rejected
// round leaves the best unchanged.
func TestSwap_AcceptanceDiscipline(t *testing.T) {
	rng := rand.New(rand.NewSource(41))

	ds := blobDataset(t, rng, [][]float32{{0, 0}, {60, 0}, {0, 60}, {60, 60}}, 25, 6)

	collector := &recordingCollector{}
	ck, err := New(ds, 4,
		WithSeed(41),
		WithMetricsCollector(collector),
	)
	require.NoError(t, err)

	res, err := ck.Swap(context.Background(), ck.InitRandom(), 30)
	require.NoError(t, err)

	require.Len(t, collector.swaps, 30)

	best := math.Inf(1)
	for i, rec := range collector.swaps {
		if rec.accepted {
			assert.Less(t, rec.sse, best, "round %d accepted without improving", i)
			best = rec.sse
		} else {
			assert.GreaterOrEqual(t, rec.sse, best, "round %d rejected despite improving", i)
		}
	}

	assert.Equal(t, best, res.SSE)
	require.NoError(t, res.Partition.validate(4))
}

func TestSwap_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(43))

	ds := blobDataset(t, rng, [][]float32{{0, 0}, {20, 20}}, 30, 3)

	run := func() float64 {
		ck, err := New(ds, 2, WithSeed(43))
		require.NoError(t, err)

		res, err := ck.Swap(context.Background(), ck.InitRandom(), 20)
		require.NoError(t, err)

		return res.SSE
	}

	assert.Equal(t, run(), run())
}

func TestSwap_InitNotModified(t *testing.T) {
	ck := newTestClusterer(t, [][]float32{{0, 0}, {0, 1}, {10, 0}, {10, 1}}, 2, WithSeed(2))

	init, err := CentroidsFromVectors([][]float32{{0, 0}, {10, 0}})
	require.NoError(t, err)

	_, err = ck.Swap(context.Background(), init, 10)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 0}, init.At(0))
	assert.Equal(t, []float32{10, 0}, init.At(1))
}

func TestSwap_Canceled(t *testing.T) {
	ck := newTestClusterer(t, [][]float32{{0, 0}, {1, 1}, {2, 2}}, 2, WithSeed(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ck.Swap(ctx, ck.InitRandom(), 5)
	assert.ErrorIs(t, err, context.Canceled)
}
