package clusterkit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroidsFromVectors(t *testing.T) {
	cents, err := CentroidsFromVectors([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, cents.K())
	assert.Equal(t, 2, cents.Dim())
	assert.Equal(t, []float32{3, 4}, cents.At(1))

	_, err = CentroidsFromVectors(nil)
	assert.ErrorIs(t, err, ErrEmptyCentroids)

	var dm *ErrDimensionMismatch
	_, err = CentroidsFromVectors([][]float32{{1, 2}, {3}})
	assert.ErrorAs(t, err, &dm)
}

func TestCentroidsClone(t *testing.T) {
	cents, err := CentroidsFromVectors([][]float32{{1, 2}})
	require.NoError(t, err)

	clone := cents.Clone()
	clone.At(0)[0] = 99

	assert.Equal(t, float32(1), cents.At(0)[0])
}

func TestCentroidsWithRowSplit(t *testing.T) {
	cents, err := CentroidsFromVectors([][]float32{{1, 1}, {2, 2}, {3, 3}})
	require.NoError(t, err)

	grown := cents.withRowSplit(1, []float32{8, 8}, []float32{9, 9})

	require.Equal(t, 4, grown.K())
	assert.Equal(t, []float32{1, 1}, grown.At(0))
	assert.Equal(t, []float32{8, 8}, grown.At(1))
	assert.Equal(t, []float32{3, 3}, grown.At(2))
	assert.Equal(t, []float32{9, 9}, grown.At(3))

	// Parent set is untouched.
	assert.Equal(t, 3, cents.K())
	assert.Equal(t, []float32{2, 2}, cents.At(1))
}

// Property: each recomputed centroid coordinate equals the arithmetic
// mean of exactly its members' coordinates.
func TestRecompute_MeanCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	ds := blobDataset(t, rng, [][]float32{{0, 0, 0}, {5, 5, 5}, {-5, 0, 5}}, 20, 2)
	k := 3

	part := make(Partition, ds.Len())
	for i := range part {
		part[i] = rng.Intn(k)
	}

	cents := NewCentroids(k, ds.Dim())
	recompute(ds, part, cents)

	for slot := 0; slot < k; slot++ {
		sums := make([]float64, ds.Dim())
		count := 0
		for i := 0; i < ds.Len(); i++ {
			if part[i] != slot {
				continue
			}
			count++
			for j, v := range ds.At(i) {
				sums[j] += float64(v)
			}
		}
		require.Positive(t, count, "random partition left slot %d empty", slot)

		for j := 0; j < ds.Dim(); j++ {
			assert.InDelta(t, sums[j]/float64(count), cents.At(slot)[j], 1e-4)
		}
	}
}

func TestRecompute_EmptySlotKeepsCoordinates(t *testing.T) {
	ds, err := FromVectors([][]float32{{1, 1}, {3, 3}})
	require.NoError(t, err)

	cents, err := CentroidsFromVectors([][]float32{{0, 0}, {42, 42}})
	require.NoError(t, err)

	recompute(ds, Partition{0, 0}, cents)

	assert.Equal(t, []float32{2, 2}, cents.At(0))
	assert.Equal(t, []float32{42, 42}, cents.At(1))
}

func TestMean(t *testing.T) {
	ds, err := FromVectors([][]float32{{0, 0}, {2, 4}, {4, 8}})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{2, 4}, mean(ds), 1e-6)
}
