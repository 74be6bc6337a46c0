package clusterkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSE(t *testing.T) {
	ds, err := FromVectors([][]float32{{0, 0}, {3, 4}})
	require.NoError(t, err)

	cents, err := CentroidsFromVectors([][]float32{{0, 0}})
	require.NoError(t, err)

	sse, err := SSE(ds, cents, Partition{0, 0})
	require.NoError(t, err)

	// 0 + |(3,4)| = 5; the objective sums plain distances.
	assert.InDelta(t, 5, sse, 1e-6)
}

func TestSSE_PerfectAssignment(t *testing.T) {
	vecs := [][]float32{{0, 0}, {1, 0}, {2, 0}}
	ds, err := FromVectors(vecs)
	require.NoError(t, err)

	cents, err := CentroidsFromVectors(vecs)
	require.NoError(t, err)

	sse, err := SSE(ds, cents, Partition{0, 1, 2})
	require.NoError(t, err)
	assert.Zero(t, sse)
}

func TestSSE_Errors(t *testing.T) {
	ds, err := FromVectors([][]float32{{0, 0}, {1, 1}})
	require.NoError(t, err)

	cents, err := CentroidsFromVectors([][]float32{{0, 0}})
	require.NoError(t, err)

	t.Run("EmptyDataset", func(t *testing.T) {
		_, err := SSE(Dataset{}, cents, nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("EmptyCentroids", func(t *testing.T) {
		_, err := SSE(ds, Centroids{}, Partition{0, 0})
		assert.ErrorIs(t, err, ErrEmptyCentroids)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		narrow, err := CentroidsFromVectors([][]float32{{0}})
		require.NoError(t, err)

		var dm *ErrDimensionMismatch
		_, serr := SSE(ds, narrow, Partition{0, 0})
		assert.ErrorAs(t, serr, &dm)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := SSE(ds, cents, Partition{0})
		assert.Error(t, err)
	})

	t.Run("SlotOutOfRange", func(t *testing.T) {
		var oor *ErrPartitionOutOfRange
		_, err := SSE(ds, cents, Partition{0, 1})
		assert.ErrorAs(t, err, &oor)
		assert.Equal(t, 1, oor.Index)
		assert.Equal(t, 1, oor.Slot)
		assert.Equal(t, 1, oor.K)
	})
}

func TestSSEBySlot(t *testing.T) {
	ds, err := FromVectors([][]float32{{0, 0}, {3, 4}, {10, 10}})
	require.NoError(t, err)

	cents, err := CentroidsFromVectors([][]float32{{0, 0}, {10, 10}})
	require.NoError(t, err)

	contrib := sseBySlot(ds, cents, Partition{0, 0, 1})
	require.Len(t, contrib, 2)
	assert.InDelta(t, 5, contrib[0], 1e-6)
	assert.InDelta(t, 0, contrib[1], 1e-6)
}
