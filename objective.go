package clusterkit

import (
	"fmt"

	"github.com/hupe1980/clusterkit/distance"
)

// SSE evaluates the objective for a dataset, centroid set and
// partition: the sum over all points of the Euclidean distance between
// the point and its assigned centroid.
//
// Nearest-centroid ranking elsewhere uses squared distances (argmin is
// unchanged under the square root); the objective keeps the plain
// distance so reported values match the historical definition.
//
// A partition value outside [0, k) returns ErrPartitionOutOfRange: it
// means a partition from somewhere else reached the objective, which
// is always a defect, never an input problem.
func SSE(ds Dataset, cents Centroids, part Partition) (float64, error) {
	if ds.Len() == 0 {
		return 0, ErrEmptyDataset
	}

	k := cents.K()
	if k == 0 {
		return 0, ErrEmptyCentroids
	}

	if cents.Dim() != ds.Dim() {
		return 0, &ErrDimensionMismatch{Expected: ds.Dim(), Actual: cents.Dim()}
	}

	if len(part) != ds.Len() {
		return 0, fmt.Errorf("clusterkit: partition length %d does not match %d points", len(part), ds.Len())
	}

	var total float64
	for i := 0; i < ds.Len(); i++ {
		slot := part[i]
		if slot < 0 || slot >= k {
			return 0, &ErrPartitionOutOfRange{Index: i, Slot: slot, K: k}
		}

		total += float64(distance.L2(ds.At(i), cents.At(slot)))
	}

	return total, nil
}

// sseBySlot returns each slot's contribution to the objective.
// Assumes a validated partition.
func sseBySlot(ds Dataset, cents Centroids, part Partition) []float64 {
	out := make([]float64, cents.K())
	for i := 0; i < ds.Len(); i++ {
		out[part[i]] += float64(distance.L2(ds.At(i), cents.At(part[i])))
	}

	return out
}
