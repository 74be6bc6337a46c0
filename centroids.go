package clusterkit

import "slices"

// Centroids is an indexable set of cluster centers sharing the
// Dataset's flattened row-major layout. Unlike a Dataset it is mutated
// in place by centroid recomputation and by swap perturbations.
type Centroids struct {
	data []float32
	dim  int
}

// NewCentroids allocates a zeroed k-row centroid set.
func NewCentroids(k, dim int) Centroids {
	return Centroids{data: make([]float32, k*dim), dim: dim}
}

// CentroidsFromVectors copies a slice of equal-length vectors into a
// centroid set.
func CentroidsFromVectors(vecs [][]float32) (Centroids, error) {
	if len(vecs) == 0 {
		return Centroids{}, ErrEmptyCentroids
	}

	dim := len(vecs[0])
	if dim == 0 {
		return Centroids{}, &ErrInvalidDimension{Dimension: 0}
	}

	c := NewCentroids(len(vecs), dim)
	for i, v := range vecs {
		if len(v) != dim {
			return Centroids{}, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
		c.setRow(i, v)
	}

	return c, nil
}

// K returns the number of centroids.
func (c Centroids) K() int {
	if c.dim == 0 {
		return 0
	}
	return len(c.data) / c.dim
}

// Dim returns the centroid dimension.
func (c Centroids) Dim() int { return c.dim }

// At returns centroid i as a sub-slice of the backing array (no copy).
func (c Centroids) At(i int) []float32 {
	return c.data[i*c.dim : (i+1)*c.dim]
}

// Clone returns a deep copy.
func (c Centroids) Clone() Centroids {
	return Centroids{data: slices.Clone(c.data), dim: c.dim}
}

func (c Centroids) setRow(i int, v []float32) {
	copy(c.data[i*c.dim:(i+1)*c.dim], v)
}

// withRowSplit returns a copy with row i replaced by a and b appended
// as the final row, growing the set by one.
func (c Centroids) withRowSplit(i int, a, b []float32) Centroids {
	out := Centroids{data: make([]float32, len(c.data)+c.dim), dim: c.dim}
	copy(out.data, c.data)
	out.setRow(i, a)
	out.setRow(out.K()-1, b)

	return out
}

// recompute replaces every centroid with the coordinate-wise mean of
// the points assigned to it. Slots with no members keep their previous
// coordinates; a completed assignment pass never produces one.
func recompute(ds Dataset, part Partition, cents Centroids) {
	k := cents.K()
	dim := ds.Dim()

	sums := make([]float64, k*dim)
	counts := make([]int, k)

	for i := 0; i < ds.Len(); i++ {
		slot := part[i]
		counts[slot]++

		p := ds.At(i)
		row := sums[slot*dim : (slot+1)*dim]
		for j, v := range p {
			row[j] += float64(v)
		}
	}

	for slot := 0; slot < k; slot++ {
		if counts[slot] == 0 {
			continue
		}

		inv := 1 / float64(counts[slot])
		row := cents.At(slot)
		for j := range row {
			row[j] = float32(sums[slot*dim+j] * inv)
		}
	}
}

// mean returns the coordinate-wise mean of the whole dataset.
func mean(ds Dataset) []float32 {
	dim := ds.Dim()
	sums := make([]float64, dim)

	for i := 0; i < ds.Len(); i++ {
		for j, v := range ds.At(i) {
			sums[j] += float64(v)
		}
	}

	out := make([]float32, dim)
	inv := 1 / float64(ds.Len())
	for j := range out {
		out[j] = float32(sums[j] * inv)
	}

	return out
}
