package clusterkit

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Dataset is a fixed, read-only collection of equal-dimension points
// stored as a flattened row-major []float32. It is cheap to copy and
// never mutated by any search.
type Dataset struct {
	data []float32
	dim  int
}

// NewDataset wraps a flattened row-major coordinate slice. The caller
// must not modify data afterwards.
func NewDataset(data []float32, dim int) (Dataset, error) {
	if dim <= 0 {
		return Dataset{}, &ErrInvalidDimension{Dimension: dim}
	}
	if len(data) == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	if len(data)%dim != 0 {
		return Dataset{}, fmt.Errorf("clusterkit: %d coordinates do not divide into rows of dimension %d", len(data), dim)
	}

	return Dataset{data: data, dim: dim}, nil
}

// FromVectors flattens a slice of equal-length vectors into a Dataset.
// The vectors are copied.
func FromVectors(vecs [][]float32) (Dataset, error) {
	if len(vecs) == 0 {
		return Dataset{}, ErrEmptyDataset
	}

	dim := len(vecs[0])
	if dim == 0 {
		return Dataset{}, &ErrInvalidDimension{Dimension: 0}
	}

	data := make([]float32, 0, len(vecs)*dim)
	for _, v := range vecs {
		if len(v) != dim {
			return Dataset{}, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
		data = append(data, v...)
	}

	return Dataset{data: data, dim: dim}, nil
}

// Len returns the number of points.
func (d Dataset) Len() int {
	if d.dim == 0 {
		return 0
	}
	return len(d.data) / d.dim
}

// Dim returns the point dimension.
func (d Dataset) Dim() int { return d.dim }

// At returns point i as a sub-slice of the backing array (no copy).
// Callers must treat it as read-only.
func (d Dataset) At(i int) []float32 {
	return d.data[i*d.dim : (i+1)*d.dim]
}

// subset copies the rows named by members into a new Dataset.
func (d Dataset) subset(members *roaring.Bitmap) Dataset {
	data := make([]float32, 0, int(members.GetCardinality())*d.dim)

	it := members.Iterator()
	for it.HasNext() {
		data = append(data, d.At(int(it.Next()))...)
	}

	return Dataset{data: data, dim: d.dim}
}
