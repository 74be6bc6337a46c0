package clusterkit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a dataset holds no points.
	ErrEmptyDataset = errors.New("clusterkit: empty dataset")

	// ErrEmptyCentroids is returned when a centroid set holds no rows.
	ErrEmptyCentroids = errors.New("clusterkit: empty centroid set")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("clusterkit: k must be positive")

	// ErrTooFewPoints is returned when a dataset holds fewer points than k.
	ErrTooFewPoints = errors.New("clusterkit: dataset smaller than k")

	// ErrInvalidRepeats is returned when a restart count is not positive.
	ErrInvalidRepeats = errors.New("clusterkit: repeats must be positive")

	// ErrInvalidRounds is returned when a swap round count is not positive.
	ErrInvalidRounds = errors.New("clusterkit: rounds must be positive")

	// ErrRepairExhausted is returned when empty-cluster repair cannot
	// produce a full partition within the configured attempt bound.
	// Typical cause: fewer distinct point locations than k.
	ErrRepairExhausted = errors.New("clusterkit: empty-cluster repair did not converge")
)

// ErrDimensionMismatch indicates a point/centroid dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("clusterkit: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("clusterkit: invalid dimension: %d", e.Dimension)
}

// ErrPartitionOutOfRange indicates a partition entry outside [0, k).
// It signals a broken internal invariant (for example a partition from
// a different run reaching the objective), never a user input problem.
type ErrPartitionOutOfRange struct {
	Index int // point index
	Slot  int // offending slot value
	K     int
}

func (e *ErrPartitionOutOfRange) Error() string {
	return fmt.Sprintf("clusterkit: partition[%d] = %d outside [0, %d)", e.Index, e.Slot, e.K)
}
