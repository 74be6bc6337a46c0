package clusterkit

// StopReason records why a local search stopped.
type StopReason int

const (
	// StopConverged: the SSE held the same value for three consecutive
	// iterations. This is an exact equality check, not an epsilon test.
	StopConverged StopReason = iota

	// StopExhausted: the iteration cap was reached first.
	StopExhausted
)

func (s StopReason) String() string {
	switch s {
	case StopConverged:
		return "converged"
	case StopExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the output contract shared by every search strategy: the
// lowest SSE observed together with the partition and centroid set
// that produced it. The caller owns the result; nothing retains it.
type Result struct {
	// SSE is the objective value of the returned state: the sum over
	// all points of the Euclidean distance to the assigned centroid.
	SSE float64

	// Partition assigns every dataset point to a centroid slot.
	Partition Partition

	// Centroids holds the centroid coordinates for each slot.
	Centroids Centroids

	// Iterations counts the Lloyd iterations of the run that produced
	// this result (for Restart, of the winning trial).
	Iterations int

	// Stop records how that run terminated.
	Stop StopReason
}
