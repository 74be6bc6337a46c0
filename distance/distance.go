// Package distance provides the Euclidean distance kernels used by the
// clustering engine. The hot loops are unrolled four-wide; accumulating
// in independent lanes also keeps float32 rounding stable across call
// sites.
package distance

import "math"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func SquaredL2(a, b []float32) float32 {
	var s0, s1, s2, s3 float32

	i := 0
	for ; i+4 <= len(a); i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return s0 + s1 + s2 + s3
}

// L2 calculates the L2 (Euclidean) distance between two vectors,
// the square root of SquaredL2. Prefer SquaredL2 for ranking: argmin
// is unchanged under the square root and the sqrt is not free.
func L2(a, b []float32) float32 {
	return float32(math.Sqrt(float64(SquaredL2(a, b))))
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32
