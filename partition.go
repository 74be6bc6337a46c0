package clusterkit

import "github.com/RoaringBitmap/roaring/v2"

// Partition maps every point index to the slot of its assigned
// centroid. After a completed assignment pass every value lies in
// [0, k) and every slot owns at least one point.
type Partition []int

// Members returns the set of point indices assigned to slot as a
// bitmap. The bitmap is built fresh on every call; partitions are
// recomputed wholesale, never incrementally.
func (p Partition) Members(slot int) *roaring.Bitmap {
	bm := roaring.New()
	for i, s := range p {
		if s == slot {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Sizes returns the number of points assigned to each of k slots.
// Out-of-range entries are ignored; use validate to detect them.
func (p Partition) Sizes(k int) []int {
	sizes := make([]int, k)
	for _, s := range p {
		if s >= 0 && s < k {
			sizes[s]++
		}
	}

	return sizes
}

func (p Partition) validate(k int) error {
	for i, s := range p {
		if s < 0 || s >= k {
			return &ErrPartitionOutOfRange{Index: i, Slot: s, K: k}
		}
	}

	return nil
}
