package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/clusterkit"
)

// WriteCentroids writes one centroid per line, coordinates separated
// by single spaces.
func WriteCentroids(w io.Writer, cents clusterkit.Centroids) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < cents.K(); i++ {
		for j, v := range cents.At(i) {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%g", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePartition writes one slot index per line, in point order.
func WritePartition(w io.Writer, part clusterkit.Partition) error {
	bw := bufio.NewWriter(w)

	for _, slot := range part {
		if _, err := fmt.Fprintln(bw, slot); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteClusters writes one line per cluster slot listing its member
// point indices, using the partition's membership bitmaps.
func WriteClusters(w io.Writer, part clusterkit.Partition, k int) error {
	bw := bufio.NewWriter(w)

	for slot := 0; slot < k; slot++ {
		if _, err := fmt.Fprintf(bw, "%d:", slot); err != nil {
			return err
		}

		it := part.Members(slot).Iterator()
		for it.HasNext() {
			if _, err := fmt.Fprintf(bw, " %d", it.Next()); err != nil {
				return err
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveCentroids writes centroids to a file.
func SaveCentroids(path string, cents clusterkit.Centroids) error {
	return saveTo(path, func(w io.Writer) error {
		return WriteCentroids(w, cents)
	})
}

// SavePartition writes a partition to a file.
func SavePartition(path string, part clusterkit.Partition) error {
	return saveTo(path, func(w io.Writer) error {
		return WritePartition(w, part)
	})
}

func saveTo(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
