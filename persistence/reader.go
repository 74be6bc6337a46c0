package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/clusterkit"
)

// maxLineBytes caps a single dataset row. High-dimensional rows are
// expected; pathological ones are not.
const maxLineBytes = 16 << 20

// Open reads a dataset file, decompressing .zst and .lz4 files
// transparently based on the file extension.
func Open(path string) (clusterkit.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return clusterkit.Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	switch {
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return clusterkit.Dataset{}, fmt.Errorf("open zstd dataset: %w", err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".lz4"):
		r = lz4.NewReader(f)
	}

	ds, err := ReadDataset(r)
	if err != nil {
		return clusterkit.Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}

	return ds, nil
}

// ReadDataset parses whitespace-separated numeric rows into a Dataset.
// The dimension is inferred from the first non-empty row; every later
// row must match it. Blank lines are skipped. An input with no rows
// returns clusterkit.ErrEmptyDataset.
func ReadDataset(r io.Reader) (clusterkit.Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		data []float32
		dim  int
		line int
	)

	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if dim == 0 {
			dim = len(fields)
		} else if len(fields) != dim {
			return clusterkit.Dataset{}, fmt.Errorf("line %d: got %d values, want %d", line, len(fields), dim)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return clusterkit.Dataset{}, fmt.Errorf("line %d: %w", line, err)
			}
			data = append(data, float32(v))
		}
	}

	if err := sc.Err(); err != nil {
		return clusterkit.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	if dim == 0 {
		return clusterkit.Dataset{}, clusterkit.ErrEmptyDataset
	}

	return clusterkit.NewDataset(data, dim)
}
