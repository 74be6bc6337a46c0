package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterkit"
)

const sampleInput = "0 0\n0 1\n\n10 0\n10 1\n"

func assertSampleDataset(t *testing.T, ds clusterkit.Dataset) {
	t.Helper()

	require.Equal(t, 4, ds.Len())
	require.Equal(t, 2, ds.Dim())
	assert.Equal(t, []float32{0, 0}, ds.At(0))
	assert.Equal(t, []float32{10, 1}, ds.At(3))
}

func TestReadDataset(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assertSampleDataset(t, ds)
}

func TestReadDataset_InfersDimensionFromFirstRow(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader("1.5 -2 3e1\n4 5 6\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Dim())
	assert.Equal(t, []float32{1.5, -2, 30}, ds.At(0))
}

func TestReadDataset_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(""))
		assert.ErrorIs(t, err, clusterkit.ErrEmptyDataset)
	})

	t.Run("blank lines only", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("\n\n  \n"))
		assert.ErrorIs(t, err, clusterkit.ErrEmptyDataset)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("1 2\n3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("1 2\n3 oops\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestOpen_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o600))

	ds, err := Open(path)
	require.NoError(t, err)
	assertSampleDataset(t, ds)
}

func TestOpen_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt.zst")

	f, err := os.Create(path)
	require.NoError(t, err)

	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(sampleInput))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	ds, err := Open(path)
	require.NoError(t, err)
	assertSampleDataset(t, ds)
}

func TestOpen_LZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt.lz4")

	f, err := os.Create(path)
	require.NoError(t, err)

	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(sampleInput))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	ds, err := Open(path)
	require.NoError(t, err)
	assertSampleDataset(t, ds)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
