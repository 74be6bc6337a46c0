// Package persistence reads datasets from and writes clustering
// results to human-readable text.
//
// Datasets are whitespace-separated numeric rows, one point per line;
// the dimension is inferred from the first row. Files ending in .zst
// or .lz4 are decompressed transparently.
//
// Output stays deliberately plain: one centroid per row, one slot
// index per partition line, so results diff cleanly between runs.
package persistence
