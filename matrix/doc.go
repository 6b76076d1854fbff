// Package matrix offers a dense, row-major matrix container and two
// multiplication strategies.
//
// The matrix package provides:
//
//   - Dense[T], a generic matrix over any Number element type, stored in one
//     contiguous buffer. Constructors (NewFull, NewDense, NewZeros, NewOnes,
//     NewFromRows, NewFromData) reject zero dimensions with ErrInvalidDimensions.
//   - Row access without copies: Row, SetRow, Flattened, and the exact-size
//     cursors RowView (shared reads) and RowViewMut (disjoint writable rows).
//   - MulNaive, the single-threaded reference product, and MulParallel / Mul,
//     which computes every output row as an independent unit on a bounded
//     number of goroutines and joins before returning.
//
// Multiplication validates shapes before allocating; a mismatch is reported
// as a *DimensionMismatchError that matches ErrDimensionMismatch.
//
// See the examples in this package for usage patterns.
package matrix
