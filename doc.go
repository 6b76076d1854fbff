// Package rowmat is a small dense-matrix library: one row-major container,
// row cursors that hand out slices of it without copying, and two ways to
// multiply.
//
// What is in the box?
//
//	matrix/   — Dense[T], RowView / RowViewMut, MulNaive, MulParallel / Mul
//	examples/ — a timing program comparing the two kernels
//
// Why rowmat?
//
//   - Generic over integer and floating-point element types
//   - Errors instead of panics: bad shapes and indices come back as typed errors
//   - Parallel product partitioned by output row, no locks, one join
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{0, 1}, {2, 3}, {4, 5}})
//	b, _ := matrix.NewFromRows([][]float64{{6}, {7}})
//	c, _ := matrix.Mul(a, b) // [[7] [33] [59]]
//
//	go get github.com/katalvlaran/rowmat/matrix
package rowmat
