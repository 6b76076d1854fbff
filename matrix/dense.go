// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: constructors and accessors return errors instead of panicking.
//   - Hand out no-copy row views (Row, Flattened, RowView, RowViewMut) whose capacity is clipped
//     to the row, so an append on a view can never spill into a neighbouring row.
//
// Complexity quicksheet:
//   - NewFull/NewZeros/NewOnes/NewDense: O(r*c); At/Set/Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both > 0 for every value built by a constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense has a single owner. Row views returned by its methods alias data and
// must not be used after the owner stops using the matrix.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewFull creates a rows×cols matrix with every cell set to v.
// MAIN DESCRIPTION:
//   - Canonical constructor; every other constructor delegates here.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (rows first); else *InvalidDimensionError.
//   - Stage 2: allocate the flat buffer and fill it with v.
//
// Errors:
//   - ErrInvalidDimensions (as *InvalidDimensionError naming the dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFull[T Number](rows, cols int, v T) (*Dense[T], error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	buf := make([]T, rows*cols)
	if v != zero[T]() { // make() already zero-filled the buffer
		for i := range buf {
			buf[i] = v
		}
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDense creates a rows×cols matrix filled with the default value of T.
// In Go the default value is the zero value, so NewDense and NewZeros agree.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	var def T

	return NewFull(rows, cols, def)
}

// NewZeros creates a rows×cols matrix filled with the additive identity.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewFull(rows, cols, zero[T]())
}

// NewOnes creates a rows×cols matrix filled with the multiplicative identity.
func NewOnes[T Number](rows, cols int) (*Dense[T], error) {
	return NewFull(rows, cols, one[T]())
}

// NewFromRows builds an M×N matrix from M rows of N values each.
// MAIN DESCRIPTION:
//   - Copies rows in order: row 0 fully, then row 1, ... (row-major flattening).
//
// Implementation:
//   - Stage 1: validate M>0, N>0 (N taken from rows[0]).
//   - Stage 2: reject ragged input before allocating.
//   - Stage 3: allocate and copy row by row.
//
// Errors:
//   - ErrInvalidDimensions when M==0 or N==0.
//   - ErrRaggedRows when some row length differs from N.
//
// Complexity:
//   - Time O(M*N), Space O(M*N).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	m := len(rows)
	n := 0
	if m > 0 {
		n = len(rows[0])
	}
	if err := ValidateDimensions(m, n); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrRaggedRows)
		}
	}

	buf := make([]T, 0, m*n)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Dense[T]{r: m, c: n, data: buf}, nil
}

// NewFromData builds a rows×cols matrix from a row-major flat buffer.
// The buffer is copied; later writes to data do not affect the matrix.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch when len(data) != rows*cols.
func NewFromData[T Number](rows, cols int, data []T) (*Dense[T], error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Flattened returns the whole backing buffer in row-major order as a read-only view.
// The slice aliases the matrix, so later writes through Row, Set or RowViewMut
// are visible in it; callers must not write through it. Its capacity is clipped
// to its length. Use Clone().Flattened() for an independent copy.
func (m *Dense[T]) Flattened() []T {
	return m.data[:len(m.data):len(m.data)]
}

// Row returns row i as a live view of width Cols().
// Writes through the returned slice are visible in the matrix.
//
// Errors: ErrOutOfRange (as *IndexOutOfRangeError) when i ∉ [0, Rows()).
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if err := validateIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// SetRow copies vals into row i.
//
// Errors: ErrOutOfRange for a bad index; ErrDimensionMismatch when len(vals) != Cols().
func (m *Dense[T]) SetRow(i int, vals []T) error {
	if err := validateIndex(i, m.r); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// indexOf computes the row-major offset or returns the range error.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if err := validateIndex(row, m.r); err != nil {
		return 0, err
	}
	if err := validateIndex(col, m.c); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero[T](), denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines of comma-separated values. Not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// RowView returns a fresh read cursor over all rows, starting at row 0.
// Rows yielded by the cursor alias the matrix and must be treated as read-only.
func (m *Dense[T]) RowView() *RowView[T] {
	return newRowView(m.data, m.c)
}

// RowViewMut returns a fresh write cursor over all rows, starting at row 0.
// Every yielded row is disjoint from every other yielded row. While the
// cursor or its rows are in use the matrix must not be accessed otherwise.
func (m *Dense[T]) RowViewMut() *RowViewMut[T] {
	return newRowViewMut(m.data, m.c)
}
