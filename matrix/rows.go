// SPDX-License-Identifier: MIT

// Package matrix - row cursors over Dense storage.
//
// Purpose:
//   - Expose a matrix as a sequence of non-copied row slices with forward
//     consumption (Next), random access (Nth, Last) and exact size (Len, SizeHint).
//   - RowViewMut guarantees that every yielded row is disjoint from every other
//     yielded row: the cursor only ever splits the region it currently holds into
//     a returned head and a retained tail, it never re-slices the original buffer.
//
// Behavior highlights:
//   - Yielded rows have capacity == length == width, so append on a row reallocates
//     instead of overwriting the next row.
//   - A cursor is not rewindable. Call Dense.RowView/RowViewMut again to restart.
//   - Remaining rows are len(rest)/width, always an exact integer.
//
// Complexity:
//   - Next, Nth, Last, Len, SizeHint, Count: O(1). No allocations.

package matrix

import "iter"

// rowCursor holds the unconsumed tail of a row-major buffer.
// Invariant: len(rest) % width == 0.
type rowCursor[T Number] struct {
	rest  []T // not yet yielded rows
	width int // fixed number of columns (> 0)
	pos   int // absolute index of the first row in rest
}

func (rc *rowCursor[T]) len() int { return len(rc.rest) / rc.width }

// next splits rest into head (returned) and tail (kept).
func (rc *rowCursor[T]) next() ([]T, bool) {
	if len(rc.rest) == 0 {
		return nil, false
	}
	w := rc.width
	head, tail := rc.rest[:w:w], rc.rest[w:]
	rc.rest = tail
	rc.pos++

	return head, true
}

// nth drops n rows and returns the following one. Out-of-range n exhausts the cursor.
func (rc *rowCursor[T]) nth(n int) ([]T, bool) {
	if n < 0 || n >= rc.len() {
		rc.exhaust()

		return nil, false
	}
	start := n * rc.width
	end := start + rc.width
	head, tail := rc.rest[:end:end], rc.rest[end:]
	rc.rest = tail
	rc.pos += n + 1

	return head[start:end:end], true
}

// last returns the final remaining row straight from the tail and exhausts the cursor.
func (rc *rowCursor[T]) last() ([]T, bool) {
	n := len(rc.rest)
	if n == 0 {
		return nil, false
	}
	row := rc.rest[n-rc.width : n : n]
	rc.exhaust()

	return row, true
}

// count returns the remaining rows and exhausts the cursor.
func (rc *rowCursor[T]) count() int {
	n := rc.len()
	rc.exhaust()

	return n
}

func (rc *rowCursor[T]) exhaust() {
	rc.pos += rc.len()
	rc.rest = nil
}

// all yields (absolute row index, row) until the cursor is exhausted or yield stops.
func (rc *rowCursor[T]) all() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for {
			i := rc.pos
			row, ok := rc.next()
			if !ok || !yield(i, row) {
				return
			}
		}
	}
}

// RowView is a read cursor over the rows of a Dense.
//
// Rows are live views into the matrix buffer; they are shared with every
// other reader and must not be written through. Any number of RowView values
// may read the same matrix concurrently as long as nobody writes to it.
type RowView[T Number] struct {
	cur rowCursor[T]
}

func newRowView[T Number](data []T, width int) *RowView[T] {
	return &RowView[T]{cur: rowCursor[T]{rest: data, width: width}}
}

// Next returns the next row and advances by one row. The first call returns row 0.
// It returns (nil, false) once no rows remain.
func (v *RowView[T]) Next() ([]T, bool) { return v.cur.next() }

// Len returns the number of rows not yet yielded.
func (v *RowView[T]) Len() int { return v.cur.len() }

// SizeHint returns the lower and upper bound of the remaining rows; they are always equal.
func (v *RowView[T]) SizeHint() (lower, upper int) {
	n := v.cur.len()

	return n, n
}

// Nth skips n rows and returns the one after them, counted from the current position.
// If n ≥ Len() (or n < 0) the view becomes exhausted and (nil, false) is returned.
func (v *RowView[T]) Nth(n int) ([]T, bool) { return v.cur.nth(n) }

// Last returns the final remaining row without walking the rows before it.
// The view is exhausted afterwards.
func (v *RowView[T]) Last() ([]T, bool) { return v.cur.last() }

// Count returns Len() and exhausts the view.
func (v *RowView[T]) Count() int { return v.cur.count() }

// All returns an iterator over the remaining rows keyed by their row index in
// the matrix. Ranging over it consumes the view.
func (v *RowView[T]) All() iter.Seq2[int, []T] { return v.cur.all() }

// RowViewMut is a write cursor over the rows of a Dense.
//
// Each yielded row is exclusively writable by its holder: no two rows handed
// out by one RowViewMut overlap, so they may be written from different
// goroutines without synchronisation. Writes are visible in the matrix
// immediately. Accessing the matrix by other means while rows are being
// written is a data race.
type RowViewMut[T Number] struct {
	cur rowCursor[T]
}

func newRowViewMut[T Number](data []T, width int) *RowViewMut[T] {
	return &RowViewMut[T]{cur: rowCursor[T]{rest: data, width: width}}
}

// Next returns the next row and advances by one row. The first call returns row 0.
// It returns (nil, false) once no rows remain.
func (v *RowViewMut[T]) Next() ([]T, bool) { return v.cur.next() }

// Len returns the number of rows not yet yielded.
func (v *RowViewMut[T]) Len() int { return v.cur.len() }

// SizeHint returns the lower and upper bound of the remaining rows; they are always equal.
func (v *RowViewMut[T]) SizeHint() (lower, upper int) {
	n := v.cur.len()

	return n, n
}

// Nth skips n rows and returns the one after them, counted from the current position.
// The skipped rows are released and never yielded. If n ≥ Len() (or n < 0)
// the view becomes exhausted and (nil, false) is returned.
func (v *RowViewMut[T]) Nth(n int) ([]T, bool) { return v.cur.nth(n) }

// Last returns the final remaining row without walking the rows before it.
// The view is exhausted afterwards.
func (v *RowViewMut[T]) Last() ([]T, bool) { return v.cur.last() }

// Count returns Len() and exhausts the view.
func (v *RowViewMut[T]) Count() int { return v.cur.count() }

// All returns an iterator over the remaining rows keyed by their row index in
// the matrix. Ranging over it consumes the view.
func (v *RowViewMut[T]) All() iter.Seq2[int, []T] { return v.cur.all() }
