// SPDX-License-Identifier: MIT

package matrix

import "math"

// Tolerances for AllClose callers that have no better choice.
const (
	// DefaultRTol is the relative tolerance.
	DefaultRTol = 1e-9

	// DefaultATol is the absolute tolerance.
	DefaultATol = 1e-12
)

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Time: O(r*c). Space: O(1).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil (ErrNilMatrix) and have identical shapes (ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// AI-Hints:
//   - Use AllClose to compare MulParallel against MulNaive for float element types.
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return false, ErrDimensionMismatch
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var x, y float64
	for i := range a.data {
		x, y = float64(a.data[i]), float64(b.data[i])
		if x == y { // covers equal infinities
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
