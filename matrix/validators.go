// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep constructors and kernels minimal by delegating guards here.
//  - Return typed errors (matching the package sentinels) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on the failure path.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Rows are always checked before columns so the reported dimension is stable.

package matrix

import "math"

// ValidateDimensions ensures rows > 0, cols > 0 and that rows*cols fits in an int.
//
// Errors: *InvalidDimensionError (matches ErrInvalidDimensions); Overflow is set
// when both counts are positive but their product would wrap.
// Complexity: O(1).
func ValidateDimensions(rows, cols int) error {
	if rows <= 0 {
		return &InvalidDimensionError{Dimension: DimRows, Value: rows}
	}
	if cols <= 0 {
		return &InvalidDimensionError{Dimension: DimColumns, Value: cols}
	}
	if cols > math.MaxInt/rows {
		return &InvalidDimensionError{Dimension: DimColumns, Value: cols, Overflow: true}
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, *DimensionMismatchError (matches ErrDimensionMismatch).
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return &DimensionMismatchError{Columns: a.c, Rows: b.r}
	}

	return nil
}

// validateIndex ensures 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexOutOfRangeError{Index: i, Len: n}
	}

	return nil
}
