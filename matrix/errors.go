// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed detail errors.
// Every public function returns one of the sentinels below (possibly wrapped
// with an operation tag) and tests MUST check them via errors.Is. The typed
// errors carry the diagnostic payload (dimension name, operand sizes, index)
// and are retrieved with errors.As. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operation context is attached with matrixErrorf
// at the facade; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested row or column count is zero or negative,
	// or that rows*cols does not fit in an int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. Mul where a.Cols != b.Rows, or SetRow with a wrong width.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates nested input rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")
)

// Dimension names reported by InvalidDimensionError.
const (
	DimRows    = "rows"
	DimColumns = "columns"
)

// InvalidDimensionError reports which dimension of a constructor call was invalid.
// Overflow marks a positive count whose product with the other count exceeds math.MaxInt.
type InvalidDimensionError struct {
	Dimension string // DimRows or DimColumns
	Value     int    // offending value
	Overflow  bool   // rows*cols does not fit in an int
}

func (e *InvalidDimensionError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("matrix: num_%s (is %d) makes rows*cols overflow int", e.Dimension, e.Value)
	}

	return fmt.Sprintf("matrix: num_%s (is %d) should be > 0", e.Dimension, e.Value)
}

// Is reports ErrInvalidDimensions so errors.Is works on the sentinel.
func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimensions }

// DimensionMismatchError reports the two sizes that failed to agree.
// For multiplication Columns is a.Cols() and Rows is b.Rows().
type DimensionMismatchError struct {
	Columns int
	Rows    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("matrix: a.num_columns (is %d) should be equal to b.num_rows (is %d)", e.Columns, e.Rows)
}

// Is reports ErrDimensionMismatch so errors.Is works on the sentinel.
func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

// IndexOutOfRangeError reports a rejected index together with the bound it violated.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("matrix: index %d out of range [0,%d)", e.Index, e.Len)
}

// Is reports ErrOutOfRange so errors.Is works on the sentinel.
func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
