// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels over Dense operands:
// a single-threaded reference triple loop and a row-partitioned fork-join
// variant. Both perform strict fail-fast validation and return clear errors
// on dimension mismatches before allocating anything.
//
// Determinism & Policy:
//   - MulNaive accumulates each cell over k in increasing order (i→j→k).
//   - MulParallel accumulates each output row with k outer and j inner; for
//     floats the summation order differs from MulNaive, so results agree up to
//     rounding, not bit for bit. Integer results are identical.
//   - Operands are never mutated; the result is a fresh Dense.

package matrix

import (
	"golang.org/x/sync/errgroup"
)

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opMulNaive    = "MulNaive"
	opMulParallel = "MulParallel"
)

// MulNaive computes C = A × B with the textbook triple loop.
// MAIN DESCRIPTION:
//   - Correctness baseline. Single goroutine, no allocation beyond C.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) before any allocation.
//   - Stage 2: allocate C(a.Rows × b.Cols) filled with zero.
//   - Stage 3: for every (i,j) sum a[i][k]*b[k][j] over k = 0..a.Cols-1, then store.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (*DimensionMismatchError{Columns: a.Cols, Rows: b.Rows}).
//
// Complexity:
//   - Time O(rowsA*colsB*colsA), Space O(rowsA*colsB).
func MulNaive[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	c, err := NewZeros[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	var (
		i, j, k int
		sum     T
		ai, ci  []T
	)
	n, p := a.c, b.c
	for i = 0; i < a.r; i++ {
		ai = a.data[i*n : (i+1)*n]
		ci = c.data[i*p : (i+1)*p]
		for j = 0; j < p; j++ {
			sum = zero[T]()
			for k = 0; k < n; k++ {
				sum += ai[k] * b.data[k*p+j]
			}
			ci[j] = sum
		}
	}

	return c, nil
}

// MulParallel computes C = A × B, one work unit per output row.
// MAIN DESCRIPTION:
//   - Rows of C are handed out by a RowViewMut, rows of A by a RowView, so every
//     unit owns a disjoint row of C and only reads A and B. No locks are needed.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) synchronously, before any goroutine starts.
//   - Stage 2: allocate C zero-filled; resolve workers = min(option/GOMAXPROCS, a.Rows).
//   - Stage 3: dispatch units to an errgroup limited to workers goroutines
//     (inline when workers == 1) and join.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (*DimensionMismatchError{Columns: a.Cols, Rows: b.Rows}).
//
// Complexity:
//   - Time O(rowsA*colsB*colsA) total work, Space O(rowsA*colsB).
//
// Notes:
//   - The call returns only after every unit has finished; no partial result is observable.
func MulParallel[T Number](a, b *Dense[T], opts ...MulOption) (*Dense[T], error) {
	return mulParallel(opMulParallel, a, b, opts...)
}

// Mul is the preferred general-purpose product C = A × B.
// It runs the MulParallel kernel and reports errors under the "Mul" tag.
func Mul[T Number](a, b *Dense[T], opts ...MulOption) (*Dense[T], error) {
	return mulParallel(opMul, a, b, opts...)
}

func mulParallel[T Number](tag string, a, b *Dense[T], opts ...MulOption) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	o := gatherMulOptions(opts...)
	c, err := NewZeros[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	workers := min(o.workers, a.r)
	cRows, aRows := c.RowViewMut(), a.RowView()

	if workers == 1 {
		for ci, ok := cRows.Next(); ok; ci, ok = cRows.Next() {
			ai, _ := aRows.Next()
			mulRowInto(ci, ai, b)
		}

		return c, nil
	}

	// Units cannot fail; the errgroup provides only the SetLimit bound and the join.
	var g errgroup.Group
	g.SetLimit(workers)
	for {
		ci, ok := cRows.Next()
		if !ok {
			break
		}
		ai, _ := aRows.Next()
		g.Go(func() error {
			mulRowInto(ci, ai, b)

			return nil
		})
	}
	_ = g.Wait()

	return c, nil
}

// mulRowInto accumulates ci += ai × B with k outer and j inner.
// ci must be zero on entry and len(ai) == b.Rows(), len(ci) == b.Cols().
func mulRowInto[T Number](ci, ai []T, b *Dense[T]) {
	bRows := b.RowView()
	for _, aik := range ai {
		bk, _ := bRows.Next()
		for j, bkj := range bk {
			ci[j] += aik * bkj
		}
	}
}
