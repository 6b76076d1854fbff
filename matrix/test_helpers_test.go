// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and cursors.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowmat/matrix"
	"github.com/stretchr/testify/require"
)

// floatTol is the relative/absolute tolerance used to compare float products
// computed with different summation orders.
const floatTol = 1e-9

// mustFromRows builds a matrix from nested rows or fails the test.
func mustFromRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustZeros allocates an r×c zero matrix or fails the test.
func mustZeros[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewZeros[T](r, c)
	require.NoError(tb, err)

	return m
}

// fillRandFloat fills m with values in [-1, 1) from a seeded source.
func fillRandFloat(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for _, row := range m.RowViewMut().All() {
		for j := range row {
			row[j] = rng.Float64()*2 - 1
		}
	}
}

// fillRandInt fills m with small integers in [-50, 50) from a seeded source.
func fillRandInt(tb testing.TB, m *matrix.Dense[int64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for _, row := range m.RowViewMut().All() {
		for j := range row {
			row[j] = rng.Int63n(100) - 50
		}
	}
}

// referenceProduct is an independent i-k-j product over nested slices,
// used as the mathematical ground truth.
func referenceProduct[T matrix.Number](a, b [][]T) [][]T {
	out := make([][]T, len(a))
	for i := range a {
		out[i] = make([]T, len(b[0]))
		for k := range b {
			for j := range b[k] {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// toRows copies m into nested slices.
func toRows[T matrix.Number](tb testing.TB, m *matrix.Dense[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(tb, err)
		out[i] = append([]T(nil), row...)
	}

	return out
}
