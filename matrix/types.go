// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, iteration and kernels.
// This file contains ONLY the element-type capability and small helpers
// tied to it. Errors and options live in dedicated files.
package matrix

// Number is the element capability required by Dense and the kernels:
// a zero value that is the additive identity, a one, addition and
// multiplication. All members are plain values, so concurrent reads of a
// shared buffer are safe.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// zero returns the additive identity of T.
func zero[T Number]() T {
	var z T

	return z
}

// one returns the multiplicative identity of T.
func one[T Number]() T { return T(1) }
