// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
)

// Advance moves idx to its successor in enumeration order and reports whether
// one existed. The order is mixed-radix counting with radix shape[d] at digit
// d and dimension 0 as the least significant digit.
//
// Every dimension already at its maximum is reset to 0 (carry) until one can
// be incremented. When all dimensions were at their maximum, idx wraps to the
// all-zero index and Advance returns false: the enumeration is over.
//
// Starting from shape.Zero(), Advance returns true exactly shape.Len()-1 times.
// Panics with ErrDimensionMismatch when len(idx) != len(shape).
// Complexity: O(D) worst case, O(1) amortized.
func Advance(shape Shape, idx MultiIndex) bool {
	if len(idx) != len(shape) {
		panic(fmt.Errorf("Advance: len %d, want %d: %w", len(idx), len(shape), ErrDimensionMismatch))
	}
	for d := range shape {
		if idx[d] < shape[d]-1 {
			idx[d]++

			return true
		}
		idx[d] = 0 // carry into the next dimension
	}

	return false
}

// IndexToFlat returns the enumeration rank of idx under shape:
//
//	flat = Σ idx[d] · Π_{d' < d} shape[d']
//
// which equals the number of Advance calls needed to reach idx from the zero
// index. Panics with ErrDimensionMismatch or ErrOutOfRange on an invalid idx.
// Complexity: O(D).
func IndexToFlat(shape Shape, idx MultiIndex) int {
	must(ValidateIndex(shape, idx))

	flat := 0
	for d := len(shape) - 1; d >= 0; d-- {
		flat = flat*shape[d] + idx[d]
	}

	return flat
}

// FlatToIndex is the inverse of IndexToFlat.
// Panics with ErrOutOfRange when p is not in [0, shape.Len()).
// Complexity: O(D).
func FlatToIndex(shape Shape, p int) MultiIndex {
	if p < 0 || p >= shape.Len() {
		panic(fmt.Errorf("FlatToIndex: position %d not in [0,%d): %w", p, shape.Len(), ErrOutOfRange))
	}
	idx := make(MultiIndex, len(shape))
	for d, n := range shape {
		idx[d] = p % n
		p /= n
	}

	return idx
}

// Indices enumerates every MultiIndex of shape in canonical order, paired with
// its flat position. Each yielded index is a fresh copy the caller may keep.
//
// Example:
//
//	for p, idx := range grid.Indices(grid.Shape{3, 2}) {
//	    fmt.Println(p, idx) // 0 [0 0], 1 [1 0], 2 [2 0], 3 [0 1], ...
//	}
func Indices(shape Shape) iter.Seq2[int, MultiIndex] {
	return func(yield func(int, MultiIndex) bool) {
		if len(shape) == 0 {
			return
		}
		idx := shape.Zero()
		for p := 0; ; p++ {
			if !yield(p, idx.Clone()) {
				return
			}
			if !Advance(shape, idx) {
				return
			}
		}
	}
}
