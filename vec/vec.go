// SPDX-License-Identifier: MIT

package vec

import (
	"gonum.org/v1/gonum/floats"
)

const panicEmptyOf = "vec: Of requires at least one element"

// Of returns its arguments as a slice, in call order.
// Panics when called with no arguments.
//
// Example:
//
//	shape := vec.Of(11, 21)
//	start := vec.Of(-1.0, -1.0)
func Of[T any](xs ...T) []T {
	if len(xs) == 0 {
		panic(panicEmptyOf)
	}
	out := make([]T, len(xs))
	copy(out, xs)

	return out
}

// Map applies fn to every element of xs and returns the results in order.
// The result always has len(xs) elements.
// Complexity: O(n).
func Map[S, T any](fn func(S) T, xs []S) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}

	return out
}

// Reduce folds xs from left to right starting at init.
// Complexity: O(n).
func Reduce[S, A any](fn func(acc A, x S) A, xs []S, init A) A {
	acc := init
	for _, x := range xs {
		acc = fn(acc, x)
	}

	return acc
}

// Range returns lo, lo+1, ..., hi-1. It returns an empty slice when hi <= lo.
func Range(lo, hi int) []int {
	if hi <= lo {
		return []int{}
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}

	return out
}

// Product returns the product of xs, or 1 for an empty slice.
func Product(xs []int) int {
	return Reduce(func(acc, x int) int { return acc * x }, xs, 1)
}

// Distance returns the Euclidean distance between a and b. The sum of squares
// is scaled, so it stays finite for any finite inputs.
// Panics if the lengths differ.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
