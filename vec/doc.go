// SPDX-License-Identifier: MIT

// Package vec provides the small slice helpers the grid package is built on:
// literal construction, functional map/reduce, integer ranges and Euclidean
// distance between real vectors.
//
// What:
//
//   - Of builds a slice from literal arguments, preserving order.
//   - Map and Reduce apply a function element-wise or fold left-to-right.
//   - Range yields the half-open integer interval [lo, hi).
//   - Product multiplies integer extents (used for element counts).
//   - Distance measures two equal-length real vectors.
//
// Errors:
//
//   - Of with no arguments and Distance on mismatched lengths are programmer
//     errors and panic. Distance panics with the gonum floats length message.
//
// Complexity:
//
//   - Every helper is O(n) in the length of its input.
package vec
