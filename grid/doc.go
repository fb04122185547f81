// SPDX-License-Identifier: MIT

// Package grid implements a generic N-dimensional rectilinear grid: a
// fixed-shape lattice of sample nodes, each carrying a real-valued coordinate
// and a value of arbitrary element type T.
//
// What:
//
//   - Shape fixes the per-dimension extents (every extent ≥ 2).
//   - Nodes are enumerated in odometer order: dimension 0 varies fastest.
//     The rank of a MultiIndex in that order is its flat position.
//   - Coordinates are placed by linear interpolation between per-dimension
//     start and end bounds, both inclusive.
//   - Map overwrites every value from its coordinate; NearestIndex finds the
//     node closest to an arbitrary point by brute force.
//   - bool grids store values as packed bits; the accessor contract is the same.
//
// Why:
//
//   - Discretize a continuous domain and evaluate a scalar or vector field at
//     every lattice node without interpolation.
//
// Complexity:
//
//   - New / NewFilled: O(N·D) time, O(N·D) memory (N = Shape.Len(), D = dims).
//   - At / Value / SetValue / IndexToFlat: O(D).
//   - Map: O(N) calls to fn.
//   - NearestIndex / Lookup: O(N·D).
//
// Errors:
//
//   - Precondition violations (shape extent < 2, wrong index arity, index out
//     of range, point of the wrong dimension) panic with a wrapped sentinel:
//     ErrBadShape, ErrDimensionMismatch, ErrOutOfRange or ErrBadBounds.
//   - Shape.Validate, ValidateIndex, ValidateBounds and ValidatePoint report
//     the same conditions as errors for callers that want to check first.
//
// Concurrency:
//
//   - A Grid is not safe for concurrent mutation. Readers may share a grid
//     while no writer is active.
//
// Example:
//
//	g := grid.New[float64](grid.Shape{11, 21}, grid.WithBounds(vec.Of(-1.0, -1.0), vec.Of(1.0, 1.0)))
//	g.Map(func(p grid.Coordinate) float64 { return p[0]*p[0] + p[1]*p[1] })
//	idx := g.NearestIndex(grid.Coordinate{0.15, -0.85}) // [6 2]
package grid
