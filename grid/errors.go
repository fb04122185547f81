// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Validators return these sentinels wrapped with a tag; the panicking hot API
// panics with the same wrapped values, so errors.Is works on a recovered panic.

package grid

import "errors"

var (
	// ErrBadShape indicates a shape with no dimensions or an extent below MinExtent.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrDimensionMismatch indicates an index, point or bounds vector whose
	// length differs from the grid's dimension count.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrOutOfRange indicates an index component outside [0, shape[d]) or a
	// flat position outside [0, Len()).
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBadBounds indicates non-finite start/end bounds or a non-finite query point.
	ErrBadBounds = errors.New("grid: invalid bounds")
)

// Stable panic messages for option constructors (programmer error).
const (
	panicBoundsLength = "grid: WithBounds: start and end must have equal, non-zero length"
	panicBoundsFinite = "grid: WithBounds: bounds must be finite"
)
