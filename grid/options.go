// SPDX-License-Identifier: MIT

// Package grid: functional configuration for grid construction.
//   - Option / options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which resolves the effective configuration.
//
// Without bounds a grid is index/value structure only: every coordinate is
// left empty and no interpolation is performed.
package grid

import "slices"

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	start, end []float64 // nil ⇒ no physical placement
	unit       bool      // [0,1] on every dimension, sized at construction
}

// WithBounds places the lattice between start and end (both inclusive) along
// every dimension. The slices are copied.
//
// Panics when start and end differ in length, are empty, or hold NaN/±Inf.
// A length that differs from the grid's dimension count is caught by the
// constructor (ErrDimensionMismatch).
//
// Example:
//
//	grid.New[bool](grid.Shape{5}, grid.WithBounds(vec.Of(-10.0), vec.Of(10.0)))
func WithBounds(start, end []float64) Option {
	if len(start) == 0 || len(start) != len(end) {
		panic(panicBoundsLength)
	}
	if !allFinite(start) || !allFinite(end) {
		panic(panicBoundsFinite)
	}
	start, end = slices.Clone(start), slices.Clone(end)

	return func(o *options) { o.start, o.end, o.unit = start, end, false }
}

// WithUnitBounds places every dimension on [0, 1].
// The dimension count is taken from the shape at construction time.
func WithUnitBounds() Option {
	return func(o *options) { o.start, o.end, o.unit = nil, nil, true }
}

// gatherOptions applies opts over the defaults and expands unit bounds to
// the dimension count of shape.
func gatherOptions(shape Shape, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.unit {
		o.start = make([]float64, len(shape))
		o.end = make([]float64, len(shape))
		for d := range o.end {
			o.end[d] = 1
		}
	}

	return o
}

// hasBounds reports whether coordinates should be generated.
func (o options) hasBounds() bool { return o.start != nil }
