// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
)

// Grid is an N-dimensional rectilinear lattice of values of type T.
//
// shape, coords and values are parallel: position p holds the node whose
// MultiIndex has enumeration rank p. Shape and coordinates are fixed at
// construction; only values change, through Map, Fill, SetValue or a Cell.
//
// A Grid is not safe for concurrent mutation.
type Grid[T any] struct {
	shape  Shape
	coords []Coordinate // len == shape.Len(); entries empty when unplaced
	values store[T]     // packed bits when T is bool
	placed bool         // coords were generated from bounds
}

// New builds a grid of the given shape with zero values.
// Without WithBounds / WithUnitBounds every coordinate is empty.
//
// Stage 1 (Validate): shape extents ≥ MinExtent, bounds match the shape.
// Stage 2 (Prepare): allocate value storage, generate coordinates.
//
// Panics with ErrBadShape, ErrDimensionMismatch or ErrBadBounds.
// Complexity: O(N·D) time and memory.
func New[T any](shape Shape, opts ...Option) *Grid[T] {
	must(shape.Validate())
	o := gatherOptions(shape, opts)

	g := &Grid[T]{
		shape:  shape.Clone(),
		values: newStore[T](shape.Len()),
	}
	if o.hasBounds() {
		g.coords = Generate(g.shape, o.start, o.end)
		g.placed = true
	} else {
		g.coords = make([]Coordinate, g.shape.Len())
	}

	return g
}

// NewFilled is New followed by setting every value to def.
func NewFilled[T any](shape Shape, def T, opts ...Option) *Grid[T] {
	g := New[T](shape, opts...)
	g.Fill(def)

	return g
}

// Shape returns a copy of the grid's shape.
func (g *Grid[T]) Shape() Shape { return g.shape.Clone() }

// Dims returns the number of dimensions.
func (g *Grid[T]) Dims() int { return len(g.shape) }

// Len returns the number of nodes.
func (g *Grid[T]) Len() int { return len(g.coords) }

// Placed reports whether the grid was built with bounds.
func (g *Grid[T]) Placed() bool { return g.placed }

// flat resolves idx to a flat position or panics.
func (g *Grid[T]) flat(idx MultiIndex) int {
	return IndexToFlat(g.shape, idx)
}

// Cell is a short-lived handle on one node. It stays valid as long as the
// grid it came from; writes through it are visible in the grid.
type Cell[T any] struct {
	g   *Grid[T]
	pos int
}

// At returns the handle for idx.
// Panics with ErrDimensionMismatch or ErrOutOfRange when idx is invalid.
// Complexity: O(D).
func (g *Grid[T]) At(idx MultiIndex) Cell[T] {
	return Cell[T]{g: g, pos: g.flat(idx)}
}

// Flat returns the node's flat position.
func (c Cell[T]) Flat() int { return c.pos }

// Index returns the node's MultiIndex.
func (c Cell[T]) Index() MultiIndex { return FlatToIndex(c.g.shape, c.pos) }

// Coordinate returns a copy of the node's coordinate.
func (c Cell[T]) Coordinate() Coordinate { return c.g.coords[c.pos].Clone() }

// Value reads the node's value.
func (c Cell[T]) Value() T { return c.g.values.get(c.pos) }

// Set writes the node's value.
func (c Cell[T]) Set(v T) { c.g.values.set(c.pos, v) }

// Value reads the value at idx. Panics like At.
func (g *Grid[T]) Value(idx MultiIndex) T { return g.values.get(g.flat(idx)) }

// SetValue writes v at idx. Panics like At.
func (g *Grid[T]) SetValue(idx MultiIndex, v T) { g.values.set(g.flat(idx), v) }

// Coordinate returns a copy of the coordinate at idx. Panics like At.
func (g *Grid[T]) Coordinate(idx MultiIndex) Coordinate {
	return g.coords[g.flat(idx)].Clone()
}

// ValueAt reads the value at flat position p.
// Panics with ErrOutOfRange when p is not in [0, Len()).
func (g *Grid[T]) ValueAt(p int) T {
	g.checkFlat("ValueAt", p)

	return g.values.get(p)
}

// CoordinateAt returns a copy of the coordinate at flat position p.
// Panics with ErrOutOfRange when p is not in [0, Len()).
func (g *Grid[T]) CoordinateAt(p int) Coordinate {
	g.checkFlat("CoordinateAt", p)

	return g.coords[p].Clone()
}

func (g *Grid[T]) checkFlat(method string, p int) {
	if p < 0 || p >= g.Len() {
		panic(fmt.Errorf("Grid.%s: position %d not in [0,%d): %w", method, p, g.Len(), ErrOutOfRange))
	}
}

// Clone returns a deep copy of the grid. Coordinates are shared between the
// copies since neither can modify them.
// Complexity: O(N) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		shape:  g.shape.Clone(),
		coords: g.coords,
		values: g.values.clone(),
		placed: g.placed,
	}
}

// CountTrue returns the number of true values in a bool grid.
// Complexity: O(N/64) for packed storage.
func CountTrue(g *Grid[bool]) int {
	if b, ok := g.values.(*bitStore); ok {
		return b.count()
	}
	n := 0
	for p := range g.values.len() {
		if g.values.get(p) {
			n++
		}
	}

	return n
}
