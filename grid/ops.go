// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvgrid/vec"
)

// Map sets every value to fn of its node's coordinate, in enumeration order.
// fn receives a scratch copy that is reused between calls: writes to it do
// not reach the grid, and fn must copy it to keep it.
// On a grid without bounds fn receives empty coordinates.
// Complexity: O(N) calls to fn, one O(D) allocation.
func (g *Grid[T]) Map(fn func(Coordinate) T) {
	buf := make(Coordinate, 0, g.Dims())
	for p, c := range g.coords {
		buf = append(buf[:0], c...)
		g.values.set(p, fn(buf))
	}
}

// Fill sets every value to v.
// Complexity: O(N), O(N/64) for bool.
func (g *Grid[T]) Fill(v T) { g.values.fill(v) }

// NearestIndex returns the MultiIndex of the node closest to point in
// Euclidean distance, by brute force over every node in enumeration order.
// Only a strictly smaller distance replaces the current best, so ties go to
// the node with the lowest flat position.
//
// Panics with ErrDimensionMismatch when point has the wrong length or the
// grid has no coordinates, and with ErrBadBounds when point is not finite.
// Complexity: O(N·D) time, O(D) memory.
func (g *Grid[T]) NearestIndex(point Coordinate) MultiIndex {
	idx, _ := g.nearest("NearestIndex", point)

	return idx
}

// Lookup returns the value of the node nearest to point, as NearestIndex.
func (g *Grid[T]) Lookup(point Coordinate) T {
	_, p := g.nearest("Lookup", point)

	return g.values.get(p)
}

// nearest walks the odometer alongside the flat positions and returns the
// winning index and its flat position.
func (g *Grid[T]) nearest(method string, point Coordinate) (MultiIndex, int) {
	if !g.placed {
		panic(fmt.Errorf("Grid.%s: grid has no coordinates: %w", method, ErrDimensionMismatch))
	}
	if err := ValidatePoint(g.shape, point); err != nil {
		panic(fmt.Errorf("Grid.%s: %w", method, err))
	}

	cur := g.shape.Zero()
	best := g.shape.Zero()
	bestPos := 0
	minDist := math.Inf(1)
	for p, c := range g.coords {
		if d := vec.Distance(point, c); d < minDist {
			minDist = d
			bestPos = p
			copy(best, cur)
		}
		Advance(g.shape, cur)
	}

	return best, bestPos
}

// All enumerates (MultiIndex, value) pairs in canonical order. Each yielded
// index is a fresh copy. Values written during iteration are observed for
// positions not yet visited.
func (g *Grid[T]) All() iter.Seq2[MultiIndex, T] {
	return func(yield func(MultiIndex, T) bool) {
		for p, idx := range Indices(g.shape) {
			if !yield(idx, g.values.get(p)) {
				return
			}
		}
	}
}
