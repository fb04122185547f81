package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/vec"
	"github.com/stretchr/testify/assert"
)

// TestWithBounds_Panics verifies stable messages for nonsensical bounds.
func TestWithBounds_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "grid: WithBounds: start and end must have equal, non-zero length", func() {
		grid.WithBounds(vec.Of(0.0, 1.0), vec.Of(1.0))
	})
	assert.PanicsWithValue(t, "grid: WithBounds: start and end must have equal, non-zero length", func() {
		grid.WithBounds(nil, nil)
	})
	assert.PanicsWithValue(t, "grid: WithBounds: bounds must be finite", func() {
		grid.WithBounds(vec.Of(math.NaN()), vec.Of(1.0))
	})
	assert.PanicsWithValue(t, "grid: WithBounds: bounds must be finite", func() {
		grid.WithBounds(vec.Of(0.0), vec.Of(math.Inf(1)))
	})
}

// TestWithBounds_CopiesInput ensures caller slices are not aliased.
func TestWithBounds_CopiesInput(t *testing.T) {
	start, end := vec.Of(0.0), vec.Of(4.0)
	opt := grid.WithBounds(start, end)
	end[0] = 100

	g := grid.New[int](grid.Shape{5}, opt)
	assert.Equal(t, grid.Coordinate{4}, g.Coordinate(grid.MultiIndex{4}))
}

// TestOptions_LastWins checks that later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	g := grid.New[int](grid.Shape{3},
		grid.WithBounds(vec.Of(-4.0), vec.Of(4.0)),
		grid.WithUnitBounds())
	assert.Equal(t, grid.Coordinate{1}, g.Coordinate(grid.MultiIndex{2}))

	h := grid.New[int](grid.Shape{3},
		grid.WithUnitBounds(),
		grid.WithBounds(vec.Of(-4.0), vec.Of(4.0)))
	assert.Equal(t, grid.Coordinate{4}, h.Coordinate(grid.MultiIndex{2}))
}
