// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvgrid/vec"
)

// MinExtent is the smallest legal extent of a dimension. A single sample has
// no step between start and end.
const MinExtent = 2

// Shape holds the per-dimension extents of a lattice.
// Immutable once a Grid is built from it (the Grid keeps its own copy).
type Shape []int

// MultiIndex identifies one lattice node: one component per dimension,
// with 0 ≤ idx[d] < shape[d].
type MultiIndex []int

// Coordinate is the physical position of a lattice node.
type Coordinate []float64

// Dims returns the number of dimensions.
func (s Shape) Dims() int { return len(s) }

// Len returns the total node count, the product of all extents.
// Complexity: O(D).
func (s Shape) Len() int { return vec.Product(s) }

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape { return slices.Clone(s) }

// Validate reports ErrBadShape when s has no dimensions, any extent is below
// MinExtent, or the node count does not fit in an int.
// Complexity: O(D).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return validatorErrorf("Shape.Validate", ErrBadShape)
	}
	total := 1
	for d, n := range s {
		if n < MinExtent {
			return fmt.Errorf("Shape.Validate: dim %d extent %d: %w", d, n, ErrBadShape)
		}
		if total > math.MaxInt/n {
			return fmt.Errorf("Shape.Validate: node count overflows at dim %d: %w", d, ErrBadShape)
		}
		total *= n
	}

	return nil
}

// Zero returns the all-zero MultiIndex for s, the first node in enumeration order.
func (s Shape) Zero() MultiIndex { return make(MultiIndex, len(s)) }

// Equal reports whether idx and other have identical components.
func (idx MultiIndex) Equal(other MultiIndex) bool { return slices.Equal(idx, other) }

// Clone returns an independent copy of idx.
func (idx MultiIndex) Clone() MultiIndex { return slices.Clone(idx) }

// Clone returns an independent copy of c.
func (c Coordinate) Clone() Coordinate { return slices.Clone(c) }
