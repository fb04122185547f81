// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/lvgrid/vec"

// Generate places one coordinate per lattice node, in enumeration order.
// Component d of the node at idx is
//
//	(end[d]-start[d]) · idx[d] / (shape[d]-1) + start[d]
//
// so shape[d] samples are spread evenly over [start[d], end[d]], both ends
// included. start[d] > end[d] is allowed and yields a descending axis.
//
// Panics when shape is invalid (ErrBadShape) or the bounds do not fit it
// (ErrDimensionMismatch, ErrBadBounds).
// Complexity: O(N·D) time and memory.
func Generate(shape Shape, start, end []float64) []Coordinate {
	must(shape.Validate())
	must(ValidateBounds(shape, start, end))

	dims := vec.Range(0, shape.Dims())
	out := make([]Coordinate, 0, shape.Len())
	idx := shape.Zero()
	for {
		pt := vec.Map(func(d int) float64 {
			return (end[d]-start[d])*float64(idx[d])/float64(shape[d]-1) + start[d]
		}, dims)
		out = append(out, pt)
		if !Advance(shape, idx) {
			break
		}
	}

	return out
}
