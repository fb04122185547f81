// Package lvgrid is an in-memory toolkit for sampling continuous domains on
// N-dimensional rectilinear lattices.
//
// 🚀 What is lvgrid?
//
//	A small, pure-Go library that brings together:
//		• Lattice model: shapes, multi-indices and odometer enumeration
//		• Coordinates: evenly spaced nodes between per-dimension bounds
//		• Storage: flat, generic values with packed bits for bool
//		• Operations: element-wise Map and brute-force nearest-node lookup
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/ — Grid[T], Shape, MultiIndex, Coordinate, index translation, Map, NearestIndex
//	vec/  — slice helpers: Of, Map, Reduce, Range, Product, Distance
//
// Quick ASCII example (Shape{3, 2}, flat positions):
//
//	3───4───5
//	│   │   │
//	0───1───2
//
// dimension 0 runs left to right and varies fastest.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
