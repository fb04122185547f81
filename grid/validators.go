// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - One place for the index, bounds and point checks shared by the
//    constructors, accessors and nearest-point search.
//  - Return wrapped sentinels; the panicking callers reuse the same values
//    via must.

package grid

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// must panics with err when it is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidateIndex checks that idx has one component per dimension of s and that
// every component lies in [0, s[d]).
// Returns ErrDimensionMismatch or ErrOutOfRange.
// Complexity: O(D).
func ValidateIndex(s Shape, idx MultiIndex) error {
	if len(idx) != len(s) {
		return fmt.Errorf("ValidateIndex: len %d, want %d: %w", len(idx), len(s), ErrDimensionMismatch)
	}
	for d, k := range idx {
		if k < 0 || k >= s[d] {
			return fmt.Errorf("ValidateIndex: dim %d component %d not in [0,%d): %w", d, k, s[d], ErrOutOfRange)
		}
	}

	return nil
}

// ValidateBounds checks that start and end both match the dimension count of s
// and hold only finite values.
// Returns ErrDimensionMismatch or ErrBadBounds.
func ValidateBounds(s Shape, start, end []float64) error {
	if len(start) != len(s) || len(end) != len(s) {
		return validatorErrorf("ValidateBounds", ErrDimensionMismatch)
	}
	if !allFinite(start) || !allFinite(end) {
		return validatorErrorf("ValidateBounds", ErrBadBounds)
	}

	return nil
}

// ValidatePoint checks that p matches the dimension count of s and has only
// finite components.
// Returns ErrDimensionMismatch or ErrBadBounds.
func ValidatePoint(s Shape, p Coordinate) error {
	if len(p) != len(s) {
		return fmt.Errorf("ValidatePoint: len %d, want %d: %w", len(p), len(s), ErrDimensionMismatch)
	}
	if !allFinite(p) {
		return validatorErrorf("ValidatePoint", ErrBadBounds)
	}

	return nil
}

// allFinite reports whether xs has no NaN or ±Inf entries.
func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
