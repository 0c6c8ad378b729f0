// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for index and value checks.
//  - Keep accessors minimal by delegating range/shape/number checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// isIntegerInRange reports whether v is a whole number with min ≤ v ≤ max.
// NaN, ±Inf and fractional values are never in range. Both bounds are inclusive,
// so an empty dimension (max == -1) admits nothing.
// Complexity: O(1).
func isIntegerInRange(v float64, min, max int) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return false
	}

	return v >= float64(min) && v <= float64(max)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// validateIndex checks a (column, row) pair against an r×c shape.
// Returns ErrOutOfRange (unwrapped) on violation.
func validateIndex(column, row float64, r, c int) error {
	if !isIntegerInRange(column, 0, c-1) {
		return ErrOutOfRange
	}
	if !isIntegerInRange(row, 0, r-1) {
		return ErrOutOfRange
	}

	return nil
}

// validateRows ensures every row has the length of the first one and,
// under finiteOnly, that every cell is finite. Shape is checked over all
// rows before any cell value is inspected.
// Returns the column count on success.
// Complexity: O(r*c) when finiteOnly, O(r) otherwise.
func validateRows(rows [][]float64, finiteOnly bool) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrInvalidArgument)
		}
	}
	if !finiteOnly {
		return cols, nil
	}
	for i, row := range rows {
		for j, v := range row {
			if isNonFinite(v) {
				return 0, fmt.Errorf("cell (%d,%d): %w", j, i, ErrNaNInf)
			}
		}
	}

	return cols, nil
}
