// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public method
// returns one of these (possibly wrapped with call-site context) and tests
// match them via errors.Is. No method panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Detection
// sites wrap with fmt.Errorf("Matrix.<Method>(...): %w", ErrX); callers match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil receiver -> argument type -> index range -> numeric policy.

var (
	// ErrInvalidArgument is returned when a constructor receives an input
	// shape it does not support (wrong arity, non-sequence, ragged rows).
	ErrInvalidArgument = errors.New("matrix: invalid arguments")

	// ErrInvalidType indicates that an index or value argument is not numeric.
	ErrInvalidType = errors.New("matrix: argument is not a number")

	// ErrOutOfRange indicates that an index is numeric but not an integer
	// inside the current bounds (negative, fractional, infinite, or too large).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadShape is returned when a shape cannot be represented by the
	// target (e.g. a zero-area matrix exported to gonum).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxNewFromRows = "NewFromRows"
	ctxFromArgs    = "FromArgs"
	ctxElement     = "Element"
	ctxSetElement  = "SetElement"
	ctxGet         = "Get"
	ctxPut         = "Put"
	ctxToGonum     = "ToGonum"
	ctxFromGonum   = "FromGonum"
)

// accessErrorf wraps err with the accessor name and the caller's coordinates.
// Coordinates are printed with %v so untyped (dynamic) indices stay readable.
func accessErrorf(method string, column, row any, err error) error {
	return fmt.Errorf("Matrix.%s(%v,%v): %w", method, column, row, err)
}

// matrixErrorf wraps err with a method tag only.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}
