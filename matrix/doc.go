// Package matrix provides a minimal dense 2-D container of float64 values.
//
// The matrix package provides:
//
//   - Matrix, a fixed-shape row-major grid with O(1) bounds-checked access.
//   - Two named constructors, New (0×0) and NewFromRows, plus FromArgs for
//     callers that only hold untyped values.
//   - Typed accessors (Element, SetElement) and untyped ones (Get, Put) that
//     classify bad input as ErrInvalidType or ErrOutOfRange.
//   - Copy boundaries to gonum.org/v1/gonum/mat (ToGonum, FromGonum).
//
// Indices are given as (column, row), both zero-based. Shape never changes
// after construction; only cell values do. Every boundary crossing copies:
// the rows passed to NewFromRows and the rows returned by Elements are never
// shared with the matrix.
//
// There is no arithmetic here on purpose. Export to gonum when you need it.
//
// See example_test.go for usage patterns.
package matrix
