// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula row*cols + column.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Copy at every boundary: construction input and Elements() output never alias storage.
//
// Complexity quicksheet:
//   - New: O(1); NewFromRows: O(r*c); Element/SetElement: O(1);
//     Elements/Clone/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a fixed-size dense matrix of float64 values.
//   - r,c hold dimensions (rows, columns); both immutable after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = row*c + column).
//   - finiteOnly enables NaN/Inf rejection on writes (see WithFiniteOnly).
//
// A Matrix is not safe for concurrent mutation; it is meant to have a single owner.
type Matrix struct {
	r, c       int
	data       []float64
	finiteOnly bool
}

var _ fmt.Stringer = (*Matrix)(nil)

// New returns an empty 0×0 matrix.
// Options set the numeric policy; it is carried by Clone.
func New(opts ...Option) *Matrix {
	o := gatherOptions(opts...)

	return &Matrix{data: []float64{}, finiteOnly: o.finiteOnly}
}

// NewFromRows builds a matrix from a sequence of rows.
// MAIN DESCRIPTION:
//   - Rows() = len(rows); Cols() = len(rows[0]), or 0 when rows is empty.
//   - Every row is copied, so later edits to rows do not reach the matrix.
//
// Implementation:
//   - Stage 1: validate rectangular shape (and finiteness under WithFiniteOnly).
//   - Stage 2: allocate the flat buffer once and copy row by row.
//
// Errors:
//   - ErrInvalidArgument when rows differ in length.
//   - ErrNaNInf for a non-finite cell when WithFiniteOnly is set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	cols, err := validateRows(rows, o.finiteOnly)
	if err != nil {
		return nil, matrixErrorf(ctxNewFromRows, err)
	}

	buf := make([]float64, len(rows)*cols)
	for i, row := range rows {
		copy(buf[i*cols:(i+1)*cols], row)
	}

	return &Matrix{r: len(rows), c: cols, data: buf, finiteOnly: o.finiteOnly}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Dims packs Rows() and Cols() into a single call.
func (m *Matrix) Dims() (rows, cols int) { return m.Rows(), m.Cols() }

// FiniteOnly reports whether the matrix rejects NaN/±Inf writes.
func (m *Matrix) FiniteOnly() bool { return m != nil && m.finiteOnly }

// Elements returns a row-by-row copy of the contents.
// The result never aliases the matrix: neither the outer slice nor any row.
// A 0×0 matrix yields an empty, non-nil slice.
func (m *Matrix) Elements() [][]float64 {
	if m == nil {
		return [][]float64{}
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// offset returns the row-major offset of (column, row) or ErrOutOfRange.
// Range checks go through isIntegerInRange so the typed and dynamic
// accessors share one definition of "valid index".
func (m *Matrix) offset(column, row int) (int, error) {
	if err := validateIndex(float64(column), float64(row), m.r, m.c); err != nil {
		return 0, err
	}

	return row*m.c + column, nil
}

// Element returns the value stored at (column, row).
// Note the argument order: column first, then row.
//
// Errors:
//   - ErrOutOfRange when column ∉ [0, Cols()-1] or row ∉ [0, Rows()-1].
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1), no allocations.
func (m *Matrix) Element(column, row int) (float64, error) {
	if m == nil {
		return 0, accessErrorf(ctxElement, column, row, ErrNilMatrix)
	}
	off, err := m.offset(column, row)
	if err != nil {
		return 0, accessErrorf(ctxElement, column, row, err)
	}

	return m.data[off], nil
}

// SetElement overwrites the value at (column, row) with v.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf when v is non-finite and the matrix was built WithFiniteOnly.
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1).
func (m *Matrix) SetElement(column, row int, v float64) error {
	if m == nil {
		return accessErrorf(ctxSetElement, column, row, ErrNilMatrix)
	}
	off, err := m.offset(column, row)
	if err != nil {
		return accessErrorf(ctxSetElement, column, row, err)
	}
	if m.finiteOnly && isNonFinite(v) {
		return accessErrorf(ctxSetElement, column, row, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with the same shape, contents and numeric policy.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp, finiteOnly: m.finiteOnly}
}

// Do visits each element in row-major order and calls f(column, row, v).
// Iteration stops early when f returns false. Read-only: f cannot reach storage.
func (m *Matrix) Do(f func(column, row int, v float64) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(j, i, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one "[a, b, c]" line per row. Intended for diagnostics.
// A 0×0 matrix renders as the empty string.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
