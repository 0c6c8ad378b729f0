// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// ToGonum and FromGonum are copy boundaries to gonum.org/v1/gonum/mat, so
// callers can hand a Matrix to gonum's algorithms and bring results back.
// Neither direction shares storage.

package matrix

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrBadShape for zero-area matrices, which mat.NewDense cannot represent.
//
// Complexity: O(r*c).
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToGonum, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(ctxToGonum, ErrBadShape)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	// Both layouts are row-major with stride == cols.
	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Matrix.
// An empty gonum matrix (0×0) yields New(opts...).
//
// Errors:
//   - ErrNilMatrix when src is nil, including a typed nil such as (*mat.Dense)(nil).
//   - ErrNaNInf for a non-finite cell when WithFiniteOnly is set.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if isNilMatrix(src) {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := src.Dims()
	out := &Matrix{r: r, c: c, data: make([]float64, r*c), finiteOnly: o.finiteOnly}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if o.finiteOnly && isNonFinite(v) {
				return nil, accessErrorf(ctxFromGonum, j, i, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// isNilMatrix reports whether src is nil or wraps a nil pointer/reference.
// gonum methods dereference their receiver, so a typed nil panics in Dims.
func isNilMatrix(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
