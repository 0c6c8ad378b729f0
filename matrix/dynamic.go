// SPDX-License-Identifier: MIT

// Package matrix - untyped boundary.
//
// Purpose:
//   - Accept values whose Go type is only known at run time (decoded JSON,
//     scripting bridges, generic plumbing) and map them onto the typed API.
//   - Classify bad input precisely: ErrInvalidArgument for unsupported
//     constructor shapes, ErrInvalidType for non-numeric indices/values,
//     ErrOutOfRange for numeric indices that are not valid integers in bounds.
//
// Accepted numbers are every Go integer, unsigned and float kind (including
// named types built on them). bool, string, nil, slices and maps are not numbers.

package matrix

import "reflect"

// FromArgs is the variadic constructor-style entry point.
//   - no arguments            → New()
//   - one sequence of rows    → NewFromRows (rows may be [][]float64, []any,
//     [][]any or any slice/array of numeric slices/arrays)
//   - anything else           → ErrInvalidArgument
//
// Ragged rows are rejected by NewFromRows with ErrInvalidArgument as well.
func FromArgs(args ...any) (*Matrix, error) {
	switch len(args) {
	case 0:
		return New(), nil
	case 1:
		rows, ok := rowsOf(args[0])
		if !ok {
			return nil, matrixErrorf(ctxFromArgs, ErrInvalidArgument)
		}
		m, err := NewFromRows(rows)
		if err != nil {
			return nil, matrixErrorf(ctxFromArgs, err)
		}

		return m, nil
	default:
		return nil, matrixErrorf(ctxFromArgs, ErrInvalidArgument)
	}
}

// Get is the untyped form of Element.
//
// Errors:
//   - ErrInvalidType when column or row is not a number.
//   - ErrOutOfRange when either is negative, fractional, ±Inf/NaN or ≥ its dimension.
func (m *Matrix) Get(column, row any) (float64, error) {
	if m == nil {
		return 0, accessErrorf(ctxGet, column, row, ErrNilMatrix)
	}
	col, r, err := numericIndex(column, row)
	if err != nil {
		return 0, accessErrorf(ctxGet, column, row, err)
	}
	if err = validateIndex(col, r, m.r, m.c); err != nil {
		return 0, accessErrorf(ctxGet, column, row, err)
	}

	return m.data[int(r)*m.c+int(col)], nil
}

// Put is the untyped form of SetElement.
// All three arguments are type-checked before any range check runs.
//
// Errors:
//   - ErrInvalidType when column, row or value is not a number.
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf for a non-finite value under WithFiniteOnly.
func (m *Matrix) Put(column, row, value any) error {
	if m == nil {
		return accessErrorf(ctxPut, column, row, ErrNilMatrix)
	}
	col, r, err := numericIndex(column, row)
	if err != nil {
		return accessErrorf(ctxPut, column, row, err)
	}
	v, ok := toNumber(value)
	if !ok {
		return accessErrorf(ctxPut, column, row, ErrInvalidType)
	}
	if err = validateIndex(col, r, m.r, m.c); err != nil {
		return accessErrorf(ctxPut, column, row, err)
	}
	if m.finiteOnly && isNonFinite(v) {
		return accessErrorf(ctxPut, column, row, ErrNaNInf)
	}
	m.data[int(r)*m.c+int(col)] = v

	return nil
}

// numericIndex converts both indices or returns ErrInvalidType.
func numericIndex(column, row any) (float64, float64, error) {
	col, ok := toNumber(column)
	if !ok {
		return 0, 0, ErrInvalidType
	}
	r, ok := toNumber(row)
	if !ok {
		return 0, 0, ErrInvalidType
	}

	return col, r, nil
}

// toNumber widens any Go numeric kind to float64.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	if !isNumberKind(rv.Kind()) {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}

// isNumberKind reports whether k is an integer, unsigned or float kind.
func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// rowsOf interprets v as a sequence of numeric rows.
// A flat sequence of numbers is a single row, not a row sequence, and is
// rejected even when empty.
func rowsOf(v any) ([][]float64, bool) {
	if rows, ok := v.([][]float64); ok {
		return rows, true
	}
	rv := reflect.ValueOf(v)
	if !isSequence(rv) || isNumberKind(rv.Type().Elem().Kind()) {
		return nil, false
	}
	rows := make([][]float64, rv.Len())
	for i := range rows {
		row, ok := rowOf(rv.Index(i))
		if !ok {
			return nil, false
		}
		rows[i] = row
	}

	return rows, true
}

// rowOf interprets rv as a sequence of numbers.
func rowOf(rv reflect.Value) ([]float64, bool) {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !isSequence(rv) {
		return nil, false
	}
	row := make([]float64, rv.Len())
	for j := range row {
		n, ok := toNumber(rv.Index(j).Interface())
		if !ok {
			return nil, false
		}
		row[j] = n
	}

	return row, true
}

func isSequence(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}
