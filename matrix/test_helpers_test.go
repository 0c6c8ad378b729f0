// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the accessor and interop tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegrid/matrix"
)

// grid3 returns a fresh copy of the 3×3 fixture
//
//	[ 1 2 3 ]
//	[ 4 5 6 ]
//	[ 7 8 9 ]
func grid3() [][]float64 {
	return [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
}

// grid34 returns a fresh copy of the 3×4 fixture.
func grid34() [][]float64 {
	return [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
}

// MustFromRows builds a matrix from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustElement reads (column, row) or fails the test.
func MustElement(t testing.TB, m *matrix.Matrix, column, row int) float64 {
	t.Helper()
	v, err := m.Element(column, row)
	require.NoError(t, err)

	return v
}

// MustSetElement writes (column, row) or fails the test.
func MustSetElement(t testing.TB, m *matrix.Matrix, column, row int, v float64) {
	t.Helper()
	require.NoError(t, m.SetElement(column, row, v))
}

// CompareExact checks shape and every cell of m against want (row-major).
func CompareExact(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "column count of row %d", i)
		for j, w := range row {
			require.Equal(t, w, MustElement(t, m, j, i), "cell (col=%d,row=%d)", j, i)
		}
	}
}
