// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j), "element [%d,%d] of a new Dense must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustRows(t, src)
	CompareExact(t, src, m)

	// the input is copied
	src[0][0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"nil", nil, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRaggedRows},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{1}, {math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDenseFromRows(tc.rows)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
		err = m.Set(ij[0], ij[1], 1)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", ij[0], ij[1])
	}
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, m, 0, 0), "rejected writes must not land")
}

func TestDense_RawRowSharesStorage(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.RawRow(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	require.Equal(t, 2, cap(row), "capacity must be clipped to the row")

	row[0] = 30
	assert.Equal(t, 30.0, MustAt(t, m, 1, 0))

	_, err = m.RawRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SwapRows(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, m.SwapRows(0, 2))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	require.NoError(t, m.SwapRows(1, 1))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 9)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, c, 0, 0))
}

func TestCopyDense_GenericPath(t *testing.T) {
	t.Parallel()

	base := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp, err := matrix.CopyDense(hide{base})
	require.NoError(t, err)
	CompareExact(t, base.ToRows(), cp)

	_, err = matrix.CopyDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
