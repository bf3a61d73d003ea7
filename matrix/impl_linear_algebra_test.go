// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for element-wise and product kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lincalc/matrix"
)

func TestAdd_Sub_Examples(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{6, 8}, {10, 12}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{-4, -4}, {-4, -4}}, diff)
}

func TestAdd_ThenSub_RoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		a := RandFilledDense(t, 3, 4, seed)
		b := RandFilledDense(t, 3, 4, seed+100)
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, b)
		require.NoError(t, err)
		ok, err := matrix.AllClose(back, a, 0, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "seed %d", seed)
	}
}

func TestAddSub_FastPathEqualsFallback(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 3)
	b := RandFilledDense(t, 4, 4, 4)
	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	ok, err := matrix.AllClose(fast, slow, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{1, 2, 3}})
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Matrix A is 2x2 but Matrix B is 1x3")

	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Example(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	for _, tc := range []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense", a, b},
		{"fallback", hide{a}, b},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := matrix.Mul(tc.a, tc.b)
			require.NoError(t, err)
			RequireRows(t, want, c)
		})
	}
}

func TestMul_InnerMismatchMessage(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "columns in Matrix A (3) must equal rows in Matrix B (2)")
}

func TestTranspose_Involution(t *testing.T) {
	a := RandFilledDense(t, 3, 5, 9)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 5, at.Rows())
	require.Equal(t, 3, at.Cols())
	att, err := matrix.T(hide{at})
	require.NoError(t, err)
	ok, err := matrix.AllClose(att, a, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScale(t *testing.T) {
	a := FromRows(t, [][]float64{{1, -2}, {0, 4}})
	s, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{-0.5, 1}, {0, -2}}, s)

	s, err = matrix.Scale(hide{a}, 2)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{2, -4}, {0, 8}}, s)

	_, err = matrix.Scale(a, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMatVec(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTrace_Rectangular(t *testing.T) {
	tr, err := matrix.Trace(FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	require.Equal(t, 6.0, tr)

	tr, err = matrix.Trace(FromRows(t, [][]float64{{2}, {7}, {9}}))
	require.NoError(t, err)
	require.Equal(t, 2.0, tr)
}

func TestFrobeniusNorm(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {2, 4}})
	n, err := matrix.FrobeniusNorm(a)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, tol)

	n, err = matrix.FrobeniusNorm(hide{a})
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, tol)
}

func TestAugmentRight(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{5}, {6}})
	aug, err := matrix.AugmentRight(a, b)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, aug)

	_, err = matrix.AugmentRight(a, FromRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
