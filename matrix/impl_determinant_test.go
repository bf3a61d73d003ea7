// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lincalc/matrix"
)

// gonumOf copies a Dense into a gonum matrix for oracle comparisons.
func gonumOf(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)
	flat := make([]float64, 0, m.Rows()*m.Cols())
	for _, r := range rows {
		flat = append(flat, r...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), flat)
}

func TestDeterminant_Examples(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{4, 7}, {2, 6}}, 10},
		{"3x3", [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}, 1},
		{"3x3 singular", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 0},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := FromRows(t, tc.rows)
			d, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, tol)

			lu, err := matrix.DeterminantLU(hide{m})
			require.NoError(t, err)
			require.InDelta(t, tc.want, lu, 1e-8)
		})
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Determinant(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "matrix is 2x3")

	_, err = matrix.DeterminantLU(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_EqualsTransposeAndGonum(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandFilledDense(t, n, n, int64(n*31))
			at, err := matrix.Transpose(a)
			require.NoError(t, err)

			d, err := matrix.Determinant(a)
			require.NoError(t, err)
			dt, err := matrix.Determinant(at)
			require.NoError(t, err)
			require.InDelta(t, d, dt, 1e-9)

			require.InDelta(t, mat.Det(gonumOf(t, a)), d, 1e-9)

			lu, err := matrix.DeterminantLU(a)
			require.NoError(t, err)
			require.InDelta(t, d, lu, 1e-9)
		})
	}
}

func TestMinor(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	mn, err := matrix.Minor(m, 1, 0)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{2, 3}, {8, 9}}, mn)

	_, err = matrix.Minor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(FromRows(t, [][]float64{{1, 2}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLU_Reconstructs(t *testing.T) {
	a := FromRows(t, [][]float64{{0, 2, 1}, {4, 1, 0}, {2, 3, 5}})
	L, U, perm, err := matrix.LU(a)
	require.NoError(t, err)

	lu, err := matrix.Mul(L, U)
	require.NoError(t, err)
	for i, src := range perm {
		for j := 0; j < 3; j++ {
			require.InDelta(t, MustAt(t, a, src, j), MustAt(t, lu, i, j), tol)
		}
	}

	_, _, _, err = matrix.LU(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestIsSingular(t *testing.T) {
	s, err := matrix.IsSingular(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.True(t, s)

	s, err = matrix.IsSingular(FromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.False(t, s)
}
