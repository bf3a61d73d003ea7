// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lincalc/matrix"
)

func TestValidators(t *testing.T) {
	sq := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	row := FromRows(t, [][]float64{{1, 2, 3}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSameShape(sq, sq))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, row), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(row), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(row, FromRows(t, [][]float64{{1}, {2}, {3}})))
	require.ErrorIs(t, matrix.ValidateMulCompatible(row, sq), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateFinite(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateFinite(m))

	// Dense rejects NaN on Set; inject one through a wrapper instead.
	bad := nanAt{Matrix: m, i: 1, j: 0}
	err := matrix.ValidateFinite(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "[1][0]")
}

// nanAt reports NaN at a single coordinate.
type nanAt struct {
	matrix.Matrix
	i, j int
}

func (n nanAt) At(i, j int) (float64, error) {
	if i == n.i && j == n.j {
		return math.NaN(), nil
	}

	return n.Matrix.At(i, j)
}

func TestCompatibilityPredicates(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.True(t, matrix.SameShape(a, a))
	require.False(t, matrix.SameShape(a, b))
	require.False(t, matrix.SameShape(a, nil))
	require.True(t, matrix.MulCompatible(a, b))
	require.False(t, matrix.MulCompatible(a, a))
}

func TestAllClose(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}})
	b := FromRows(t, [][]float64{{1 + 1e-12, 2}})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, FromRows(t, [][]float64{{1.1, 2}}), 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityAndColumn(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	col, err := matrix.NewColumn([]float64{1, 2})
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1}, {2}}, col)

	like, err := matrix.IdentityLike(id)
	require.NoError(t, err)
	require.Equal(t, 3, like.Rows())
	require.Nil(t, matrix.CloneMatrix(nil))
}
