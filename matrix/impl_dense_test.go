// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lincalc/matrix"
)

func TestNewDense_ZeroAndShape(t *testing.T) {
	m := MustDense(t, 2, 3)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.False(t, m.IsSquare())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Zero(t, MustAt(t, m, i, j))
		}
	}

	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewFromRows_Validation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
		msg  string
	}{
		{"nil", nil, matrix.ErrEmpty, ""},
		{"empty row", [][]float64{{}}, matrix.ErrEmpty, ""},
		{"ragged", [][]float64{{1, 2}, {3, 4}, {5}}, matrix.ErrRagged, "row 2 has 1 columns, expected 2"},
		{"nan", [][]float64{{1, 2}, {3, math.NaN()}}, matrix.ErrNaNInf, "[1][1]"},
		{"inf", [][]float64{{math.Inf(1)}}, matrix.ErrNaNInf, "[0][0]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewFromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestNewFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := FromRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	out, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, out)
	out[1][1] = -1
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

func TestToRows_Fallback(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}})
	out, err := matrix.ToRows(hide{m})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}}, out)

	_, err = matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestDense_String(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestMustFromRows_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.MustFromRows([][]float64{{1}, {1, 2}}) })
	require.NotPanics(t, func() { matrix.MustFromRows([][]float64{{1}}) })
}
