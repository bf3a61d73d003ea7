// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/vector"
)

const tol = 1e-12

func TestShape_Values(t *testing.T) {
	tests := []struct {
		name  string
		shape vector.Shape[float64]
		kind  vector.Kind
		want  []float64
	}{
		{"flat", vector.Flat([]float64{1, 2, 3}), vector.KindFlat, []float64{1, 2, 3}},
		{"row", vector.Classify([][]float64{{4, 5, 6}}), vector.KindRow, []float64{4, 5, 6}},
		{"column", vector.Classify([][]float64{{7}, {8}, {9}}), vector.KindColumn, []float64{7, 8, 9}},
		{"grid", vector.Classify([][]float64{{1, 2}, {3, 4}}), vector.KindGrid, []float64{1, 2, 3, 4}},
		{"zero value", vector.Shape[float64]{}, vector.KindFlat, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.shape.Kind())
			assert.Equal(t, len(tc.want), tc.shape.Len())
			if tc.want == nil {
				require.Empty(t, tc.shape.Values())
				return
			}
			require.Equal(t, tc.want, tc.shape.Values())
		})
	}
}

func TestShape_CopiesInput(t *testing.T) {
	src := []float64{1, 2}
	s := vector.Row(src)
	src[0] = 9
	v := s.Values()
	require.Equal(t, []float64{1, 2}, v)
	v[1] = 7
	require.Equal(t, []float64{1, 2}, s.Values())
}

func TestShape_Tokens(t *testing.T) {
	s := vector.Classify([][]string{{"2"}, {"3x"}, {"y"}})
	require.Equal(t, vector.KindColumn, s.Kind())
	require.Equal(t, []string{"2", "3x", "y"}, s.Values())
	require.Equal(t, "column", s.Kind().String())
}

func TestFromMatrix(t *testing.T) {
	s, err := vector.FromMatrix(matrix.MustFromRows([][]float64{{1}, {2}}))
	require.NoError(t, err)
	require.Equal(t, vector.KindColumn, s.Kind())
	require.True(t, vector.IsVectorShaped(matrix.MustFromRows([][]float64{{1, 2, 3}})))
	require.False(t, vector.IsVectorShaped(matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})))

	_, err = vector.FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDot(t *testing.T) {
	u, v := []float64{1, 2, 3}, []float64{4, -5, 6}
	d1, err := vector.Dot(u, v)
	require.NoError(t, err)
	d2, err := vector.Dot(v, u)
	require.NoError(t, err)
	require.Equal(t, 12.0, d1)
	require.Equal(t, d1, d2)

	_, err = vector.Dot(u, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Vector A has 3 elements but Vector B has 1")
}

func TestCross(t *testing.T) {
	res, err := vector.Cross([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 3, res.Dim)
	require.Equal(t, []float64{-3, 6, -3}, res.Vector)

	res, err = vector.Cross([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, res.Dim)
	require.Equal(t, -2.0, res.Scalar)

	_, err = vector.Cross([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
	_, err = vector.Cross([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = vector.Cross2D([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
	_, err = vector.Cross3D([]float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}

func TestCross_AntiCommutative(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{-1.5, 0, 2}, {3, 7, -4}},
		{{0.25, -8, 1}, {1, 1, 1}},
	}
	for _, p := range pairs {
		uv, err := vector.Cross3D(p[0], p[1])
		require.NoError(t, err)
		vu, err := vector.Cross3D(p[1], p[0])
		require.NoError(t, err)
		require.Equal(t, uv, vector.Negate(vu))
	}

	a, err := vector.Cross2D([]float64{2, 3}, []float64{5, -1})
	require.NoError(t, err)
	b, err := vector.Cross2D([]float64{5, -1}, []float64{2, 3})
	require.NoError(t, err)
	require.Equal(t, a, -b)
}

func TestMagnitudeNormalize(t *testing.T) {
	require.Equal(t, 5.0, vector.Magnitude([]float64{3, 4}))

	n, err := vector.Normalize([]float64{3, 4})
	require.NoError(t, err)
	require.InDelta(t, 0.6, n[0], tol)
	require.InDelta(t, 0.8, n[1], tol)
	require.InDelta(t, 1.0, vector.Magnitude(n), tol)

	_, err = vector.Normalize([]float64{0, 0, 0})
	require.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestProject(t *testing.T) {
	p, err := vector.Project([]float64{2, 3}, []float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0}, p)

	_, err = vector.Project([]float64{1, 1}, []float64{0, 0})
	require.ErrorIs(t, err, vector.ErrZeroVector)
	_, err = vector.Project([]float64{1, 1}, []float64{0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAngle(t *testing.T) {
	a, err := vector.Angle([]float64{1, 0}, []float64{0, 2})
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, a, tol)

	// Rounding would push the cosine above 1 without the clamp.
	a, err = vector.Angle([]float64{0.1, 0.2, 0.3}, []float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	require.False(t, math.IsNaN(a))
	require.InDelta(t, 0, a, 1e-7)

	_, err = vector.Angle([]float64{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestOrthogonalParallel(t *testing.T) {
	ok, err := vector.IsOrthogonal([]float64{1, 1}, []float64{1, -1}, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = vector.IsParallel([]float64{1, 2, 3}, []float64{2, 4, 6}, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = vector.IsParallel([]float64{1, 2}, []float64{2, 1}, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = vector.IsParallel([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}, 0)
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}
