// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/symbolic"
	"github.com/katalvlaran/lincalc/vector"
)

func TestIsVariable(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"3", false},
		{"-2.5", false},
		{"3e5", false},
		{"1E-3", false},
		{"", false},
		{"   ", false},
		{"1/2", false},
		{"x", true},
		{"3x", true},
		{"-y", true},
		{"e", true},
		{"2e", true},
		{"tree", true},
	}
	for _, tc := range tests {
		t.Run(strconv.Quote(tc.token), func(t *testing.T) {
			assert.Equal(t, tc.want, symbolic.IsVariable(tc.token))
		})
	}
	assert.True(t, symbolic.HasVariables("1", "2", "z"))
	assert.False(t, symbolic.HasVariables("1", "3e5", ""))
}

func TestParseNumbers(t *testing.T) {
	got, err := symbolic.ParseNumbers([]string{"1", " ", "-2.5", "3e2"})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, -2.5, 300}, got)

	_, err = symbolic.ParseNumbers([]string{"1", "2", "x"})
	require.ErrorIs(t, err, symbolic.ErrInvalidToken)
	assert.Contains(t, err.Error(), "component 3")

	_, err = symbolic.ParseNumber("Inf")
	require.ErrorIs(t, err, symbolic.ErrInvalidToken)
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(3x) * (5) - (y) * (3)", "15x - 3y"},
		{"(y) * (1) - (2) * (5)", "y - 10"},
		{"(2) * (3) - (3x) * (1)", "6 - 3x"},
		{"(x) * (0) - (0) * (y)", "0"},
		{"(2) * (-y) - (x) * (3)", "-2y - 3x"},
		{"(x) * (2) - (-y) * (3)", "2x + 3y"},
		{"(1) * (4) - (2) * (3)", "-2"},
		{"(1) * (x) - (0) * (0)", "x"},
		{"(x) * (y) - (2) * (3)", "xy - 6"},
		{"(-x) * (1) - (0) * (1)", "-x"},
		{"(0) * (0) - (z) * (1)", "-z"},
		{"(2) * (3) - (-1) * (5)", "11"},
		{"(3e5) * (x) - (0) * (y)", "300000x"},
		{"(0.5) * (2x) - (y) * (0.25)", "x - 0.25y"},
		{"(x + 1) * (2) - (0) * (y)", "(x + 1) * 2"},
		{"", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, symbolic.Simplify(tc.in))
		})
	}
}

func TestSimplify_FixedPoint(t *testing.T) {
	for _, in := range []string{"(3x) * (5) - (y) * (3)", "(x) * (0) - (0) * (y)", "(x) * (2) - (-y) * (3)"} {
		once := symbolic.Simplify(in)
		require.Equal(t, once, symbolic.Simplify(once), in)
	}
}

func TestTrace(t *testing.T) {
	in := "(y) * (1) - (2) * (5)"
	steps := symbolic.Trace(in)
	require.NotEmpty(t, steps)
	require.Equal(t, "strip-parens", steps[0].Rule)
	require.Equal(t, "y * 1 - 2 * 5", steps[0].Result)
	require.Equal(t, symbolic.Simplify(in), steps[len(steps)-1].Result)

	require.Empty(t, symbolic.Trace("x"))
}

func TestCross(t *testing.T) {
	res, err := symbolic.Cross([]string{"2", "3x", "y"}, []string{"1", "3", "5"})
	require.NoError(t, err)
	require.Equal(t, 3, res.Dimension)
	require.Equal(t, []string{
		"(3x) * (5) - (y) * (3)",
		"(y) * (1) - (2) * (5)",
		"(2) * (3) - (3x) * (1)",
	}, res.Raw)
	require.Equal(t, []string{"15x - 3y", "y - 10", "6 - 3x"}, res.Components)

	res, err = symbolic.Cross([]string{"x", "2"}, []string{"3", "y"})
	require.NoError(t, err)
	require.Equal(t, 2, res.Dimension)
	require.Equal(t, []string{"xy - 6"}, res.Components)
}

func TestCross_NumericTokensMatchVectorCross(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{-1, 0, 2}, {3, -4, 0.5}},
		{{0, 0, 1}, {1, 0, 0}},
	}
	for _, p := range pairs {
		want, err := vector.Cross(p[0], p[1])
		require.NoError(t, err)
		got, err := symbolic.Cross(tokens(p[0]), tokens(p[1]))
		require.NoError(t, err)
		for i, w := range want.Vector {
			v, err := strconv.ParseFloat(got.Components[i], 64)
			require.NoError(t, err, got.Components[i])
			require.InDelta(t, w, v, 1e-12)
		}
	}
}

func TestCross_Errors(t *testing.T) {
	_, err := symbolic.Cross([]string{"x", "1"}, []string{"1", "2", "3"})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = symbolic.RawCross([]string{"x", "1", "2", "3"}, []string{"1", "2", "3", "4"})
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}

func tokens(v []float64) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}

	return out
}
