// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lincalc/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPort, "")
	t.Setenv(config.EnvAllowedOrigins, "")
	t.Setenv(config.EnvLogLevel, "")

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestCalc(t *testing.T) {
	out, err := run(t, "calc", "add", "-o", "text", "--a", "[[1,2],[3,4]]", "--b", "[[5,6],[7,8]]")
	require.NoError(t, err)
	assert.Contains(t, out, "Matrix Addition (A + B)")
	assert.Contains(t, out, "12.00")

	out, err = run(t, "calc", "determinant", "-o", "json", "--a", "[[2,0],[0,3]]")
	require.NoError(t, err)
	var res struct {
		Operation string `json:"operation"`
		Result    struct {
			Kind  string  `json:"kind"`
			Value float64 `json:"value"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "determinant", res.Operation)
	assert.Equal(t, "scalar", res.Result.Kind)
	assert.InDelta(t, 6.0, res.Result.Value, 1e-12)
}

func TestCalc_AutoOutputIsJSONWhenPiped(t *testing.T) {
	out, err := run(t, "calc", "trace", "--a", "[[1,2],[3,4]]")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, "calc", "add", "--a", "[[1]]")
	require.ErrorContains(t, err, "add needs --b")

	_, err = run(t, "calc", "transpose", "--a", "[1, 2]")
	require.ErrorContains(t, err, "--a: expected a JSON array of rows")

	_, err = run(t, "calc", "transpose")
	require.ErrorContains(t, err, "--a is required")

	_, err = run(t, "calc", "pow", "--a", "[[1]]")
	require.ErrorContains(t, err, "unknown operation")

	_, err = run(t, "calc", "inverse", "--a", "[[1,2],[2,4]]")
	require.ErrorContains(t, err, "singular")

	_, err = run(t, "ops", "-o", "yaml")
	require.ErrorContains(t, err, "--output must be auto, text or json")
}

func TestCross(t *testing.T) {
	out, err := run(t, "cross", "-o", "json", "--a", "2,3x,y", "--b", "1,3,5")
	require.NoError(t, err)
	var res struct {
		IsSymbolic bool `json:"isSymbolic"`
		Result     struct {
			Value []string `json:"value"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.IsSymbolic)
	assert.Equal(t, []string{"15x - 3y", "y - 10", "6 - 3x"}, res.Result.Value)

	out, err = run(t, "cross", "-o", "text", "--a", "1,2", "--b", "3,4")
	require.NoError(t, err)
	assert.Contains(t, out, "2D Cross Product (A × B) = -2.00")
}

func TestSolve(t *testing.T) {
	sys := `{"equations":[{"coefficients":[2,3],"result":13},{"coefficients":[1,-1],"result":-1}]}`
	out, err := run(t, "solve", "-o", "text", "--system", sys)
	require.NoError(t, err)
	assert.Equal(t, "x = 2.000000\ny = 3.000000\nverified: true\n", out)

	out, err = run(t, "solve", "-o", "json", "--system",
		`{"equations":[{"coefficients":[1e-6,0],"result":1},{"coefficients":[0,1e-6],"result":1}]}`)
	require.NoError(t, err)
	var res struct {
		HasUniqueSolution bool      `json:"hasUniqueSolution"`
		Variables         []float64 `json:"variables"`
		Verified          bool      `json:"verified"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.HasUniqueSolution)
	assert.InDeltaSlice(t, []float64{1e6, 1e6}, res.Variables, 1e-3)
	assert.True(t, res.Verified)

	p := filepath.Join(t.TempDir(), "system.json")
	require.NoError(t, os.WriteFile(p, []byte(
		`{"equations":[{"coefficients":[1,2],"result":3},{"coefficients":[2,4],"result":7}]}`), 0o600))
	out, err = run(t, "solve", "-o", "text", "--file", p)
	require.NoError(t, err)
	assert.NotContains(t, out, "x =")
	assert.NotContains(t, out, "verified")

	_, err = run(t, "solve")
	require.ErrorContains(t, err, "--system or --file is required")

	_, err = run(t, "solve", "--system", `{"equations":[{"coefficients":[1],"result":1}]}`)
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "polar", "-o", "text", "--r", "5", "--theta", "45")
	require.NoError(t, err)
	assert.Equal(t, "(3.54, 3.54)\n", out)

	out, err = run(t, "convert", "rect", "-o", "text", "--x", "3", "--y", "4")
	require.NoError(t, err)
	assert.Equal(t, "5∠53.13°\n", out)
}

func TestOps(t *testing.T) {
	out, err := run(t, "ops", "-o", "json")
	require.NoError(t, err)
	var ops []string
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	assert.Len(t, ops, 17)
	assert.Contains(t, ops, "cross_symbolic")
}

func TestConfigFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lincalc.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log:\n  level: nope\n"), 0o600))

	_, err := run(t, "ops", "--config", p)
	require.ErrorContains(t, err, "invalid config")
}
