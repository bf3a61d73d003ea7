// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/solver"
	"github.com/katalvlaran/lincalc/symbolic"
	"github.com/katalvlaran/lincalc/vector"
)

// errBadRequest marks malformed request bodies.
var errBadRequest = errors.New("invalid request")

// Token is one matrix cell as sent by a client: a JSON number or a string.
// Strings may be numeric ("2.5") or symbolic ("3x").
type Token string

// UnmarshalJSON accepts numbers and strings; anything else is rejected.
func (t *Token) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = Token(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("matrix cell must be a number or a string, got %s", b)
	}
	*t = Token(s)

	return nil
}

// TokenGrid is a matrix of cells.
type TokenGrid [][]Token

func (g TokenGrid) strings() [][]string {
	out := make([][]string, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = string(c)
		}
	}

	return out
}

// flat returns the components of a vector-shaped grid in order.
func (g TokenGrid) flat() []string { return vector.Classify(g.strings()).Values() }

func (g TokenGrid) hasVariables() bool {
	for _, row := range g {
		for _, c := range row {
			if symbolic.IsVariable(string(c)) {
				return true
			}
		}
	}

	return false
}

// toMatrix parses every cell as a number; blank cells read as zero.
func (g TokenGrid) toMatrix(label string) (matrix.Matrix, error) {
	rows := make([][]float64, len(g))
	for i, row := range g {
		rows[i] = make([]float64, len(row))
		for j, c := range row {
			v, err := symbolic.ParseNumber(string(c))
			if err != nil {
				return nil, fmt.Errorf("%s: element [%d][%d]: %w", label, i, j, err)
			}
			rows[i][j] = v
		}
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	return m, nil
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type calculateRequest struct {
	Operation string      `json:"operation"`
	Matrices  []TokenGrid `json:"matrices"`
}

type calculateResponse struct {
	calc.OperationResult
	Formatted string `json:"formatted"`
}

type analyzeRequest struct {
	Matrix  TokenGrid `json:"matrix"`
	MatrixB TokenGrid `json:"matrixB,omitempty"`
}

type analyzeResponse struct {
	Analysis      calc.Analysis       `json:"analysis"`
	Compatibility *calc.Compatibility `json:"compatibility,omitempty"`
}

type crossRequest struct {
	A []Token `json:"a"`
	B []Token `json:"b"`
}

type solveResponse struct {
	Solution  solver.Result   `json:"solution"`
	Analysis  solver.Analysis `json:"analysis"`
	Verified  bool            `json:"verified"`
	Formatted string          `json:"formatted"`
}

type convertRequest struct {
	Mode  string   `json:"mode"`
	R     *float64 `json:"r,omitempty"`
	Theta *float64 `json:"theta,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}

// operands returns the (p, q) pair Convert expects for the request's mode.
func (c convertRequest) operands() (float64, float64, error) {
	p, q, names := c.R, c.Theta, "r and theta"
	if c.Mode == calc.ModeRectToPolar {
		p, q, names = c.X, c.Y, "x and y"
	}
	if c.Mode != calc.ModePolarToRect && c.Mode != calc.ModeRectToPolar {
		return 0, 0, nil
	}
	if p == nil || q == nil {
		return 0, 0, fmt.Errorf("%w: %s requires %s", errBadRequest, c.Mode, names)
	}

	return *p, *q, nil
}

func tokenStrings(ts []Token) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}

	return out
}
