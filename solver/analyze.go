// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lincalc/matrix"
)

// DefaultVerifyTolerance is the absolute residual accepted by Verify.
const DefaultVerifyTolerance = 1e-10

// Verify substitutes variables back into equations and checks every residual.
// A non-positive tol selects DefaultVerifyTolerance.
//
// The left-hand sides are A·x (matrix.MatVec), compared with the constants by
// matrix.AllClose using tol as the absolute tolerance.
//
// Errors:
//   - ErrInvalidSystemShape when a coefficient list and variables differ in length.
//   - ErrVerification naming the first failing equation ("Equation 2 verification failed: 4 ≠ 5").
func Verify(equations []Equation, variables []float64, tol float64) error {
	if tol <= 0 {
		tol = DefaultVerifyTolerance
	}
	rows := make([][]float64, len(equations))
	constants := make([]float64, len(equations))
	for i, eq := range equations {
		if len(eq.Coefficients) != len(variables) {
			return fmt.Errorf("%w: Equation %d has %d coefficients but %d variables were given",
				ErrInvalidSystemShape, i+1, len(eq.Coefficients), len(variables))
		}
		rows[i], constants[i] = eq.Coefficients, eq.Constant
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystemShape, err)
	}
	lhs, err := matrix.MatVec(a, variables)
	if err != nil {
		return err
	}
	got, err := matrix.NewColumn(lhs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}
	want, err := matrix.NewColumn(constants)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystemShape, err)
	}
	ok, err := matrix.AllClose(got, want, 0, tol)
	if err != nil || ok {
		return err
	}
	for i := range lhs {
		if math.Abs(lhs[i]-constants[i]) > tol {
			return fmt.Errorf("%w: Equation %d verification failed: %g ≠ %g", ErrVerification, i+1, lhs[i], constants[i])
		}
	}

	return nil
}

// Verified reports whether r is a unique solution that passes Verify against
// equations with DefaultVerifyTolerance. Degenerate results are never verified.
func Verified(equations []Equation, r Result) bool {
	return r.HasUniqueSolution && Verify(equations, r.Variables, 0) == nil
}

// Analysis summarizes the coefficient matrix of a system.
type Analysis struct {
	IsSquare    bool     `json:"isSquare"`
	Determinant *float64 `json:"determinant"`
	Rank        int      `json:"rank"`
	IsSingular  bool     `json:"isSingular"`
}

// Analyze reports squareness, determinant (square only), rank and singularity.
// Errors: ErrInvalidSystemShape for empty or ragged coefficient lists.
func Analyze(equations []Equation) (Analysis, error) {
	rows := make([][]float64, len(equations))
	for i, eq := range equations {
		rows[i] = eq.Coefficients
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", ErrInvalidSystemShape, err)
	}
	rank, err := matrix.Rank(a)
	if err != nil {
		return Analysis{}, err
	}
	out := Analysis{IsSquare: a.IsSquare(), Rank: rank}
	if !out.IsSquare {
		return out, nil
	}

	det, err := matrix.Determinant(a)
	if err != nil {
		return Analysis{}, err
	}
	out.Determinant = &det
	out.IsSingular = matrix.IsNegligible(det)

	return out, nil
}

// Format renders a result for display: one "name = value" line per variable
// with six decimals, or the outcome message for degenerate systems.
func Format(r Result) string {
	if !r.HasUniqueSolution {
		return r.Message
	}
	names := r.VariableNames
	if len(names) != len(r.Variables) {
		names = VariableNames(len(r.Variables))
	}
	lines := make([]string, len(r.Variables))
	for i, v := range r.Variables {
		lines[i] = fmt.Sprintf("%s = %.6f", names[i], v)
	}

	return strings.Join(lines, "\n")
}
