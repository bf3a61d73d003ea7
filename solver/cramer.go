// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/lincalc/matrix"
)

// SolveCramer solves a 2×2 system in closed form:
//
//	a·x + b·y = e
//	c·x + d·y = f
//	x = (e·d − b·f)/det,  y = (a·f − e·c)/det,  det = a·d − b·c
//
// Implementation:
//   - Stage 1: the row with the larger |first coefficient| becomes the pivot row.
//   - Stage 2: d' = d − (c/a)·b and f' = f − (c/a)·e, so det = a·d' on the pivoted rows.
//   - Stage 3: a or d' below matrix.Epsilon is degenerate; the pivoted rows are
//     classified by rank(A) vs rank([A | b]), the same way SolveElimination does.
//
// det is never compared with the tolerance itself: 1e-6·x = 1, 1e-6·y = 1 has
// det = 1e-12 and the unique solution (1e6, 1e6).
//
// Errors:
//   - ErrInvalidSystemShape when the input is not a valid 2×2 system.
func SolveCramer(equations []Equation) (Result, error) {
	if err := Validate(equations, 2); err != nil {
		return Result{}, err
	}
	a, b := equations[0].Coefficients[0], equations[0].Coefficients[1]
	c, d := equations[1].Coefficients[0], equations[1].Coefficients[1]
	e, f := equations[0].Constant, equations[1].Constant
	if math.Abs(c) > math.Abs(a) {
		a, b, e, c, d, f = c, d, f, a, b, e
	}

	if matrix.IsNegligible(a) {
		return cramerDegenerate([][]float64{{a, b, e}, {c, d, f}})
	}
	m := c / a
	dp, fp := d-m*b, f-m*e
	if matrix.IsNegligible(dp) {
		return cramerDegenerate([][]float64{{a, b, e}, {c - m*a, dp, fp}})
	}

	det := a * dp

	return unique([]float64{(e*dp - b*fp) / det, a * fp / det}), nil
}

// cramerDegenerate classifies the working rows and reports Cramer's messages.
func cramerDegenerate(rows [][]float64) (Result, error) {
	res, err := classify(rows, 2)
	if err != nil {
		return Result{}, err
	}
	if res.Outcome == OutcomeInfinite {
		return degenerate(OutcomeInfinite, MsgDependent), nil
	}

	return degenerate(OutcomeInconsistent, MsgInconsistentCramer), nil
}
