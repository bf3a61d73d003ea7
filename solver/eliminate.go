// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lincalc/matrix"
)

// Solve validates a square system (unknowns = len(equations)) and solves it.
//
// Implementation:
//   - Stage 1: Validate; reject sizes outside 2..4 with ErrUnsupportedSize.
//   - Stage 2: 2 unknowns → SolveCramer; 3 or 4 → SolveElimination.
//
// Returns:
//   - Result: unique solution, or a degenerate outcome with HasUniqueSolution=false.
//
// Errors:
//   - ErrInvalidSystemShape (and ErrUnsupportedSize, which matches it).
func Solve(equations []Equation) (Result, error) {
	return System{Unknowns: len(equations), Equations: equations}.Solve()
}

// Solve is the package-level Solve with an explicitly declared unknown count.
func (s System) Solve() (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	switch s.Unknowns {
	case 2:
		return SolveCramer(s.Equations)
	case 3, 4:
		return SolveElimination(s.Equations)
	default:
		return Result{}, fmt.Errorf("%w: got %d unknowns", ErrUnsupportedSize, s.Unknowns)
	}
}

// SolveElimination solves any square system by Gauss–Jordan elimination with
// partial pivoting.
//
// Implementation:
//   - Stage 1 (augment): build the working rows [A | b]; the input is not touched.
//   - Stage 2 (forward): for each column i swap the largest |a[k][i]|, k ≥ i, into
//     row i. A pivot below matrix.Epsilon ends the sweep in the degenerate branch;
//     otherwise column i is eliminated from every other row.
//   - Stage 3 (degenerate): compare rank(A) with rank([A | b]) on the working rows:
//     equal → infinite solutions, greater augmented rank → inconsistent.
//   - Stage 4 (back-substitute): xᵢ = (b'ᵢ − Σ_{j>i} a'ᵢⱼ·xⱼ) / a'ᵢᵢ, reporting
//     OutcomeSingular if a diagonal has vanished.
//
// Behavior highlights:
//   - The rank comparison subsumes the zero-row tests (zero row with zero constant
//     is dependent; zero row with a non-zero constant is inconsistent) and does
//     not depend on which row the pivot search happened to stop at.
//
// Errors:
//   - ErrInvalidSystemShape.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveElimination(equations []Equation) (Result, error) {
	n := len(equations)
	if err := Validate(equations, n); err != nil {
		return Result{}, err
	}
	aug := augment(equations)

	var i, j, k, p int
	var f float64
	for i = 0; i < n; i++ {
		p = pivotRow(aug, i)
		aug[i], aug[p] = aug[p], aug[i]
		if matrix.IsNegligible(aug[i][i]) {
			return classify(aug, n)
		}
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			f = aug[k][i] / aug[i][i]
			if f == 0 {
				continue
			}
			for j = i; j <= n; j++ {
				aug[k][j] -= f * aug[i][j]
			}
		}
	}

	vars := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		if matrix.IsNegligible(aug[i][i]) {
			return degenerate(OutcomeSingular, MsgSingular), nil
		}
		sum = aug[i][n]
		for j = i + 1; j < n; j++ {
			sum -= aug[i][j] * vars[j]
		}
		vars[i] = sum / aug[i][i]
	}

	return unique(vars), nil
}

// augment copies equations into rows [a₀ … aₙ₋₁ | b].
func augment(equations []Equation) [][]float64 {
	n := len(equations)
	rows := make([][]float64, n)
	for i, eq := range equations {
		row := make([]float64, n+1)
		copy(row, eq.Coefficients)
		row[n] = eq.Constant
		rows[i] = row
	}

	return rows
}

// pivotRow returns the row ≥ col with the largest |rows[k][col]| (topmost on ties).
func pivotRow(rows [][]float64, col int) int {
	best, bestAbs := col, math.Abs(rows[col][col])
	for k := col + 1; k < len(rows); k++ {
		if v := math.Abs(rows[k][col]); v > bestAbs {
			best, bestAbs = k, v
		}
	}

	return best
}

// classify decides between infinite and inconsistent by rank(A) vs rank([A|b]).
func classify(aug [][]float64, n int) (Result, error) {
	full, err := matrix.NewFromRows(aug)
	if err != nil {
		return Result{}, err
	}
	coeff := make([][]float64, n)
	for i := range aug {
		coeff[i] = aug[i][:n]
	}
	a, err := matrix.NewFromRows(coeff)
	if err != nil {
		return Result{}, err
	}
	rA, err := matrix.Rank(a)
	if err != nil {
		return Result{}, err
	}
	rAb, err := matrix.Rank(full)
	if err != nil {
		return Result{}, err
	}
	if rAb > rA {
		return degenerate(OutcomeInconsistent, MsgInconsistent), nil
	}

	return degenerate(OutcomeInfinite, MsgUnderdetermined), nil
}
