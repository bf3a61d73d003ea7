// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
)

// Validate checks a system before any elimination begins.
//
// Checks, in order (equation/coefficient indices are 1-based in messages):
//   - at least one equation;
//   - len(equations) == unknowns;
//   - every coefficient list has exactly `unknowns` entries;
//   - every constant and coefficient is finite.
//
// Errors:
//   - ErrInvalidSystemShape wrapped with the first violation found.
func Validate(equations []Equation, unknowns int) error {
	if len(equations) == 0 {
		return fmt.Errorf("%w: equations array cannot be empty", ErrInvalidSystemShape)
	}
	if len(equations) != unknowns {
		return fmt.Errorf("%w: Number of equations (%d) must equal number of unknowns (%d)",
			ErrInvalidSystemShape, len(equations), unknowns)
	}
	var i, j int
	for i = range equations {
		eq := equations[i]
		if len(eq.Coefficients) != unknowns {
			return fmt.Errorf("%w: Equation %d must have %d coefficients, got %d",
				ErrInvalidSystemShape, i+1, unknowns, len(eq.Coefficients))
		}
		if !finite(eq.Constant) {
			return fmt.Errorf("%w: Equation %d must have a valid numeric result", ErrInvalidSystemShape, i+1)
		}
		for j = range eq.Coefficients {
			if !finite(eq.Coefficients[j]) {
				return fmt.Errorf("%w: Equation %d, coefficient %d must be a valid number",
					ErrInvalidSystemShape, i+1, j+1)
			}
		}
	}

	return nil
}

// Validate checks s with its declared unknown count.
func (s System) Validate() error { return Validate(s.Equations, s.Unknowns) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
