// SPDX-License-Identifier: MIT

// Package solver solves square linear systems of 2 to 4 unknowns.
//
// Systems are validated first (ErrInvalidSystemShape). Two unknowns use
// Cramer's rule, larger systems use Gauss–Jordan elimination with partial
// pivoting. A system without a unique solution is not an error: Solve
// returns a Result with HasUniqueSolution=false, an Outcome (infinite,
// inconsistent or singular) and a display message.
//
// Verify, Analyze and Format support callers that show the solution.
package solver
