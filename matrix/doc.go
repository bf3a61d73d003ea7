// SPDX-License-Identifier: MIT

// Package matrix provides the numeric core of lincalc: a row-major Dense
// matrix and the small-matrix linear algebra built on it.
//
// The matrix package provides:
//
//   - Dense storage with bounds-checked At/Set and finite-value ingestion
//     (NewFromRows rejects empty, ragged and NaN/Inf literals).
//   - Element-wise and product kernels: Add, Sub, Mul, Transpose, Scale, MatVec.
//   - Scalars: Trace (over min(rows, cols)), FrobeniusNorm.
//   - Determinant by cofactor expansion, DeterminantLU for larger orders.
//   - Gauss–Jordan Inverse, Rank and RowEchelon with partial pivoting.
//
// All zero tests share one absolute tolerance, Epsilon (1e-10).
// Errors are sentinels (ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...)
// wrapped with the operation name and the offending dimensions; match them
// with errors.Is.
//
// Matrices here are expected to be small and hand-entered. Cofactor
// expansion is exponential; prefer DeterminantLU beyond CofactorMaxOrder.
package matrix
