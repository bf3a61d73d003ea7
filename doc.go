// Package lincalc is a calculator for small matrices, vectors and linear
// systems, with a textual simplifier for symbolic cross products.
//
// What is inside?
//
//   - Dense matrices with addition, multiplication, transpose, determinant,
//     inverse, rank, row-echelon form, trace and Frobenius norm
//   - Vector operations: dot, 2D/3D cross, magnitude, normalize, projection, angle
//   - Linear systems with 2 to 4 unknowns: Cramer's rule and Gauss–Jordan
//     elimination, both reporting unique, infinite or inconsistent outcomes
//   - Symbolic cross products such as (2, 3x, y) × (1, 3, 5) = (15x - 3y, y - 10, 6 - 3x)
//   - Polar and rectangular coordinate conversion
//
// Everything is organized under these packages:
//
//	matrix/   Matrix interface, Dense storage, validators and kernels
//	vector/   vector shapes and vector operations
//	solver/   equations, validation, elimination and Cramer solvers
//	symbolic/ variable tokens, raw cross expressions and the simplifier
//	coord/    polar ↔ rectangular conversion
//	calc/     the stateless Engine tying the above together
//
// The engine is exposed by the lincalc command (cmd/lincalc) as a CLI and
// as a JSON API (lincalc serve).
//
//	go install github.com/katalvlaran/lincalc/cmd/lincalc@latest
package lincalc
