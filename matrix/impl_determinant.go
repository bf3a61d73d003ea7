// SPDX-License-Identifier: MIT

// Package matrix - determinants.
//
// Two strategies live here:
//   - Determinant: recursive cofactor expansion along row 0. Exact for the
//     small, hand-entered matrices this package targets; O(n!) in general.
//   - DeterminantLU: Doolittle factorization with partial pivoting, O(n³).
//     Callers switch to it above CofactorMaxOrder. On near-singular input the
//     two can differ in the last bits; tests pin both against the same fixtures.

package matrix

import (
	"fmt"
	"math"
)

// Determinant computes det(m) by cofactor expansion.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square).
//   - Stage 2: Snapshot into a *Dense so the recursion works on flat rows.
//   - Stage 3: 1×1 → m[0,0]; 2×2 → ad − bc; otherwise Σⱼ (−1)ʲ·m[0,j]·det(Minor(m,0,j)).
//
// Behavior highlights:
//   - Zero entries on row 0 skip their minor entirely.
//   - Result is exact for integer inputs small enough to stay within float64 precision.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare ("matrix is 2x3, a square matrix is required").
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := denseCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(d), nil
}

// cofactorDet assumes d is square and non-empty.
func cofactorDet(d *Dense) float64 {
	n := d.r
	switch n {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	det := ZeroSum
	sign := 1.0
	var j int
	for j = 0; j < n; j++ {
		if a := d.data[j]; a != 0 {
			det += sign * a * cofactorDet(minorOf(d, 0, j))
		}
		sign = -sign
	}

	return det
}

// minorOf copies d without row r and column c. d must be at least 2×2.
func minorOf(d *Dense, r, c int) *Dense {
	n, w := d.r-1, d.c-1
	out := &Dense{r: n, c: w, data: make([]float64, n*w), validateNaNInf: d.validateNaNInf}
	var i, j, dst int
	for i = 0; i < d.r; i++ {
		if i == r {
			continue
		}
		for j = 0; j < d.c; j++ {
			if j == c {
				continue
			}
			out.data[dst] = d.data[i*d.c+j]
			dst++
		}
	}

	return out
}

// Minor returns m with row `row` and column `col` removed.
// Errors: ErrNilMatrix; ErrOutOfRange for bad indices; ErrInvalidDimensions
// when m has a single row or column (the minor would be empty).
func Minor(m Matrix, row, col int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	d, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(d, row, col), nil
}

// DeterminantLU computes det(m) = sign(P)·Πᵢ U[i,i] from a pivoted LU factorization.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); take a working copy.
//   - Stage 2: For each column k choose the largest |pivot| at or below row k, swap
//     it up (flipping the sign), and eliminate below the pivot (Doolittle update
//     stored in place: L below the diagonal, U on and above it).
//   - Stage 3: Multiply the diagonal of U.
//
// Behavior highlights:
//   - A pivot with |p| < Epsilon means the matrix is singular: the determinant is 0,
//     not an error, matching the cofactor definition.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DeterminantLU(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}
	lu, err := denseCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}
	sign, _, err := luInPlace(lu)
	if err != nil {
		// A vanishing pivot only tells us det == 0.
		return 0, nil
	}

	n := lu.r
	det := sign
	for i := 0; i < n; i++ {
		det *= lu.data[i*n+i]
	}

	return det, nil
}

// luInPlace overwrites a with its row-pivoted Doolittle factors: L below the
// diagonal (unit diagonal implied), U on and above it. It returns the permutation
// sign and perm, where perm[i] is the original row now stored at row i.
// ErrSingular signals a pivot below Epsilon.
func luInPlace(a *Dense) (float64, []int, error) {
	n := a.r
	sign := 1.0
	perm := make([]int, n)
	var i, j, k, p int
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	var pivot, factor, best float64
	for k = 0; k < n; k++ {
		p, best = a.pivotRow(k, k)
		if best < Epsilon {
			return 0, nil, ErrSingular
		}
		if p != k {
			a.swapRows(p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / pivot
			a.data[i*n+k] = factor // L[i,k]
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return sign, perm, nil
}

// LU computes a partially pivoted factorization P·A = L·U.
//
// Returns:
//   - L: unit lower triangular.
//   - U: upper triangular.
//   - perm: perm[i] is the original row placed at row i.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (a pivot below Epsilon).
func LU(m Matrix) (*Dense, *Dense, []int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	_, perm, err := luInPlace(a)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = a.data[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = a.data[i*n+j]
			default:
				U.data[i*n+j] = a.data[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// IsSingular reports whether |det(m)| < Epsilon, using the LU path so the
// check stays cubic for any order.
func IsSingular(m Matrix) (bool, error) {
	det, err := DeterminantLU(m)
	if err != nil {
		return false, err
	}

	return math.Abs(det) < Epsilon, nil
}
