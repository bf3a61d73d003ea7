// SPDX-License-Identifier: MIT

// Package matrix - elimination kernels: Inverse, Rank, RowEchelon.
//
// All three share the same partial-pivoting step (largest |value| at or below
// the current row, topmost on ties) and the same Epsilon threshold, so a
// matrix reported singular by Inverse always has Rank < n.

package matrix

import (
	"fmt"
	"math"
)

// Inverse returns m⁻¹ via Gauss–Jordan elimination on [m | I].
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); build the augmented working copy [m | I].
//   - Stage 2: For each column i: pick the partial pivot, swap it into row i, fail
//     with ErrSingular when |pivot| < Epsilon, scale row i so the pivot is 1, then
//     eliminate column i from every other row.
//   - Stage 3: Copy the right half out as the result.
//
// Behavior highlights:
//   - The caller's matrix is never mutated.
//   - Singular detection happens mid-sweep; no partial result is returned.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (message names the pivot column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := AugmentRight(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	w := aug.c // 2n
	var i, j, k, p int
	var pivot, factor, best float64
	for i = 0; i < n; i++ {
		p, best = aug.pivotRow(i, i)
		aug.swapRows(p, i)
		if best < Epsilon {
			return nil, matrixErrorf(opInverse,
				fmt.Errorf("%w: no usable pivot in column %d", ErrSingular, i))
		}

		// Normalize pivot row.
		pivot = aug.data[i*w+i]
		for j = 0; j < w; j++ {
			aug.data[i*w+j] /= pivot
		}

		// Clear column i everywhere else.
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			factor = aug.data[k*w+i]
			if factor == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				aug.data[k*w+j] -= factor * aug.data[i*w+j]
			}
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// Rank counts the pivots found by partial-pivoting Gauss–Jordan reduction.
//
// Implementation:
//   - Walk columns left to right while rows remain. A column whose best candidate
//     is below Epsilon is skipped and the current row stays put. Otherwise the
//     pivot row is swapped up, scaled to 1, and the column is cleared in every
//     other row.
//
// Errors:
//   - ErrNilMatrix only; any shape is accepted.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c).
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	work, err := denseCopy(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rows, cols := work.r, work.c
	rank, row := 0, 0
	var col, i, j, p int
	var pivot, factor, best float64
	for col = 0; col < cols && row < rows; col++ {
		p, best = work.pivotRow(row, col)
		if best < Epsilon {
			continue
		}
		work.swapRows(p, row)

		pivot = work.data[row*cols+col]
		for j = 0; j < cols; j++ {
			work.data[row*cols+j] /= pivot
		}
		for i = 0; i < rows; i++ {
			if i == row {
				continue
			}
			factor = work.data[i*cols+col]
			if factor == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				work.data[i*cols+j] -= factor * work.data[row*cols+j]
			}
		}
		rank++
		row++
	}

	return rank, nil
}

// RowEchelon returns a row-echelon form of m: every pivot has zeros below it.
// Entries above pivots are left alone and pivot rows are not normalized.
// Columns without a usable pivot (|best| < Epsilon) are skipped.
//
// Errors: ErrNilMatrix.
// Complexity: O(r·c·min(r,c)).
func RowEchelon(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	ref, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}

	rows, cols := ref.r, ref.c
	cur := 0
	var col, i, j, p int
	var factor, best float64
	for col = 0; col < cols && cur < rows; col++ {
		p, best = ref.pivotRow(cur, col)
		if best < Epsilon {
			continue
		}
		ref.swapRows(p, cur)

		for i = cur + 1; i < rows; i++ {
			factor = ref.data[i*cols+col] / ref.data[cur*cols+col]
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				ref.data[i*cols+j] -= factor * ref.data[cur*cols+j]
			}
			// Pin the eliminated entry to an exact zero.
			ref.data[i*cols+col] = 0
		}
		cur++
	}

	return ref, nil
}

// IsNegligible reports |v| < Epsilon.
func IsNegligible(v float64) bool { return math.Abs(v) < Epsilon }
