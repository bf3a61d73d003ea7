// SPDX-License-Identifier: MIT

// Package matrix: numeric policy constants.
//
// Purpose:
//   - Keep every "is this zero" threshold in one place so the determinant,
//     inverse, rank, vector and solver layers agree on degeneracy.
//   - Document the switch-over order between cofactor and LU determinants.
package matrix

const (
	// Epsilon is the absolute tolerance for pivot and zero tests.
	// Applied uniformly: singularity in Inverse, pivots in Rank/RowEchelon,
	// the LU determinant guard, and (via importers) vector and solver checks.
	Epsilon = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// CofactorMaxOrder is the largest order for which callers should prefer
	// the cofactor Determinant; beyond it DeterminantLU keeps the cost cubic.
	CofactorMaxOrder = 8
)

// ZeroSum is the initial accumulator for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opMatVec       = "MatVec"
	opTrace        = "Trace"
	opFrobenius    = "FrobeniusNorm"
	opDeterminant  = "Determinant"
	opDetLU        = "DeterminantLU"
	opLU           = "LU"
	opMinor        = "Minor"
	opInverse      = "Inverse"
	opRank         = "Rank"
	opRowEchelon   = "RowEchelon"
	opAllClose     = "AllClose"
	opNewFromRows  = "NewFromRows"
	opToRows       = "ToRows"
	opAugmentRight = "AugmentRight"
)
