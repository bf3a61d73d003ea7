// SPDX-License-Identifier: MIT

// Package vector implements vector operations for lincalc: dot and cross
// products (2D scalar, 3D vector), magnitude, normalization, projection,
// angles and orthogonality/parallelism tests.
//
// Operands may arrive as flat slices, 1×n rows, n×1 columns or arbitrary
// grids; Shape models those forms explicitly and Shape.Values is the single
// conversion every caller runs before a vector kernel.
//
// Length mismatches fail with matrix.ErrDimensionMismatch. Cross-product
// style operations on lengths other than 2 or 3 fail with
// ErrUnsupportedDimension, and divisions by a zero magnitude fail with
// ErrZeroVector.
package vector
