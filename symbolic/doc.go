// SPDX-License-Identifier: MIT

// Package symbolic computes cross products of vectors whose components may be
// variable terms such as "3x" or "-y".
//
// It is textual rewriting over the fixed expression shapes the cross-product
// formula produces, not a computer algebra system. RawCross builds strings
// like "(3x) * (5) - (y) * (3)" and Simplify reduces them ("15x - 3y") with
// an ordered list of regular-expression rules run to a fixed point.
package symbolic
