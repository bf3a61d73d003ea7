// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"

	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/vector"
)

// Result is a symbolic cross product.
// Dimension 2 has one component (the scalar z term), dimension 3 has three.
type Result struct {
	Dimension  int      `json:"dimension"`
	Components []string `json:"components"`
	Raw        []string `json:"raw"`
}

// product renders one "(a) * (b)" factor pair.
func product(a, b string) string {
	return fmt.Sprintf("(%s) * (%s)", normalizeToken(a), normalizeToken(b))
}

func difference(a, b, c, d string) string {
	return product(a, b) + " - " + product(c, d)
}

// RawCross builds the unsimplified component expressions of u × v with the
// same index pattern as the numeric cross product.
//
// Errors:
//   - matrix.ErrDimensionMismatch when lengths differ.
//   - vector.ErrUnsupportedDimension for lengths other than 2 and 3.
func RawCross(u, v []string) ([]string, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("CrossSymbolic: %w: Vector A has %d elements but Vector B has %d, both must have the same length",
			matrix.ErrDimensionMismatch, len(u), len(v))
	}
	switch len(u) {
	case 2:
		return []string{difference(u[0], v[1], u[1], v[0])}, nil
	case 3:
		return []string{
			difference(u[1], v[2], u[2], v[1]),
			difference(u[2], v[0], u[0], v[2]),
			difference(u[0], v[1], u[1], v[0]),
		}, nil
	default:
		return nil, fmt.Errorf("CrossSymbolic: %w: got %dD vectors", vector.ErrUnsupportedDimension, len(u))
	}
}

// Cross returns the simplified symbolic cross product of u and v.
// It accepts purely numeric tokens too; their components fold to numbers.
func Cross(u, v []string) (Result, error) {
	raw, err := RawCross(u, v)
	if err != nil {
		return Result{}, err
	}
	out := Result{Dimension: len(u), Components: make([]string, len(raw)), Raw: raw}
	for i, expr := range raw {
		out.Components[i] = Simplify(expr)
	}

	return out, nil
}
