// SPDX-License-Identifier: MIT

// Package coord converts between polar and rectangular coordinates.
// Angles are in degrees; results are rounded to two decimals.
package coord

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is returned for NaN or infinite inputs.
var ErrInvalidInput = errors.New("coord: invalid input values")

// Decimals is the rounding precision of every result.
const Decimals = 2

// Rect is a point in rectangular form.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polar is a point in polar form with Theta in degrees.
type Polar struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
}

// Display renders "(x, y)".
func (p Rect) Display() string { return fmt.Sprintf("(%s, %s)", short(p.X), short(p.Y)) }

// Display renders "r∠θ°".
func (p Polar) Display() string { return fmt.Sprintf("%s∠%s°", short(p.R), short(p.Theta)) }

// PolarToRect converts (r, θ°) to (r·cos θ, r·sin θ).
func PolarToRect(r, thetaDeg float64) (Rect, error) {
	if !finite(r) || !finite(thetaDeg) {
		return Rect{}, fmt.Errorf("PolarToRect: %w", ErrInvalidInput)
	}
	rad := thetaDeg * math.Pi / 180

	return Rect{X: Round(r*math.Cos(rad), Decimals), Y: Round(r*math.Sin(rad), Decimals)}, nil
}

// RectToPolar converts (x, y) to (√(x²+y²), atan2(y, x) in degrees).
// The angle lies in (−180, 180]; the origin maps to 0∠0°.
func RectToPolar(x, y float64) (Polar, error) {
	if !finite(x) || !finite(y) {
		return Polar{}, fmt.Errorf("RectToPolar: %w", ErrInvalidInput)
	}

	return Polar{
		R:     Round(math.Hypot(x, y), Decimals),
		Theta: Round(math.Atan2(y, x)*180/math.Pi, Decimals),
	}, nil
}

// Round rounds v to the given number of decimals, half away from zero.
// Negative zero becomes zero.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	out := math.Round(v*p) / p
	if out == 0 {
		return 0
	}

	return out
}

func short(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
