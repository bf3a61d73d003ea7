// SPDX-License-Identifier: MIT

// Package vector - vector kernels over flat []float64.
//
// Every kernel checks lengths first and fails before computing; nothing is
// truncated or padded. Inputs are never mutated.
package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lincalc/matrix"
)

var (
	// ErrUnsupportedDimension is returned by cross-product style operations for
	// vectors whose length is neither 2 nor 3.
	ErrUnsupportedDimension = errors.New("vector: only 2D and 3D vectors are supported")

	// ErrZeroVector is returned when an operation divides by a zero magnitude.
	ErrZeroVector = errors.New("vector: zero vector")
)

const (
	opDot       = "Dot"
	opCross     = "Cross"
	opNormalize = "Normalize"
	opProject   = "Project"
	opAngle     = "Angle"
	opParallel  = "IsParallel"
	opOrtho     = "IsOrthogonal"
)

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameLen fails with matrix.ErrDimensionMismatch naming both lengths.
func sameLen(u, v []float64) error {
	if len(u) != len(v) {
		return fmt.Errorf("%w: Vector A has %d elements but Vector B has %d, both must have the same length",
			matrix.ErrDimensionMismatch, len(u), len(v))
	}

	return nil
}

// Dot returns Σ uᵢvᵢ.
// Errors: matrix.ErrDimensionMismatch when lengths differ.
func Dot(u, v []float64) (float64, error) {
	if err := sameLen(u, v); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return dot(u, v), nil
}

func dot(u, v []float64) float64 {
	sum := matrix.ZeroSum
	for i := range u {
		sum += u[i] * v[i]
	}

	return sum
}

// CrossResult holds either the 2D scalar (Dim == 2) or the 3D vector (Dim == 3).
type CrossResult struct {
	Dim    int
	Scalar float64
	Vector []float64
}

// Cross computes u × v.
//
// Behavior highlights:
//   - len 2: scalar z-component u₀v₁ − u₁v₀.
//   - len 3: (u₁v₂−u₂v₁, u₂v₀−u₀v₂, u₀v₁−u₁v₀).
//
// Errors:
//   - matrix.ErrDimensionMismatch (lengths differ), ErrUnsupportedDimension (other lengths).
func Cross(u, v []float64) (CrossResult, error) {
	if err := sameLen(u, v); err != nil {
		return CrossResult{}, vectorErrorf(opCross, err)
	}
	switch len(u) {
	case 2:
		return CrossResult{Dim: 2, Scalar: cross2(u, v)}, nil
	case 3:
		return CrossResult{Dim: 3, Vector: cross3(u, v)}, nil
	default:
		return CrossResult{}, vectorErrorf(opCross,
			fmt.Errorf("%w: got %dD vectors", ErrUnsupportedDimension, len(u)))
	}
}

// Cross2D is Cross restricted to 2D input.
func Cross2D(u, v []float64) (float64, error) {
	if len(u) != 2 || len(v) != 2 {
		return 0, vectorErrorf(opCross,
			fmt.Errorf("%w: 2D cross product requires two 2D vectors, got %d and %d", ErrUnsupportedDimension, len(u), len(v)))
	}

	return cross2(u, v), nil
}

// Cross3D is Cross restricted to 3D input.
func Cross3D(u, v []float64) ([]float64, error) {
	if len(u) != 3 || len(v) != 3 {
		return nil, vectorErrorf(opCross,
			fmt.Errorf("%w: 3D cross product requires two 3D vectors, got %d and %d", ErrUnsupportedDimension, len(u), len(v)))
	}

	return cross3(u, v), nil
}

func cross2(u, v []float64) float64 { return u[0]*v[1] - u[1]*v[0] }

func cross3(u, v []float64) []float64 {
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Magnitude returns the Euclidean length sqrt(Σ vᵢ²).
func Magnitude(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

// Normalize returns v / |v|.
// Errors: ErrZeroVector when |v| == 0.
func Normalize(v []float64) ([]float64, error) {
	mag := Magnitude(v)
	if mag == 0 {
		return nil, vectorErrorf(opNormalize, fmt.Errorf("%w: cannot normalize a zero vector", ErrZeroVector))
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / mag
	}

	return out, nil
}

// Project returns the projection of a onto b: (a·b / b·b)·b.
// Errors: matrix.ErrDimensionMismatch; ErrZeroVector when b·b == 0.
func Project(a, b []float64) ([]float64, error) {
	if err := sameLen(a, b); err != nil {
		return nil, vectorErrorf(opProject, err)
	}
	bb := dot(b, b)
	if bb == 0 {
		return nil, vectorErrorf(opProject, fmt.Errorf("%w: cannot project onto a zero vector", ErrZeroVector))
	}
	s := dot(a, b) / bb
	out := make([]float64, len(b))
	for i, x := range b {
		out[i] = s * x
	}

	return out, nil
}

// Angle returns the angle between u and v in radians, in [0, π].
// The cosine is clamped to [-1, 1] before acos to absorb rounding.
// Errors: matrix.ErrDimensionMismatch; ErrZeroVector if either magnitude is 0.
func Angle(u, v []float64) (float64, error) {
	if err := sameLen(u, v); err != nil {
		return 0, vectorErrorf(opAngle, err)
	}
	mu, mv := Magnitude(u), Magnitude(v)
	if mu == 0 || mv == 0 {
		return 0, vectorErrorf(opAngle, fmt.Errorf("%w: angle is undefined for a zero vector", ErrZeroVector))
	}
	c := dot(u, v) / (mu * mv)

	return math.Acos(math.Max(-1, math.Min(1, c))), nil
}

// IsOrthogonal reports |u·v| < tol. A non-positive tol selects matrix.Epsilon.
func IsOrthogonal(u, v []float64, tol float64) (bool, error) {
	if err := sameLen(u, v); err != nil {
		return false, vectorErrorf(opOrtho, err)
	}
	if tol <= 0 {
		tol = matrix.Epsilon
	}

	return math.Abs(dot(u, v)) < tol, nil
}

// IsParallel reports whether the cross product of u and v vanishes within tol.
// Only 2D and 3D vectors are supported. A non-positive tol selects matrix.Epsilon.
func IsParallel(u, v []float64, tol float64) (bool, error) {
	if tol <= 0 {
		tol = matrix.Epsilon
	}
	res, err := Cross(u, v)
	if err != nil {
		return false, vectorErrorf(opParallel, err)
	}
	if res.Dim == 2 {
		return math.Abs(res.Scalar) < tol, nil
	}

	return Magnitude(res.Vector) < tol, nil
}

// Negate returns −v.
func Negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}

	return out
}
