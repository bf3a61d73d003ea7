// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lincalc/coord"
	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/vector"
)

// Inverse notes shown instead of an inverse.
const (
	NoteSingular      = "Matrix is singular (determinant = 0)"
	NoteNotInvertible = "Matrix is not invertible"
)

// FrobeniusMaxOrder is the largest square order Analyze reports a Frobenius norm for.
const FrobeniusMaxOrder = 3

// Analysis collects every single-matrix property that applies to A.
// Pointer and slice fields are nil when the property does not apply.
type Analysis struct {
	Rows          int         `json:"rows"`
	Cols          int         `json:"cols"`
	Determinant   *float64    `json:"determinant,omitempty"`
	Trace         *float64    `json:"trace,omitempty"`
	Transpose     [][]float64 `json:"transpose"`
	Inverse       [][]float64 `json:"inverse,omitempty"`
	InverseNote   string      `json:"inverseNote,omitempty"`
	Rank          int         `json:"rank"`
	RowEchelon    [][]float64 `json:"rowEchelonForm"`
	Magnitude     *float64    `json:"vectorMagnitude,omitempty"`
	Normalized    []float64   `json:"normalizedVector,omitempty"`
	FrobeniusNorm *float64    `json:"frobeniusNorm,omitempty"`
}

// Compatibility says which binary operations accept the pair (A, B).
type Compatibility struct {
	Add      bool `json:"add"`
	Subtract bool `json:"subtract"`
	Multiply bool `json:"multiply"`
	Dot      bool `json:"dot"`
	Cross    bool `json:"cross"`
}

// Compatibility reports the legal binary operations for a and b.
// Cross requires two vectors of equal length 2 or 3.
func (e *Engine) Compatibility(a, b matrix.Matrix) Compatibility {
	if a == nil || b == nil {
		return Compatibility{}
	}
	same := matrix.SameShape(a, b)
	out := Compatibility{Add: same, Subtract: same, Multiply: matrix.MulCompatible(a, b)}
	out.Dot = out.Multiply
	if vector.IsVectorShaped(a) && vector.IsVectorShaped(b) {
		n, m := a.Rows()*a.Cols(), b.Rows()*b.Cols()
		out.Dot = out.Dot || n == m
		out.Cross = n == m && (n == 2 || n == 3)
	}

	return out
}

// Analyze computes the single-matrix report: determinant and trace for square
// input, transpose, inverse or a note explaining its absence, rank, row-echelon
// form, magnitude and normalized vector for row/column vectors, and the
// Frobenius norm for square matrices up to FrobeniusMaxOrder.
func (e *Engine) Analyze(a matrix.Matrix) (out Analysis, err error) {
	start := time.Now()
	defer func() { e.observe(opAnalyze, shapeOf(a), start, err) }()
	if err = matrix.ValidateNotNil(a); err != nil {
		return Analysis{}, err
	}
	out.Rows, out.Cols = a.Rows(), a.Cols()
	square := out.Rows == out.Cols

	if square {
		var det, tr float64
		if det, err = Determinant(a); err != nil {
			return Analysis{}, err
		}
		if tr, err = matrix.Trace(a); err != nil {
			return Analysis{}, err
		}
		out.Determinant, out.Trace = &det, &tr
		if err = analyzeInverse(a, det, &out); err != nil {
			return Analysis{}, err
		}
	}

	var t, ref matrix.Matrix
	if t, err = matrix.Transpose(a); err != nil {
		return Analysis{}, err
	}
	if out.Transpose, err = matrix.ToRows(t); err != nil {
		return Analysis{}, err
	}
	if out.Rank, err = matrix.Rank(a); err != nil {
		return Analysis{}, err
	}
	if ref, err = matrix.RowEchelon(a); err != nil {
		return Analysis{}, err
	}
	if out.RowEchelon, err = matrix.ToRows(ref); err != nil {
		return Analysis{}, err
	}

	if vector.IsVectorShaped(a) {
		v, ferr := flat(a)
		if ferr != nil {
			return Analysis{}, ferr
		}
		mag := vector.Magnitude(v)
		out.Magnitude = &mag
		if len(v) == 2 || len(v) == 3 {
			// A zero vector has no direction; the field stays empty.
			if n, nerr := vector.Normalize(v); nerr == nil {
				out.Normalized = n
			}
		}
	}
	if square && out.Rows <= FrobeniusMaxOrder {
		var f float64
		if f, err = matrix.FrobeniusNorm(a); err != nil {
			return Analysis{}, err
		}
		out.FrobeniusNorm = &f
	}

	return out, nil
}

func analyzeInverse(a matrix.Matrix, det float64, out *Analysis) error {
	if matrix.IsNegligible(det) {
		out.InverseNote = NoteSingular
		return nil
	}
	inv, err := matrix.Inverse(a)
	if errors.Is(err, matrix.ErrSingular) {
		out.InverseNote = NoteNotInvertible
		return nil
	}
	if err != nil {
		return err
	}
	out.Inverse, err = matrix.ToRows(inv)

	return err
}

// Conversion modes accepted by Convert.
const (
	ModePolarToRect = "polar-to-rect"
	ModeRectToPolar = "rect-to-polar"
)

// ErrUnknownMode is returned by Convert for an unsupported mode.
var ErrUnknownMode = errors.New("calc: unknown conversion mode")

// Conversion is a coordinate conversion result.
type Conversion struct {
	Mode    string       `json:"mode"`
	Rect    *coord.Rect  `json:"rectangular,omitempty"`
	Polar   *coord.Polar `json:"polar,omitempty"`
	Display string       `json:"display"`
}

// Convert runs a coordinate conversion. For ModePolarToRect p, q are (r, θ°);
// for ModeRectToPolar they are (x, y).
func (e *Engine) Convert(mode string, p, q float64) (out Conversion, err error) {
	start := time.Now()
	defer func() { e.observe(opConvert, mode, start, err) }()

	switch mode {
	case ModePolarToRect:
		r, cerr := coord.PolarToRect(p, q)
		if cerr != nil {
			return Conversion{}, cerr
		}
		return Conversion{Mode: mode, Rect: &r, Display: r.Display()}, nil
	case ModeRectToPolar:
		pol, cerr := coord.RectToPolar(p, q)
		if cerr != nil {
			return Conversion{}, cerr
		}
		return Conversion{Mode: mode, Polar: &pol, Display: pol.Display()}, nil
	default:
		return Conversion{}, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownMode, mode, ModePolarToRect, ModeRectToPolar)
	}
}
