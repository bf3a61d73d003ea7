// SPDX-License-Identifier: MIT

package calc

import (
	"encoding/json"

	"github.com/katalvlaran/lincalc/matrix"
)

// Kind tags the payload held by a Value.
type Kind string

const (
	KindScalar      Kind = "scalar"
	KindInteger     Kind = "integer"
	KindVector      Kind = "vector"
	KindMatrix      Kind = "matrix"
	KindExpression  Kind = "expression"
	KindExpressions Kind = "expressions"
	KindText        Kind = "text"
)

// Value is the result payload of an operation. Exactly one field matching
// Kind is meaningful; constructors copy their input.
type Value struct {
	Kind        Kind
	Scalar      float64
	Integer     int
	Vector      []float64
	Matrix      [][]float64
	Expressions []string
	Text        string
}

// Scalar wraps a number.
func Scalar(v float64) Value { return Value{Kind: KindScalar, Scalar: v} }

// Integer wraps a count such as a rank.
func Integer(n int) Value { return Value{Kind: KindInteger, Integer: n} }

// Vector wraps a copy of v.
func Vector(v []float64) Value {
	return Value{Kind: KindVector, Vector: append([]float64(nil), v...)}
}

// MatrixOf snapshots m into row form.
func MatrixOf(m matrix.Matrix) (Value, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return Value{}, err
	}

	return Value{Kind: KindMatrix, Matrix: rows}, nil
}

// Expression wraps one symbolic expression (2D cross product).
func Expression(s string) Value {
	return Value{Kind: KindExpression, Expressions: []string{s}}
}

// Expressions wraps a copy of the component expressions (3D cross product).
func Expressions(ss []string) Value {
	return Value{Kind: KindExpressions, Expressions: append([]string(nil), ss...)}
}

// Text wraps an explanatory string.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Payload returns the Kind-selected field as a plain Go value.
func (v Value) Payload() any {
	switch v.Kind {
	case KindScalar:
		return v.Scalar
	case KindInteger:
		return v.Integer
	case KindVector:
		return v.Vector
	case KindMatrix:
		return v.Matrix
	case KindExpression:
		if len(v.Expressions) == 0 {
			return ""
		}
		return v.Expressions[0]
	case KindExpressions:
		return v.Expressions
	case KindText:
		return v.Text
	default:
		return nil
	}
}

// MarshalJSON encodes {"kind": ..., "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  Kind `json:"kind"`
		Value any  `json:"value"`
	}{v.Kind, v.Payload()})
}
