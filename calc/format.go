// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DisplayZero is the magnitude below which a number is shown as zero.
const DisplayZero = 1e-3

// FormatNumber renders v with two decimals. Values below DisplayZero in
// magnitude and values that round to negative zero print as "0.00".
func FormatNumber(v float64) string {
	if math.Abs(v) < DisplayZero {
		return "0.00"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}

	return s
}

// FormatVector renders "[a, b, c]".
func FormatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = FormatNumber(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatMatrix renders one bracketed row per line.
func FormatMatrix(rows [][]float64) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = FormatVector(r)
	}

	return strings.Join(lines, "\n")
}

// FormatValue renders any Value for display.
func FormatValue(v Value) string {
	switch v.Kind {
	case KindScalar:
		return FormatNumber(v.Scalar)
	case KindInteger:
		return strconv.Itoa(v.Integer)
	case KindVector:
		return FormatVector(v.Vector)
	case KindMatrix:
		return FormatMatrix(v.Matrix)
	case KindExpression:
		return fmt.Sprint(v.Payload())
	case KindExpressions:
		return "[" + strings.Join(v.Expressions, ", ") + "]"
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// Format renders an operation result as "description\nvalue".
func Format(r OperationResult) string {
	return r.Description + "\n" + FormatValue(r.Result)
}
