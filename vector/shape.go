// SPDX-License-Identifier: MIT

// Package vector - Shape: the explicit form a vector operand arrives in.
//
// Purpose:
//   - Replace shape-sniffing with a tagged union: Flat | Row | Column | Grid.
//   - Provide one total conversion, Values, that every vector kernel runs first.
//
// The union is generic so the same conversion serves numeric vectors
// (Shape[float64]) and token vectors for the symbolic path (Shape[string]).
package vector

import (
	"fmt"

	"github.com/katalvlaran/lincalc/matrix"
)

// Kind tags which variant a Shape holds.
type Kind int

const (
	// KindFlat is a plain ordered sequence.
	KindFlat Kind = iota
	// KindRow is a 1×n matrix.
	KindRow
	// KindColumn is an n×1 matrix.
	KindColumn
	// KindGrid is any other r×c matrix; it flattens row-major.
	KindGrid
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindGrid:
		return "grid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a vector operand in one of four forms.
// The zero value is an empty Flat shape.
type Shape[T any] struct {
	kind Kind
	flat []T   // Flat, Row and Column payload
	grid [][]T // Grid payload
}

// Flat wraps a plain sequence (copied).
func Flat[T any](v []T) Shape[T] {
	return Shape[T]{kind: KindFlat, flat: append([]T(nil), v...)}
}

// Row wraps the single row of a 1×n matrix (copied).
func Row[T any](v []T) Shape[T] {
	return Shape[T]{kind: KindRow, flat: append([]T(nil), v...)}
}

// Column wraps the entries of an n×1 matrix, top to bottom (copied).
func Column[T any](v []T) Shape[T] {
	return Shape[T]{kind: KindColumn, flat: append([]T(nil), v...)}
}

// Grid wraps an arbitrary row literal (deep-copied).
//
// Grid performs no classification; use Classify to collapse 1×n and n×1
// literals into Row and Column.
func Grid[T any](rows [][]T) Shape[T] {
	g := make([][]T, len(rows))
	for i, r := range rows {
		g[i] = append([]T(nil), r...)
	}

	return Shape[T]{kind: KindGrid, grid: g}
}

// Classify picks the narrowest variant for a row literal:
// one row → Row, every row of length one → Column, otherwise Grid.
func Classify[T any](rows [][]T) Shape[T] {
	if len(rows) == 1 {
		return Row(rows[0])
	}
	if len(rows) > 1 {
		col := make([]T, 0, len(rows))
		for _, r := range rows {
			if len(r) != 1 {
				return Grid(rows)
			}
			col = append(col, r[0])
		}

		return Column(col)
	}

	return Grid(rows)
}

// Kind reports the variant.
func (s Shape[T]) Kind() Kind { return s.kind }

// Values returns the canonical flat sequence (always a fresh slice).
// Flat, Row and Column yield their entries in order; Grid flattens row-major.
func (s Shape[T]) Values() []T {
	if s.kind != KindGrid {
		return append([]T(nil), s.flat...)
	}
	n := 0
	for _, r := range s.grid {
		n += len(r)
	}
	out := make([]T, 0, n)
	for _, r := range s.grid {
		out = append(out, r...)
	}

	return out
}

// Len is len(Values()) without the copy.
func (s Shape[T]) Len() int {
	if s.kind != KindGrid {
		return len(s.flat)
	}
	n := 0
	for _, r := range s.grid {
		n += len(r)
	}

	return n
}

// FromMatrix classifies a numeric matrix operand.
func FromMatrix(m matrix.Matrix) (Shape[float64], error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return Shape[float64]{}, err
	}

	return Classify(rows), nil
}

// IsVectorShaped reports whether m is a single row or a single column.
func IsVectorShaped(m matrix.Matrix) bool {
	return m != nil && (m.Rows() == 1 || m.Cols() == 1)
}
