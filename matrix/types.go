// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// Matrix is the read/write surface every kernel consumes; Dense is the only
// concrete implementation shipped here.
package matrix

import "github.com/katalvlaran/polysche/field"

// Matrix represents a two-dimensional array of field elements.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[E field.Element[E]] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is invalid.
	At(i, j int) (E, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v E) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix[E]
}

// PivotRule selects how GaussJordan chooses the pivot row in each column.
type PivotRule int

const (
	// PivotMaxAbs picks the row with the largest absolute value in the
	// active column (partial pivoting). With exact elements it also tends to
	// keep intermediate fractions small.
	PivotMaxAbs PivotRule = iota

	// PivotFirstNonZero picks the first row with a non-zero entry in the
	// active column. Cheapest rule; only sensible for exact element types.
	PivotFirstNonZero
)

// String implements fmt.Stringer.
func (p PivotRule) String() string {
	switch p {
	case PivotMaxAbs:
		return "max-abs"
	case PivotFirstNonZero:
		return "first-non-zero"
	default:
		return "unknown"
	}
}
