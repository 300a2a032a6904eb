// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/polysche/field"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Complexity: O(1).
func ValidateNotNil[E field.Element[E]](m Matrix[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[E]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Complexity: O(1).
func ValidateSquare[E field.Element[E]](m Matrix[E]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil[E field.Element[E]](m Matrix[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[E field.Element[E]](a, b Matrix[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
//
// Complexity: O(1).
func ValidateVecLen[E any](x []E, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows checks a row grid is non-empty and rectangular and returns its shape.
//
// Errors: ErrInvalidDimensions (no rows or empty first row), ErrBadShape (ragged).
// Complexity: O(r).
func ValidateRows[E any](rows [][]E) (r, c int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	r, c = len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return 0, 0, validatorErrorf("ValidateRows", fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
	}

	return r, c, nil
}
