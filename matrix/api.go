// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

import "github.com/katalvlaran/polysche/field"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[E field.Element[E]](rows, cols int) (*Dense[E], error) {
	return NewDense[E](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zero fill + O(n) diagonal writes.
func NewIdentity[E field.Element[E]](n int) (*Dense[E], error) {
	I, err := NewDense[E](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := field.One[E]()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires a square m.
func IdentityLike[E field.Element[E]](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity[E](m.Rows())
}

// SolveRows is Solve for callers holding a plain row grid.
func SolveRows[E field.Element[E]](rows [][]E, b []E, opts ...Option) ([]E, error) {
	a, err := FromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return Solve[E](a, b, opts...)
}

// InverseRows is Inverse for callers holding a plain row grid; the inverse
// is returned as a row grid as well.
func InverseRows[E field.Element[E]](rows [][]E, opts ...Option) ([][]E, error) {
	a, err := FromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Inverse[E](a, opts...)
	if err != nil {
		return nil, err
	}

	return inv.ToRows(), nil
}
