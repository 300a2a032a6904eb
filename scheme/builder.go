// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/polysche/field"
	"github.com/katalvlaran/polysche/matrix"
	"github.com/katalvlaran/polysche/polynomial"
	"github.com/katalvlaran/polysche/rational"
)

// Operation tags for error wrapping.
const (
	opNew    = "New"
	opAddEqn = "AddEqn"
	opSolve  = "Solve"
)

// Builder accumulates constraint rows for a polynomial of degree Order.
// The zero value is a valid order-0 builder.
type Builder[E field.Element[E]] struct {
	order int
	rows  [][]E // len(rows) is the insertion index; never grown in place
}

// New returns an empty builder for polynomials of degree order.
//
// Errors:
//   - ErrInvalidOrder (order < 0).
func New[E field.Element[E]](order int) (Builder[E], error) {
	if order < 0 {
		return Builder[E]{}, fmt.Errorf("%s(%d): %w", opNew, order, ErrInvalidOrder)
	}

	return Builder[E]{order: order}, nil
}

// NewRational returns a builder over int64 rationals, the default exact type.
func NewRational(order int) (Builder[rational.Rat64], error) {
	return New[rational.Rat64](order)
}

// Order returns the polynomial degree the builder solves for.
func (b Builder[E]) Order() int { return b.order }

// Len returns the number of rows supplied so far.
func (b Builder[E]) Len() int { return len(b.rows) }

// Complete reports whether Order+1 rows have been supplied.
func (b Builder[E]) Complete() bool { return len(b.rows) == b.order+1 }

// Polynomial returns the canonical polynomial of degree Order with Order+1
// columns: the coefficient of X^k in column k is one, every other is zero.
// Applying a linear functional to it yields a row ready for AddEqn.
func (b Builder[E]) Polynomial() polynomial.Polynomial[E] {
	n := b.order + 1
	c := make([][]E, n)
	one := field.One[E]()
	for d := range c {
		c[d] = field.Vector[E](n)
		c[d][d] = one
	}
	p, _ := polynomial.FromCoeffs(c) // n ≥ 1, rectangular

	return p
}

// AddEqn returns a new builder with row appended. The receiver is unchanged
// and row is copied.
//
// Errors:
//   - ErrRowLength (len(row) != Order+1), ErrTooManyEquations.
//
// Complexity:
//   - Time O(Len·(Order+1)) for the row-header copy, Space O(Order+1).
func (b Builder[E]) AddEqn(row []E) (Builder[E], error) {
	if len(row) != b.order+1 {
		return b, fmt.Errorf("%s: got %d entries, want %d: %w", opAddEqn, len(row), b.order+1, ErrRowLength)
	}
	if b.Complete() {
		return b, fmt.Errorf("%s: %w", opAddEqn, ErrTooManyEquations)
	}

	rows := make([][]E, len(b.rows), b.order+1)
	copy(rows, b.rows)
	rows = append(rows, append([]E(nil), row...))

	return Builder[E]{order: b.order, rows: rows}, nil
}

// Add applies c to the canonical polynomial and appends the resulting row.
func (b Builder[E]) Add(c Constraint[E]) (Builder[E], error) {
	return b.AddEqn(c(b.Polynomial()))
}

// MustAdd is Add for fixed constraint lists; it panics on error.
func (b Builder[E]) MustAdd(cs ...Constraint[E]) Builder[E] {
	var err error
	for _, c := range cs {
		if b, err = b.Add(c); err != nil {
			panic(err)
		}
	}

	return b
}

// Solve inverts the accumulated system and returns the interpolation
// polynomial S of degree Order with Order+1 columns.
//
// Implementation:
//   - Stage 1: require Order+1 rows, else ErrIncomplete.
//   - Stage 2: matrix.Inverse of the row matrix M (row j = functional j
//     applied to 1, X, …, X^Order).
//   - Stage 3: M⁻¹ is read directly as the coefficient grid: entry (d, k)
//     is the coefficient of X^d in the weight polynomial of sample k.
//
// Behavior highlights:
//   - Applying functional j to S yields the j-th unit row exactly.
//   - opts are forwarded to matrix.Inverse (e.g. matrix.WithPivot).
//
// Errors:
//   - ErrIncomplete, matrix.ErrSingular (dependent constraints).
//
// Complexity:
//   - Time O(Order³), Space O(Order²).
func (b Builder[E]) Solve(opts ...matrix.Option) (polynomial.Polynomial[E], error) {
	if !b.Complete() {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s: have %d of %d rows: %w", opSolve, len(b.rows), b.order+1, ErrIncomplete)
	}
	m, err := matrix.FromRows(b.rows)
	if err != nil {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	inv, err := matrix.Inverse[E](m, opts...)
	if err != nil {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	p, err := polynomial.FromCoeffs(inv.ToRows())
	if err != nil {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return p, nil
}
