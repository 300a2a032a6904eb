// SPDX-License-Identifier: MIT

package scheme

import (
	"github.com/katalvlaran/polysche/field"
	"github.com/katalvlaran/polysche/polynomial"
)

// Constraint is a linear functional on polynomials, expressed as the row it
// produces when applied to a canonical polynomial.
type Constraint[E field.Element[E]] func(p polynomial.Polynomial[E]) []E

// Value constrains the value at x: the row P(x).
func Value[E field.Element[E]](x E) Constraint[E] {
	return func(p polynomial.Polynomial[E]) []E { return p.Eval(x) }
}

// ValueInt is Value at an integer location.
func ValueInt[E field.Element[E]](x int64) Constraint[E] {
	return Value(field.FromInt64[E](x))
}

// DerivativeValue constrains the k-th derivative at x: the row P⁽ᵏ⁾(x).
// A negative k panics when the constraint is applied.
func DerivativeValue[E field.Element[E]](k int, x E) Constraint[E] {
	return func(p polynomial.Polynomial[E]) []E { return p.Derivative(k).Eval(x) }
}

// Integral constrains the definite integral over [a, b]: the row ∫ₐᵇ P.
func Integral[E field.Element[E]](a, b E) Constraint[E] {
	return func(p polynomial.Polynomial[E]) []E { return p.Integrate(a, b) }
}
