// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/polysche/field"

// Eval returns the N values of p at x.
//
// Implementation:
//   - Horner's rule per column: r = c[D]; r = r·x + c[d] for d = D-1..0.
//
// Behavior highlights:
//   - The zero value evaluates to an empty slice.
//
// Complexity:
//   - Time O((D+1)*N), Space O(N).
func (p Polynomial[E]) Eval(x E) []E {
	top := len(p.coeffs) - 1
	if top < 0 {
		return nil
	}
	out := append([]E(nil), p.coeffs[top]...)
	for d := top - 1; d >= 0; d-- {
		for i, c := range p.coeffs[d] {
			out[i] = out[i].Mul(x).Add(c)
		}
	}

	return out
}

// EvalInt evaluates p at the integer x promoted into E.
func (p Polynomial[E]) EvalInt(x int64) []E { return p.Eval(field.FromInt64[E](x)) }

// Map converts every coefficient with fn, e.g. to evaluate an exact
// polynomial at a floating-point location:
//
//	pf := polynomial.Map(p, func(r rational.Rat64) field.Float { return field.Float(r.Float64()) })
//	pf.Eval(0.25)
func Map[E field.Element[E], F field.Element[F]](p Polynomial[E], fn func(E) F) Polynomial[F] {
	c := make([][]F, len(p.coeffs))
	for d, row := range p.coeffs {
		c[d] = make([]F, len(row))
		for i, v := range row {
			c[d][i] = fn(v)
		}
	}

	return Polynomial[F]{coeffs: c}
}
