// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/polysche/field"

// Derivative returns the k-th derivative of p with the same capacity.
//
// Implementation:
//   - One step moves d·c[d] to slot d-1 and zero-fills the top slot.
//   - Steps repeat k times; after Degree+1 steps only zeros remain, so the
//     loop stops there.
//
// Behavior highlights:
//   - k == 0 or Degree() == 0 returns p unchanged.
//   - k > Degree() yields the all-zero polynomial of identical shape.
//
// Panics:
//   - k < 0 (programmer error).
//
// Complexity:
//   - Time O(k*(D+1)*N), Space O((D+1)*N).
func (p Polynomial[E]) Derivative(k int) Polynomial[E] {
	if k < 0 {
		panic(panicNegativeOrder)
	}
	if k == 0 || len(p.coeffs) <= 1 {
		return p
	}

	slots, n := len(p.coeffs), p.Width()
	if k >= slots {
		return zeros[E](slots, n)
	}
	cur := p.coeffs
	for step := 0; step < k; step++ {
		next := zeros[E](slots, n).coeffs
		for d := 1; d < slots; d++ {
			factor := field.FromInt64[E](int64(d))
			for i, c := range cur[d] {
				next[d-1][i] = factor.Mul(c)
			}
		}
		cur = next
	}

	return Polynomial[E]{coeffs: cur}
}

// Primitive returns the antiderivative of p with zero constant term.
// The result has one more slot: c'[d] = c[d-1]/d for d ≥ 1, c'[0] = 0.
//
// Complexity:
//   - Time O((D+2)*N), Space O((D+2)*N).
func (p Polynomial[E]) Primitive() Polynomial[E] {
	slots, n := len(p.coeffs)+1, p.Width()
	out := zeros[E](slots, n)
	for d := 1; d < slots; d++ {
		div := field.FromInt64[E](int64(d))
		for i, c := range p.coeffs[d-1] {
			out.coeffs[d][i] = c.Div(div)
		}
	}

	return out
}

// Integrate returns the definite integral of every column over [a, b],
// computed as Primitive()(b) - Primitive()(a).
//
// Complexity:
//   - Time O((D+2)*N), Space O((D+2)*N).
func (p Polynomial[E]) Integrate(a, b E) []E {
	prim := p.Primitive()
	pb := prim.Eval(b)
	pa := prim.Eval(a)
	for i := range pb {
		pb[i] = pb[i].Sub(pa[i])
	}

	return pb
}
