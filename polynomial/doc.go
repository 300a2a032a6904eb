// SPDX-License-Identifier: MIT

// Package polynomial implements vector-valued polynomials over a field.Element.
//
// A Polynomial[E] of degree D and width N holds D+1 coefficient vectors of
// length N: it is N polynomials of degree ≤ D sharing one monomial basis.
// Evaluating it at x returns N values at once, which is how a single call
// turns a "physical constraint" into a full row of a linear system.
//
// What's inside:
//   - Constructors: New (all-zero), FromCoeffs (explicit grid, copied).
//   - Evaluation:   Eval (Horner), EvalInt, Map (change of element type).
//   - Calculus:     Derivative(k), Primitive, Integrate(a, b).
//   - Accessors:    Degree, Width, Coeff, Coeffs, Equal, String.
//
// Invariants:
//   - Capacity (Degree+1 slots) is fixed for a value's lifetime. Derivative
//     keeps the capacity and zero-fills the top; Primitive returns a value
//     with one more slot. Slots are never truncated.
//   - Values are immutable: every operation returns a fresh Polynomial and
//     accessors return copies, so a Polynomial can be shared freely between
//     goroutines.
//
// Quick example:
//
//	p, _ := polynomial.FromCoeffs([][]rational.Rat64{
//		{one, zero}, // X^0
//		{zero, one}, // X^1
//	})
//	row := p.Derivative(1).EvalInt(0) // [0, 1]
package polynomial
