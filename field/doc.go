// SPDX-License-Identifier: MIT

// Package field declares the arithmetic capability set shared by every numeric
// kernel in polysche, together with two ready-made implementations.
//
// What is a field element here?
//
//	Any immutable value type that can add, subtract, multiply, divide, negate,
//	take an absolute value, compare itself to another value of the same type,
//	and produce the additive/multiplicative identities. The Gauss-Jordan solver
//	(package matrix), the vector polynomial (package polynomial) and the scheme
//	builder (package scheme) are all written against Element and never against
//	a concrete number type.
//
// Implementations:
//   - rational.Rational[T]: exact canonical fraction over a fixed-width integer.
//   - Float: float64 with the usual IEEE-754 semantics.
//   - BigRat: arbitrary-precision exact fraction backed by math/big.
//
// Contract:
//   - Operations never mutate the receiver or the argument; they return a new value.
//   - The zero value of an implementation must behave as the additive identity,
//     so `var z E; z = z.Zero()` is always valid in generic code.
package field
