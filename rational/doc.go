// SPDX-License-Identifier: MIT

// Package rational implements exact fractions of fixed-width signed integers.
//
// What is a Rational?
//
//	Rational[T] stores a numerator p and a denominator q of the same signed
//	integer type T. Every value is kept in canonical form:
//	  • q > 0
//	  • gcd(|p|, q) = 1
//	  • zero is 0/1
//	so two equal fractions always have identical fields.
//
// Key properties:
//   - Immutable values: arithmetic returns a new, normalized Rational.
//   - Ready-to-use zero value: Rational[T]{} reads as 0/1.
//   - Addition and subtraction work over lcm(q1, q2) instead of q1·q2 to keep
//     intermediates small.
//   - Integers mix in through explicit *Int methods (AddInt, MulInt, ...);
//     widths mix through the explicit Widen conversion.
//   - Rational[T] satisfies field.Element, so it plugs straight into the
//     matrix, polynomial and scheme packages.
//
// Limitations:
//
//	Integer overflow is NOT detected. Rational is meant for small exact
//	computations (stencil derivation, exact linear algebra on tiny systems).
//	Use field.BigRat when magnitudes may exceed the range of T.
//
// Usage:
//
//	a := rational.MustNew[int64](3, 2)
//	b := rational.FromInt[int64](2)
//	fmt.Println(a.Add(b))       // 7/2
//	fmt.Println(a.MulInt(4))    // 6
//	fmt.Println(a.Float64())    // 1.5
package rational
