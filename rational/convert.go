// SPDX-License-Identifier: MIT

package rational

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Float64 returns p/q evaluated in float64.
func (r Rational[T]) Float64() float64 { return ToFloat[float64](r) }

// ToFloat returns p/q evaluated in the floating type F.
func ToFloat[F constraints.Float, T constraints.Signed](r Rational[T]) F {
	return F(r.p) / F(r.den())
}

// Rat returns r as a freshly allocated *big.Rat.
func (r Rational[T]) Rat() *big.Rat {
	return big.NewRat(int64(r.p), int64(r.den()))
}

// Widen converts r to the integer width U. It is the explicit promotion step
// to use before combining rationals of different widths:
//
//	a := rational.MustNew[int32](1, 3)
//	b := rational.MustNew[int64](1, 6)
//	sum := rational.Widen[int64](a).Add(b) // 1/2
//
// U should be at least as wide as T; narrowing truncates silently.
func Widen[U, T constraints.Signed](r Rational[T]) Rational[U] {
	return Rational[U]{p: U(r.p), q: U(r.den())}
}

// Field identities: these make Rational[T] satisfy field.Element[Rational[T]].

// Zero returns 0/1. Callable on the zero value.
func (Rational[T]) Zero() Rational[T] { return Rational[T]{p: 0, q: 1} }

// One returns 1/1. Callable on the zero value.
func (Rational[T]) One() Rational[T] { return Rational[T]{p: 1, q: 1} }

// FromInt64 returns n/1 converted to T (truncating when n does not fit T).
func (Rational[T]) FromInt64(n int64) Rational[T] { return FromInt(T(n)) }
