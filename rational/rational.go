// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction p/q of signed integers of type T, always held
// in canonical form (q > 0, gcd(|p|, q) = 1).
//
// The zero value is the number 0: an unset denominator reads as 1.
type Rational[T constraints.Signed] struct {
	p T // numerator, carries the sign
	q T // denominator, > 0 once constructed; 0 only in the zero value
}

// Rat64 is the default exact type used by the scheme builder.
type Rat64 = Rational[int64]

// New returns the canonical representative of p/q.
// It returns ErrInvalidRational when q is zero.
//
// Complexity: O(log min(|p|, |q|)) for the gcd.
func New[T constraints.Signed](p, q T) (Rational[T], error) {
	if q == 0 {
		return Rational[T]{}, fmt.Errorf("New(%d, %d): %w", p, q, ErrInvalidRational)
	}

	return normalize(p, q), nil
}

// MustNew is New that panics on a zero denominator.
// Intended for literals in tests and package-level tables.
func MustNew[T constraints.Signed](p, q T) Rational[T] {
	r, err := New(p, q)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1.
func FromInt[T constraints.Signed](n T) Rational[T] {
	return Rational[T]{p: n, q: 1}
}

// Num returns the canonical numerator.
func (r Rational[T]) Num() T { return r.p }

// Den returns the canonical denominator (always > 0).
func (r Rational[T]) Den() T { return r.den() }

// den substitutes 1 for the zero value's unset denominator.
func (r Rational[T]) den() T {
	if r.q == 0 {
		return 1
	}

	return r.q
}

// Reduce re-canonicalizes r. On a value built by this package it is the
// identity; it exists so callers can assert idempotence.
func (r Rational[T]) Reduce() Rational[T] {
	return normalize(r.p, r.den())
}

// IsZero reports whether r == 0.
func (r Rational[T]) IsZero() bool { return r.p == 0 }

// Signbit reports whether r is strictly negative.
func (r Rational[T]) Signbit() bool { return (r.p < 0) != (r.den() < 0) }

// IsInteger reports whether the denominator is 1.
func (r Rational[T]) IsInteger() bool { return r.den() == 1 }

// String renders "p" when the denominator is 1 and "p/q" otherwise.
func (r Rational[T]) String() string {
	num := strconv.FormatInt(int64(r.p), 10)
	if r.den() == 1 {
		return num
	}

	return num + "/" + strconv.FormatInt(int64(r.den()), 10)
}

// Parse reads "p" or "p/q" (optional sign on either part, surrounding spaces
// ignored) into a canonical Rational. Values that do not fit T are rejected.
func Parse[T constraints.Signed](s string) (Rational[T], error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	p, err := parseInt[T](num)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("Parse(%q): %w", s, err)
	}
	if !found {
		return FromInt(p), nil
	}
	q, err := parseInt[T](den)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("Parse(%q): %w", s, err)
	}

	return New(p, q)
}

// parseInt parses a base-10 integer and checks it round-trips through T.
func parseInt[T constraints.Signed](s string) (T, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || int64(T(v)) != v {
		return 0, ErrSyntax
	}

	return T(v), nil
}

// normalize divides out the gcd and moves the sign to the numerator.
// Precondition: q != 0.
func normalize[T constraints.Signed](p, q T) Rational[T] {
	g := gcd(p, q)
	p, q = p/g, q/g
	if q < 0 {
		p, q = -p, -q
	}

	return Rational[T]{p: p, q: q}
}

// gcd returns the non-negative greatest common divisor; gcd(0, b) = |b|.
func gcd[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the non-negative least common multiple of two non-zero values.
func lcm[T constraints.Signed](a, b T) T {
	l := a / gcd(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}
