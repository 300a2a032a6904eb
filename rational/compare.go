// SPDX-License-Identifier: MIT

package rational

// Equal reports whether r and o denote the same number, by cross-multiplying
// p1·q2 == p2·q1. Both operands are assumed canonical.
func (r Rational[T]) Equal(o Rational[T]) bool {
	return r.p*o.den() == o.p*r.den()
}

// EqualInt reports whether r == n.
func (r Rational[T]) EqualInt(n T) bool { return r.Equal(FromInt(n)) }

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than o.
//
// The cross products p1·q2 and p2·q1 are compared; when exactly one
// denominator is negative the direction flips. Canonical values always have
// positive denominators, so the flip never fires on values of this package.
func (r Rational[T]) Cmp(o Rational[T]) int {
	q1, q2 := r.den(), o.den()
	a, b := r.p*q2, q1*o.p
	if (q1 < 0) != (q2 < 0) {
		a, b = b, a
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CmpInt compares r with n.
func (r Rational[T]) CmpInt(n T) int { return r.Cmp(FromInt(n)) }

// Less reports r < o.
func (r Rational[T]) Less(o Rational[T]) bool { return r.Cmp(o) < 0 }

// Greater reports r > o.
func (r Rational[T]) Greater(o Rational[T]) bool { return r.Cmp(o) > 0 }
