// SPDX-License-Identifier: MIT

package field

// Element is the capability set a numeric type must provide to be used as the
// element type of matrices and polynomials.
//
// E is the implementing type itself (F-bounded), so generic code can write
// `func f[E field.Element[E]](x E)` and call x.Add(y) with y of type E.
type Element[E any] interface {
	// Add returns the receiver plus o.
	Add(o E) E
	// Sub returns the receiver minus o.
	Sub(o E) E
	// Mul returns the receiver times o.
	Mul(o E) E
	// Div returns the receiver divided by o. Dividing by the additive identity
	// is implementation-defined (Inf/NaN for floats, panic for exact types).
	Div(o E) E
	// Neg returns the additive inverse.
	Neg() E
	// Abs returns the absolute value.
	Abs() E
	// Cmp returns -1, 0 or +1 as the receiver is less than, equal to or greater than o.
	Cmp(o E) int
	// Equal reports whether the receiver and o denote the same value.
	Equal(o E) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Zero returns the additive identity. Must be callable on the zero value.
	Zero() E
	// One returns the multiplicative identity. Must be callable on the zero value.
	One() E
	// FromInt64 returns n promoted into the element type.
	FromInt64(n int64) E
}

// Zero returns the additive identity of E without needing a value at hand.
func Zero[E Element[E]]() E {
	var z E

	return z.Zero()
}

// One returns the multiplicative identity of E.
func One[E Element[E]]() E {
	var z E

	return z.One()
}

// FromInt64 promotes n into E.
func FromInt64[E Element[E]](n int64) E {
	var z E

	return z.FromInt64(n)
}

// Vector returns a fresh slice of n additive identities.
func Vector[E Element[E]](n int) []E {
	z := Zero[E]()
	v := make([]E, n)
	for i := range v {
		v[i] = z
	}

	return v
}

// Ints promotes every value of ns into E, preserving order.
func Ints[E Element[E]](ns ...int64) []E {
	var z E
	v := make([]E, len(ns))
	for i, n := range ns {
		v[i] = z.FromInt64(n)
	}

	return v
}
