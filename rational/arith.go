// SPDX-License-Identifier: MIT

package rational

// Arithmetic on canonical operands. Each method returns a freshly normalized
// value and leaves both operands untouched. Overflow of T is not detected.

// Mul returns r·o = (p1·p2)/(q1·q2), reduced.
func (r Rational[T]) Mul(o Rational[T]) Rational[T] {
	return normalize(r.p*o.p, r.den()*o.den())
}

// Div returns r/o = (p1·q2)/(q1·p2), reduced.
// It panics with ErrDivisionByZero when o is zero.
func (r Rational[T]) Div(o Rational[T]) Rational[T] {
	if o.p == 0 {
		panic(ErrDivisionByZero)
	}

	return normalize(r.p*o.den(), r.den()*o.p)
}

// Add returns r+o computed over lcm(q1, q2).
func (r Rational[T]) Add(o Rational[T]) Rational[T] {
	q1, q2 := r.den(), o.den()
	l := lcm(q1, q2)

	return normalize(r.p*(l/q1)+o.p*(l/q2), l)
}

// Sub returns r-o computed over lcm(q1, q2).
func (r Rational[T]) Sub(o Rational[T]) Rational[T] {
	q1, q2 := r.den(), o.den()
	l := lcm(q1, q2)

	return normalize(r.p*(l/q1)-o.p*(l/q2), l)
}

// Neg returns -r.
func (r Rational[T]) Neg() Rational[T] { return Rational[T]{p: -r.p, q: r.den()} }

// Abs returns |r|.
func (r Rational[T]) Abs() Rational[T] {
	if r.p < 0 {
		return r.Neg()
	}

	return Rational[T]{p: r.p, q: r.den()}
}

// Inv returns 1/r. It panics with ErrDivisionByZero when r is zero.
func (r Rational[T]) Inv() Rational[T] {
	if r.p == 0 {
		panic(ErrDivisionByZero)
	}

	return normalize(r.den(), r.p)
}

// Mixed rational/integer operations. The integer is promoted to n/1.

func (r Rational[T]) AddInt(n T) Rational[T] { return r.Add(FromInt(n)) }
func (r Rational[T]) SubInt(n T) Rational[T] { return r.Sub(FromInt(n)) }
func (r Rational[T]) MulInt(n T) Rational[T] { return r.Mul(FromInt(n)) }

// DivInt panics with ErrDivisionByZero when n is zero.
func (r Rational[T]) DivInt(n T) Rational[T] { return r.Div(FromInt(n)) }
