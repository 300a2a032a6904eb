// SPDX-License-Identifier: MIT

package field

import "math/big"

// BigRat is an arbitrary-precision exact fraction backed by *big.Rat.
// Unlike rational.Rational it cannot overflow, at the cost of heap allocations.
//
// The wrapped *big.Rat is never mutated after construction; every operation
// allocates its result. The zero value (nil pointer) reads as 0.
type BigRat struct {
	r *big.Rat
}

// Compile-time assertion: BigRat implements Element.
var _ Element[BigRat] = BigRat{}

// NewBigRat returns a/b in lowest terms. A zero b yields ErrZeroDenominator.
func NewBigRat(a, b int64) (BigRat, error) {
	if b == 0 {
		return BigRat{}, ErrZeroDenominator
	}

	return BigRat{r: big.NewRat(a, b)}, nil
}

// BigRatOf copies x into a BigRat. A nil x reads as 0.
func BigRatOf(x *big.Rat) BigRat {
	if x == nil {
		return BigRat{}
	}

	return BigRat{r: new(big.Rat).Set(x)}
}

// val returns the wrapped value, substituting 0 for the zero value.
func (b BigRat) val() *big.Rat {
	if b.r == nil {
		return new(big.Rat)
	}

	return b.r
}

func (b BigRat) Add(o BigRat) BigRat { return BigRat{r: new(big.Rat).Add(b.val(), o.val())} }
func (b BigRat) Sub(o BigRat) BigRat { return BigRat{r: new(big.Rat).Sub(b.val(), o.val())} }
func (b BigRat) Mul(o BigRat) BigRat { return BigRat{r: new(big.Rat).Mul(b.val(), o.val())} }

// Div panics with ErrDivisionByZero when o is zero.
func (b BigRat) Div(o BigRat) BigRat {
	if o.IsZero() {
		panic(ErrDivisionByZero)
	}

	return BigRat{r: new(big.Rat).Quo(b.val(), o.val())}
}

func (b BigRat) Neg() BigRat { return BigRat{r: new(big.Rat).Neg(b.val())} }
func (b BigRat) Abs() BigRat { return BigRat{r: new(big.Rat).Abs(b.val())} }

func (b BigRat) Cmp(o BigRat) int    { return b.val().Cmp(o.val()) }
func (b BigRat) Equal(o BigRat) bool { return b.Cmp(o) == 0 }
func (b BigRat) IsZero() bool        { return b.r == nil || b.r.Sign() == 0 }

func (BigRat) Zero() BigRat             { return BigRat{} }
func (BigRat) One() BigRat              { return BigRat{r: big.NewRat(1, 1)} }
func (BigRat) FromInt64(n int64) BigRat { return BigRat{r: new(big.Rat).SetInt64(n)} }

// Rat returns a copy of the underlying value.
func (b BigRat) Rat() *big.Rat { return new(big.Rat).Set(b.val()) }

// Float64 returns the nearest float64 to b.
func (b BigRat) Float64() float64 {
	f, _ := b.val().Float64()

	return f
}

// String renders "p" for integers and "p/q" otherwise.
func (b BigRat) String() string { return b.val().RatString() }
