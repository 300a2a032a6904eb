// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/polysche/field"
	"github.com/katalvlaran/polysche/polynomial"
)

const (
	opCentralDifference = "CentralDifference"
	opFiniteVolume      = "FiniteVolume"
)

// CentralDifference solves the point-value system on the integer nodes
// -order/2, …, order/2. Column k of the result is the weight of node k-order/2.
//
//	S, _ := scheme.CentralDifference[rational.Rat64](2)
//	S.Derivative(1).EvalInt(0) // [-1/2, 0, 1/2]
//	S.Derivative(2).EvalInt(0) // [1, -2, 1]
//
// Errors:
//   - ErrInvalidOrder, ErrOddOrder.
func CentralDifference[E field.Element[E]](order int) (polynomial.Polynomial[E], error) {
	return symmetric(opCentralDifference, order, func(i int64) Constraint[E] {
		return ValueInt[E](i)
	})
}

// FiniteVolume solves the cell-average system on the unit cells centred at
// -order/2, …, order/2, i.e. ∫ over [i-1/2, i+1/2]. Integrating the result
// over a half cell gives the prediction weights used in multiresolution:
//
//	S, _ := scheme.FiniteVolume[rational.Rat64](2)
//	S.Integrate(rational.MustNew[int64](-1, 2), rational.Rat64{}) // [1/16, 1/2, -1/16]
//
// Errors:
//   - ErrInvalidOrder, ErrOddOrder.
func FiniteVolume[E field.Element[E]](order int) (polynomial.Polynomial[E], error) {
	half := field.One[E]().Div(field.FromInt64[E](2))

	return symmetric(opFiniteVolume, order, func(i int64) Constraint[E] {
		c := field.FromInt64[E](i)

		return Integral(c.Sub(half), c.Add(half))
	})
}

// symmetric adds one constraint per node -order/2..order/2 and solves.
func symmetric[E field.Element[E]](op string, order int, at func(i int64) Constraint[E]) (polynomial.Polynomial[E], error) {
	if order%2 != 0 {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s(%d): %w", op, order, ErrOddOrder)
	}
	b, err := New[E](order)
	if err != nil {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s: %w", op, err)
	}
	h := int64(order / 2)
	for i := -h; i <= h; i++ {
		if b, err = b.Add(at(i)); err != nil {
			return polynomial.Polynomial[E]{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	p, err := b.Solve()
	if err != nil {
		return polynomial.Polynomial[E]{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
