// SPDX-License-Identifier: MIT

package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polysche/rational"
)

// TestMul_Internal checks (3/2)·(4/3) = 2 in both orders.
func TestMul_Internal(t *testing.T) {
	t.Parallel()

	a := rational.MustNew(3, 2)
	b := rational.MustNew(4, 3)
	for _, ab := range []rational.Rational[int]{a.Mul(b), b.Mul(a)} {
		assert.Equal(t, 2, ab.Num())
		assert.Equal(t, 1, ab.Den())
	}
}

// TestAdd_Internal checks 1/2 + 3/4 = 5/4 in both orders.
func TestAdd_Internal(t *testing.T) {
	t.Parallel()

	a := rational.MustNew(1, 2)
	b := rational.MustNew(3, 4)
	for _, ab := range []rational.Rational[int]{a.Add(b), b.Add(a)} {
		assert.Equal(t, 5, ab.Num())
		assert.Equal(t, 4, ab.Den())
	}
}

// TestMixedInt covers the integer-promoting operations.
func TestMixedInt(t *testing.T) {
	t.Parallel()

	a := rational.MustNew(3, 4)
	ab := a.MulInt(2)
	assert.Equal(t, rational.MustNew(3, 2), ab)
	assert.True(t, ab.MulInt(2).EqualInt(3))

	c := rational.MustNew(2, 3).AddInt(2)
	assert.Equal(t, 8, c.Num())
	assert.Equal(t, 3, c.Den())

	assert.Equal(t, rational.MustNew(-4, 3), rational.MustNew(2, 3).SubInt(2))
	assert.Equal(t, rational.MustNew(1, 3), rational.MustNew(2, 3).DivInt(2))
	assert.Equal(t, -1, rational.MustNew(1, 2).CmpInt(2))
}

// TestArithmetic_MatchesFloat samples integer pairs and checks every
// operation against float64 evaluation of the same expression. The samples
// keep values small so both sides are exact in float64.
func TestArithmetic_MatchesFloat(t *testing.T) {
	t.Parallel()

	vals := []int64{-7, -3, -2, -1, 1, 2, 3, 5, 8}
	for _, p1 := range vals {
		for _, q1 := range vals {
			for _, p2 := range vals {
				for _, q2 := range []int64{-4, 1, 2, 3} {
					a := rational.MustNew(p1, q1)
					b := rational.MustNew(p2, q2)
					fa := float64(p1) / float64(q1)
					fb := float64(p2) / float64(q2)

					assert.InDelta(t, fa+fb, a.Add(b).Float64(), 1e-12, "%v + %v", a, b)
					assert.InDelta(t, fa-fb, a.Sub(b).Float64(), 1e-12, "%v - %v", a, b)
					assert.InDelta(t, fa*fb, a.Mul(b).Float64(), 1e-12, "%v * %v", a, b)
					assert.InDelta(t, fa/fb, a.Div(b).Float64(), 1e-12, "%v / %v", a, b)
				}
			}
		}
	}
}

// TestAdd_ExactEquality checks sums whose float evaluation is exact.
func TestAdd_ExactEquality(t *testing.T) {
	t.Parallel()

	pairs := [][4]int64{{1, 2, 1, 4}, {3, 8, -5, 16}, {-1, 1, 7, 2}, {9, 32, 9, 32}}
	for _, pr := range pairs {
		sum := rational.MustNew(pr[0], pr[1]).Add(rational.MustNew(pr[2], pr[3]))
		want := float64(pr[0])/float64(pr[1]) + float64(pr[2])/float64(pr[3])
		assert.Equal(t, want, sum.Float64())
	}
}

// TestAdd_UsesLCM verifies intermediates stay over lcm(q1, q2): 1/6 + 1/10
// is 8/30 = 4/15, and the result is reduced.
func TestAdd_UsesLCM(t *testing.T) {
	t.Parallel()

	got := rational.MustNew[int8](1, 6).Add(rational.MustNew[int8](1, 10))
	assert.Equal(t, rational.MustNew[int8](4, 15), got)

	// Over the naive product 60·60 = 3600 this would overflow int8 intermediates.
	got = rational.MustNew[int8](1, 60).Sub(rational.MustNew[int8](1, 60))
	assert.True(t, got.IsZero())
}

// TestDivisionByZero verifies Div, DivInt and Inv panic with ErrDivisionByZero.
func TestDivisionByZero(t *testing.T) {
	t.Parallel()

	a := rational.MustNew[int64](1, 2)
	assert.PanicsWithValue(t, rational.ErrDivisionByZero, func() { a.Div(rational.Rat64{}) })
	assert.PanicsWithValue(t, rational.ErrDivisionByZero, func() { a.DivInt(0) })
	assert.PanicsWithValue(t, rational.ErrDivisionByZero, func() { rational.Rat64{}.Inv() })
}

// TestInv checks reciprocal sign handling.
func TestInv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rational.MustNew[int64](-3, 2), rational.MustNew[int64](-2, 3).Inv())
	assert.True(t, rational.MustNew[int64](5, 7).Mul(rational.MustNew[int64](5, 7).Inv()).EqualInt(1))
}

// TestImmutability verifies operands are left untouched.
func TestImmutability(t *testing.T) {
	t.Parallel()

	a := rational.MustNew[int64](2, 3)
	b := rational.MustNew[int64](5, 7)
	_ = a.Add(b).Mul(b).Sub(a).Div(b).Neg().Abs()
	assert.Equal(t, rational.MustNew[int64](2, 3), a)
	assert.Equal(t, rational.MustNew[int64](5, 7), b)
}
