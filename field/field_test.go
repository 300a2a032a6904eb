// SPDX-License-Identifier: MIT

package field_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysche/field"
)

// axioms checks a handful of field identities on three sample values.
func axioms[E field.Element[E]](t *testing.T, a, b, c E) {
	t.Helper()

	zero, one := field.Zero[E](), field.One[E]()
	assert.True(t, a.Add(zero).Equal(a), "a+0 == a")
	assert.True(t, a.Mul(one).Equal(a), "a*1 == a")
	assert.True(t, a.Sub(a).IsZero(), "a-a == 0")
	assert.True(t, a.Add(a.Neg()).IsZero(), "a+(-a) == 0")
	assert.True(t, a.Add(b).Equal(b.Add(a)), "commutative add")
	assert.True(t, a.Mul(b).Equal(b.Mul(a)), "commutative mul")
	assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "distributive")
	assert.True(t, a.Mul(b).Div(b).Equal(a), "(a*b)/b == a")
	assert.Equal(t, 0, a.Abs().Cmp(a.Neg().Abs()), "|a| == |-a|")
	assert.True(t, field.FromInt64[E](3).Equal(one.Add(one).Add(one)), "3 == 1+1+1")
}

// TestFloat_Axioms uses dyadic values so float64 arithmetic stays exact.
func TestFloat_Axioms(t *testing.T) {
	t.Parallel()

	axioms(t, field.Float(0.5), field.Float(-2), field.Float(0.25))
}

// TestBigRat_Axioms uses fractions that are not representable in binary.
func TestBigRat_Axioms(t *testing.T) {
	t.Parallel()

	a, err := field.NewBigRat(1, 3)
	require.NoError(t, err)
	b, err := field.NewBigRat(-2, 7)
	require.NoError(t, err)
	c, err := field.NewBigRat(5, 11)
	require.NoError(t, err)
	axioms(t, a, b, c)
}

// TestFloat_Cmp covers ordering including NaN.
func TestFloat_Cmp(t *testing.T) {
	t.Parallel()

	nan := field.Float(math.NaN())
	assert.Equal(t, -1, field.Float(1).Cmp(2))
	assert.Equal(t, 1, field.Float(2).Cmp(1))
	assert.Equal(t, 0, field.Float(2).Cmp(2))
	assert.Equal(t, -1, nan.Cmp(0))
	assert.Equal(t, 1, field.Float(0).Cmp(nan))
	assert.Equal(t, "0.125", field.Float(0.125).String())
	assert.True(t, math.IsInf(field.Float(1).Div(0).Float64(), 1))
}

// TestBigRat_ZeroValue checks the nil-backed zero value.
func TestBigRat_ZeroValue(t *testing.T) {
	t.Parallel()

	var z field.BigRat
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Add(z.One()).Equal(z.One()))
	assert.Equal(t, 0.0, z.Float64())
}

// TestBigRat_Errors covers zero denominators and division by zero.
func TestBigRat_Errors(t *testing.T) {
	t.Parallel()

	_, err := field.NewBigRat(1, 0)
	assert.ErrorIs(t, err, field.ErrZeroDenominator)

	one := field.BigRat{}.One()
	assert.PanicsWithValue(t, field.ErrDivisionByZero, func() { one.Div(field.BigRat{}) })
}

// TestBigRat_Isolation verifies BigRatOf and Rat copy their values.
func TestBigRat_Isolation(t *testing.T) {
	t.Parallel()

	src := big.NewRat(3, 4)
	b := field.BigRatOf(src)
	src.SetInt64(9)
	assert.Equal(t, "3/4", b.String())

	out := b.Rat()
	out.SetInt64(1)
	assert.Equal(t, "3/4", b.String())
	assert.Equal(t, 0.75, b.Float64())
}

// TestHelpers covers Vector and Ints.
func TestHelpers(t *testing.T) {
	t.Parallel()

	v := field.Vector[field.Float](3)
	assert.Equal(t, []field.Float{0, 0, 0}, v)

	ints := field.Ints[field.Float](1, -2, 3)
	assert.Equal(t, []field.Float{1, -2, 3}, ints)
}
