// SPDX-License-Identifier: MIT
// Package polynomial_test contains shared fixtures for the polynomial tests.

package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysche/polynomial"
	"github.com/katalvlaran/polysche/rational"
)

type rat = rational.Rat64

// R is shorthand for an exact rational literal p/q.
func R(p, q int64) rat { return rational.MustNew(p, q) }

// I is shorthand for the integer n as a rational.
func I(n int64) rat { return rational.FromInt(n) }

// Is converts integers into a rational vector.
func Is(ns ...int64) []rat {
	out := make([]rat, len(ns))
	for i, n := range ns {
		out[i] = I(n)
	}

	return out
}

// grid builds an exact polynomial from integer rows or fails the test.
func grid(t *testing.T, rows ...[]int64) polynomial.Polynomial[rat] {
	t.Helper()

	c := make([][]rat, len(rows))
	for d, row := range rows {
		c[d] = Is(row...)
	}
	p, err := polynomial.FromCoeffs(c)
	require.NoError(t, err)

	return p
}

// canonical3 is 1 + X + X^2 split over three columns (identity grid).
func canonical3(t *testing.T) polynomial.Polynomial[rat] {
	t.Helper()

	return grid(t, []int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1})
}
