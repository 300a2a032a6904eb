// SPDX-License-Identifier: MIT
// Package scheme_test contains shared fixtures for the scheme tests.

package scheme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysche/polynomial"
	"github.com/katalvlaran/polysche/rational"
	"github.com/katalvlaran/polysche/scheme"
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

// solve builds and solves an exact system from constraints or fails the test.
func solve(t *testing.T, order int, cs ...scheme.Constraint[rat]) polynomial.Polynomial[rat] {
	t.Helper()

	b, err := scheme.NewRational(order)
	require.NoError(t, err)
	for _, c := range cs {
		b, err = b.Add(c)
		require.NoError(t, err)
	}
	S, err := b.Solve()
	require.NoError(t, err)

	return S
}

// coeffRows reads every coefficient vector of p.
func coeffRows(p polynomial.Polynomial[rat]) [][]rat { return p.Coeffs() }
