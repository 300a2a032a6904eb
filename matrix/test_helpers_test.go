// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense and elimination kernels.
//   • Keep exact fixtures in rational.Rat64 so results compare without tolerance.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysche/matrix"
	"github.com/katalvlaran/polysche/rational"
)

// R is shorthand for an exact int64 rational literal p/q.
func R(p, q int64) rational.Rat64 { return rational.MustNew(p, q) }

// I is shorthand for an exact int64 integer n/1.
func I(n int64) rational.Rat64 { return rational.FromInt(n) }

// ratRows converts an integer grid into rationals.
func ratRows(rows [][]int64) [][]rational.Rat64 {
	out := make([][]rational.Rat64, len(rows))
	for i, row := range rows {
		out[i] = make([]rational.Rat64, len(row))
		for j, v := range row {
			out[i][j] = I(v)
		}
	}

	return out
}

// mustRat builds an exact Dense from integers or fails the test.
func mustRat(t *testing.T, rows [][]int64) *matrix.Dense[rational.Rat64] {
	t.Helper()

	m, err := matrix.FromRows(ratRows(rows))
	require.NoError(t, err)

	return m
}

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the At-driven copy path.
type hide struct {
	matrix.Matrix[rational.Rat64]
}
