// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysche/field"
	"github.com/katalvlaran/polysche/matrix"
	"github.com/katalvlaran/polysche/rational"
)

// TestNewDense_Shape covers valid and invalid dimensions and the explicit zero fill.
func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense[rational.Rat64](2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, I(0), v, "cells hold the field zero 0/1")

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense[field.Float](dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%v", dims)
	}
}

// TestDense_AtSetBounds verifies accessors never panic out of range.
func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewZeros[rational.Rat64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, R(3, 4)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, R(3, 4), v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, I(1)), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFromRows_Copies checks the input grid is copied, not aliased.
func TestFromRows_Copies(t *testing.T) {
	t.Parallel()

	rows := ratRows([][]int64{{1, 2}, {3, 4}})
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = I(99)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, I(1), v)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = I(42)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, I(3), v, "Row must return a copy")

	_, err = matrix.FromRows[rational.Rat64](nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_CloneEqual checks Clone independence and value-based Equal.
func TestDense_CloneEqual(t *testing.T) {
	t.Parallel()

	m := mustRat(t, [][]int64{{1, 2}, {3, 4}})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, I(7)))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, I(1), v)

	other := mustRat(t, [][]int64{{1, 2}, {3, 4}})
	assert.True(t, m.Equal(other))
	assert.False(t, m.Equal(mustRat(t, [][]int64{{1, 2, 0}, {3, 4, 0}})))
	assert.False(t, m.Equal(nil))
}

// TestDense_String renders rationals through their Stringer.
func TestDense_String(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]rational.Rat64{{R(1, 2), I(-3)}, {I(0), R(5, 4)}})
	require.NoError(t, err)
	assert.Equal(t, "[1/2, -3]\n[0, 5/4]\n", m.String())
}

// TestTranspose_Mul checks (AB)ᵀ = BᵀAᵀ on small exact matrices.
func TestTranspose_Mul(t *testing.T) {
	t.Parallel()

	A := mustRat(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	B := mustRat(t, [][]int64{{1, 0}, {-1, 2}, {3, 1}})

	AB, err := matrix.Mul[rational.Rat64](A, B)
	require.NoError(t, err)
	ABt, err := matrix.Transpose[rational.Rat64](AB)
	require.NoError(t, err)

	At, err := matrix.Transpose[rational.Rat64](A)
	require.NoError(t, err)
	Bt, err := matrix.Transpose[rational.Rat64](B)
	require.NoError(t, err)
	BtAt, err := matrix.Mul[rational.Rat64](Bt, At)
	require.NoError(t, err)
	assert.True(t, ABt.Equal(BtAt))

	_, err = matrix.Mul[rational.Rat64](A, A)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIdentityLike requires a square input.
func TestIdentityLike(t *testing.T) {
	t.Parallel()

	id, err := matrix.IdentityLike[rational.Rat64](mustRat(t, vandermonde3))
	require.NoError(t, err)
	one, err := id.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, I(1), one)

	_, err = matrix.IdentityLike[rational.Rat64](mustRat(t, [][]int64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
