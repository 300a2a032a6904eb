// SPDX-License-Identifier: MIT
// Package matrix provides generic operations on any Matrix implementation:
// matrix multiplication, matrix-vector product and transpose. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - The elimination kernels (GaussJordan, Solve, Inverse) live in impl_gauss.go.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/polysche/field"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opTranspose   = "Transpose"
	opGaussJordan = "GaussJordan"
	opRank        = "Rank"
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opIdentity    = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); materialize private Dense copies.
//   - Stage 2: triple loop i→k→j accumulating a[i,k]*b[k,j] into C[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[E field.Element[E]](a, b Matrix[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense[E](ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik := ad.data[i*ad.c+k]
			if aik.IsZero() {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] = out.data[i*out.c+j].Add(aik.Mul(bd.data[k*bd.c+j]))
			}
		}
	}

	return out, nil
}

// MatVec computes y = m·x for a column vector x of length m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[E field.Element[E]](m Matrix[E], x []E) ([]E, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := field.Vector[E](md.r)
	for i := 0; i < md.r; i++ {
		for j := 0; j < md.c; j++ {
			y[i] = y[i].Add(md.data[i*md.c+j].Mul(x[j]))
		}
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[E field.Element[E]](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense[E](md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < md.r; i++ {
		for j := 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}
