// SPDX-License-Identifier: MIT

// Package matrix - exact LU decomposition and determinant.
//
// Purpose:
//   - Doolittle factorization A = L·U without pivoting, for callers that need
//     the factors themselves (exact arithmetic makes the lack of pivoting safe
//     whenever every leading minor is non-zero).
//   - Det via the shared elimination sweep, which pivots and so works on
//     every square input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/polysche/field"
)

const (
	opLU  = "LU"
	opDet = "Det"
)

// LU performs Doolittle decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: for each i, fill row i of U then column i of L:
//     U[i][j] = A[i][j] - Σ L[i][k]·U[k][j],
//     L[j][i] = (A[j][i] - Σ L[j][k]·U[k][i]) / U[i][i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when a leading minor vanishes (U[i][i] == 0 with rows left
//     below it); the factorization needs a row exchange that LU does not do.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU[E field.Element[E]](m Matrix[E]) (L, U *Dense[E], err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	if L, err = NewIdentity[E](n); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if U, err = NewDense[E](n, n); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		i, j, k int
		sum     E
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = field.Zero[E]()
			for k = 0; k < i; k++ {
				sum = sum.Add(L.data[i*n+k].Mul(U.data[k*n+j]))
			}
			U.data[i*n+j] = a.data[i*n+j].Sub(sum)
		}
		uDiag := U.data[i*n+i]
		if uDiag.IsZero() && i < n-1 {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			sum = field.Zero[E]()
			for k = 0; k < i; k++ {
				sum = sum.Add(L.data[j*n+k].Mul(U.data[k*n+i]))
			}
			L.data[j*n+i] = a.data[j*n+i].Sub(sum).Div(uDiag)
		}
	}

	return L, U, nil
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Forward elimination with the configured pivot rule, multiplying the
//     pivots and flipping the sign on every row exchange.
//
// Behavior highlights:
//   - A singular input yields the field zero, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det[E field.Element[E]](m Matrix[E], opts ...Option) (E, error) {
	det := field.One[E]()
	if err := ValidateSquareNonNil(m); err != nil {
		return det.Zero(), matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return det.Zero(), matrixErrorf(opDet, err)
	}

	n := a.r
	for j := 0; j < n; j++ {
		k := pivotRow(a, j, j, o.pivot)
		pv := a.data[k*n+j]
		if pv.IsZero() {
			return det.Zero(), nil
		}
		if k != j {
			a.swapRows(k, j)
			det = det.Neg()
		}
		det = det.Mul(pv)
		for i := j + 1; i < n; i++ {
			f := a.data[i*n+j]
			if f.IsZero() {
				continue
			}
			f = f.Div(pv)
			for jj := j; jj < n; jj++ {
				a.data[i*n+jj] = a.data[i*n+jj].Sub(a.data[j*n+jj].Mul(f))
			}
		}
	}

	return det, nil
}
