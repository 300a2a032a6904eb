// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination and the solvers built on it.
//
// Purpose:
//   - One elimination kernel (reduce) shared by GaussJordan, Rank, Solve and Inverse.
//   - Exact results for exact element types; no tolerance anywhere.
//   - Singular inputs reported as ErrSingular, never as a division by zero.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/polysche/field"
)

// reduce brings m to reduced row-echelon form in place and returns, for each
// pivot row r, the column its pivot was found in.
//
// Implementation:
//   - Stage 1: sweep columns j with a row cursor r starting at 0.
//   - Stage 2: pick the pivot row k in r..M per the pivot rule.
//   - Stage 3: a zero pivot skips column j without advancing r.
//   - Stage 4: divide row k by the pivot, swap it into r, then eliminate
//     column j from every other row (above and below).
//
// Behavior highlights:
//   - Full reduced form: each pivot column ends as a unit vector.
//   - Rows with a zero factor are left untouched (exactly what subtraction of
//     0×pivotRow would produce).
//
// Complexity:
//   - Time O(M·N·min(M,N)), Space O(1) beyond m.
func reduce[E field.Element[E]](m *Dense[E], rule PivotRule) (pivots []int) {
	var (
		r, j, k, i, jj int
		kv, c          E
		cols           = m.c
	)
	pivots = make([]int, 0, min(m.r, m.c))

	for j = 0; j < cols && r < m.r; j++ {
		k = pivotRow(m, r, j, rule)
		kv = m.data[k*cols+j]
		if kv.IsZero() {
			continue // column not resolvable with rows r..M
		}

		row := m.data[k*cols : (k+1)*cols]
		for jj = 0; jj < cols; jj++ {
			row[jj] = row[jj].Div(kv)
		}
		if k != r {
			m.swapRows(k, r)
		}

		pivotRowData := m.data[r*cols : (r+1)*cols]
		for i = 0; i < m.r; i++ {
			if i == r {
				continue
			}
			c = m.data[i*cols+j]
			if c.IsZero() {
				continue
			}
			target := m.data[i*cols : (i+1)*cols]
			for jj = 0; jj < cols; jj++ {
				target[jj] = target[jj].Sub(pivotRowData[jj].Mul(c))
			}
		}

		pivots = append(pivots, j)
		r++
	}

	return pivots
}

// pivotRow returns the row index in [r, m.r) chosen as pivot for column j.
// When every candidate is zero it returns r (the caller then skips j).
func pivotRow[E field.Element[E]](m *Dense[E], r, j int, rule PivotRule) int {
	cols := m.c
	k := r
	switch rule {
	case PivotFirstNonZero:
		for i := r; i < m.r; i++ {
			if !m.data[i*cols+j].IsZero() {
				return i
			}
		}
	default:
		best := m.data[r*cols+j].Abs()
		for i := r + 1; i < m.r; i++ {
			if a := m.data[i*cols+j].Abs(); a.Cmp(best) > 0 {
				k, best = i, a
			}
		}
	}

	return k
}

// GaussJordan returns the reduced row-echelon form of m.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); copy m into private storage.
//   - Stage 2: run the elimination sweep with the configured pivot rule.
//
// Behavior highlights:
//   - Input is read-only; the result is freshly allocated.
//   - Columns without a usable pivot are skipped, so augmented and singular
//     inputs reduce without error. Use Rank to see how many pivots were found.
//
// Inputs:
//   - m: non-nil M×N matrix.
//   - opts: WithPivot.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(M·N·min(M,N)), Space O(M·N).
func GaussJordan[E field.Element[E]](m Matrix[E], opts ...Option) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGaussJordan, err)
	}
	o := gatherOptions(opts...)
	work, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opGaussJordan, err)
	}
	reduce(work, o.pivot)

	return work, nil
}

// Rank returns the number of pivots found by the elimination sweep.
//
// Errors:
//   - ErrNilMatrix.
func Rank[E field.Element[E]](m Matrix[E], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)
	work, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(reduce(work, o.pivot)), nil
}

// augment returns the n×(n+w) matrix [A | B] where B is given row-major with width w.
func augment[E field.Element[E]](a *Dense[E], b []E, w int) *Dense[E] {
	n := a.r
	out := &Dense[E]{r: n, c: n + w, data: make([]E, n*(n+w))}
	for i := 0; i < n; i++ {
		copy(out.data[i*out.c:], a.data[i*n:(i+1)*n])
		copy(out.data[i*out.c+n:], b[i*w:(i+1)*w])
	}

	return out
}

// fullRank reports whether the first n pivots sit on columns 0..n-1.
func fullRank(pivots []int, n int) bool {
	if len(pivots) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if pivots[i] != i {
			return false
		}
	}

	return true
}

// Solve returns x such that A·x = b.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(A), ValidateVecLen(b, n).
//   - Stage 2: reduce the augmented matrix [A | b].
//   - Stage 3: every column of A must carry a pivot, else ErrSingular.
//   - Stage 4: x[i] = red[i][n] / red[i][i].
//
// Behavior highlights:
//   - The explicit division by the diagonal keeps the recovery correct even
//     if a diagonal entry is not exactly one.
//   - With exact E, A·x == b holds exactly.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve[E field.Element[E]](a Matrix[E], b []E, opts ...Option) ([]E, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	aug := augment(ad, b, 1)
	if !fullRank(reduce(aug, o.pivot), n) {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	x := make([]E, n)
	for i := 0; i < n; i++ {
		x[i] = aug.data[i*aug.c+n].Div(aug.data[i*aug.c+i])
	}

	return x, nil
}

// Inverse computes A⁻¹ by reducing [A | I] and reading the right n columns.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(A).
//   - Stage 2: reduce [A | I] with the configured pivot rule.
//   - Stage 3: every column of A must carry a pivot, else ErrSingular.
//   - Stage 4: copy the right block into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[E field.Element[E]](a Matrix[E], opts ...Option) (*Dense[E], error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.Rows()
	o := gatherOptions(opts...)
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := NewIdentity[E](n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	aug := augment(ad, id.data, n)
	pivots := reduce(aug, o.pivot)
	if !fullRank(pivots, n) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", countBelow(pivots, n), n, ErrSingular))
	}

	inv := &Dense[E]{r: n, c: n, data: make([]E, n*n)}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*aug.c+n:(i+1)*aug.c])
	}

	return inv, nil
}

// countBelow counts pivots that landed in the first n columns.
func countBelow(pivots []int, n int) int {
	c := 0
	for _, p := range pivots {
		if p < n {
			c++
		}
	}

	return c
}
