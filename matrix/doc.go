// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense matrix and exact Gauss-Jordan
// linear algebra over any field.Element.
//
// 🚀 What is inside?
//
//	Dense[E] is a row-major r×c buffer of field elements with bounds-checked
//	accessors. On top of it the package offers:
//	  • GaussJordan — full reduced row-echelon form with partial pivoting
//	  • Rank        — number of pivot columns found by the sweep
//	  • Solve       — A·x = b via the augmented matrix [A | b]
//	  • Inverse     — A⁻¹ via the augmented matrix [A | I]
//	  • LU, Det     — Doolittle factors and the determinant
//	  • Mul, MatVec, Transpose — small kernels used to verify results
//
// ✨ Key properties:
//   - Exact when E is exact: with rational.Rational or field.BigRat every
//     result is the true rational answer, no tolerance involved.
//   - Pure: inputs are never mutated; every kernel returns fresh storage.
//   - Explicit failure: a column of A that receives no pivot surfaces as
//     ErrSingular instead of a silent division by zero.
//   - Configurable pivot rule via functional options (WithPivot).
//
// ⚙️ Usage:
//
//	A, _ := matrix.FromRows([][]rational.Rat64{...})
//	inv, err := matrix.Inverse[rational.Rat64](A)
//	if errors.Is(err, matrix.ErrSingular) {
//	    // constraints are linearly dependent
//	}
//
// Errors:
//
//	All failures are package sentinels (errors.go) wrapped with an operation
//	tag ("Inverse: matrix: singular system"); match them with errors.Is.
//
// Complexity:
//
//	GaussJordan on an M×N matrix is O(M·N·min(M,N)) field operations.
package matrix
