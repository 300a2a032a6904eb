// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels, wrapped with an operation tag via
// matrixErrorf, and tests match them with errors.Is. Panics are reserved for
// programmer errors (invalid options).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when input rows have differing lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or len(b) != A.Rows in Solve.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by Solve and Inverse when some column of A
	// receives no pivot: the system is singular or under-determined.
	ErrSingular = errors.New("matrix: singular system")
)
