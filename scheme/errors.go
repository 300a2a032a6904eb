// SPDX-License-Identifier: MIT
// Package scheme: sentinel error set.
// Builders return these wrapped with the operation name; callers match them
// with errors.Is. A singular constraint set surfaces matrix.ErrSingular.

package scheme

import "errors"

var (
	// ErrInvalidOrder is returned when the requested order is negative.
	ErrInvalidOrder = errors.New("scheme: order must be >= 0")

	// ErrRowLength is returned when a constraint row does not have Order+1 entries.
	ErrRowLength = errors.New("scheme: row length must be order+1")

	// ErrTooManyEquations is returned by AddEqn on a builder that already
	// holds Order+1 rows.
	ErrTooManyEquations = errors.New("scheme: system already complete")

	// ErrIncomplete is returned by Solve before Order+1 rows were supplied.
	ErrIncomplete = errors.New("scheme: fewer than order+1 equations")

	// ErrOddOrder is returned by the symmetric presets for an odd order.
	ErrOddOrder = errors.New("scheme: symmetric presets require an even order")
)
