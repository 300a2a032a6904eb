// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// DefaultPivot is the pivot rule used when no WithPivot option is given.
const DefaultPivot = PivotMaxAbs

const panicPivotInvalid = "matrix: WithPivot: unknown pivot rule"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivot PivotRule // DefaultPivot
}

// WithPivot selects the pivot rule used by GaussJordan, Rank, Solve and Inverse.
//
// Errors:
//   - Panics with a stable message when rule is not a known PivotRule.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivot(rule PivotRule) Option {
	if rule != PivotMaxAbs && rule != PivotFirstNonZero {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = rule }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivot: DefaultPivot,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
