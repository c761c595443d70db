// SPDX-License-Identifier: MIT

// Package gauss defines the pivoting policy, tunable options and step hooks
// shared by Gaussian elimination and Gauss-Jordan reduction.
package gauss

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Pivoting selects how a zero (or too small) pivot is handled.
//
//   - RowSwap: keep the diagonal pivot unless |pivot| ≤ Tolerance; then
//     exchange with the FIRST row below whose entry in the pivot column is
//     usable. Default for both Eliminate and Jordan.
//   - NoPivot: never exchange rows; an unusable pivot is reported as
//     singular right away (strict textbook elimination).
//   - Partial: always exchange with the row holding the largest |a[i][k]|
//     for i ≥ k (classic partial pivoting).
type Pivoting int

const (
	// RowSwap exchanges rows only when the diagonal pivot is unusable.
	RowSwap Pivoting = iota

	// NoPivot fails on the first unusable pivot.
	NoPivot

	// Partial picks the largest-magnitude candidate in the pivot column.
	Partial
)

// String returns the policy name.
func (p Pivoting) String() string {
	switch p {
	case RowSwap:
		return "RowSwap"
	case NoPivot:
		return "NoPivot"
	case Partial:
		return "Partial"
	default:
		return "Pivoting(?)"
	}
}

func (p Pivoting) valid() bool { return p >= RowSwap && p <= Partial }

// Option configures elimination via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// solver is invoked.
type Option func(*Options)

// Options holds the pivoting policy, the zero-pivot tolerance and the hooks.
type Options struct {
	// Pivoting is the row-exchange policy (default RowSwap).
	Pivoting Pivoting

	// Tolerance: a pivot p is unusable when |p| ≤ Tolerance.
	// Zero (default) means only an exact 0 is unusable.
	Tolerance float64

	// OnSwap is called after rows k and r were exchanged for pivot column k.
	OnSwap func(k, r int)

	// OnPivot is called with the pivot chosen for column k, before it is used.
	OnPivot func(k int, pivot float64)

	// OnEliminate is called after row `row` had `factor` times the pivot row
	// subtracted from it to clear column `col`.
	OnEliminate func(row, col int, factor float64)

	// OnSubstitute is called when back substitution resolves unknown k.
	// Gauss-Jordan has no back substitution and never calls it.
	OnSubstitute func(k int, x float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - RowSwap pivoting
//   - Tolerance 0 (exact-zero pivot test)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Pivoting:     RowSwap,
		Tolerance:    0,
		OnSwap:       func(int, int) {},
		OnPivot:      func(int, float64) {},
		OnEliminate:  func(int, int, float64) {},
		OnSubstitute: func(int, float64) {},
		err:          nil,
	}
}

// WithPivoting sets the row-exchange policy.
// Unknown values are an option violation.
func WithPivoting(p Pivoting) Option {
	return func(o *Options) {
		if !p.valid() {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown pivoting mode %d", int(p))
			return
		}
		o.Pivoting = p
	}
}

// WithTolerance treats pivots with |p| ≤ tol as zero.
//
//	tol ≥ 0 and finite: accepted
//	tol < 0, NaN, ±Inf: option violation
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			o.err = errors.Wrapf(ErrOptionViolation, "tolerance must be finite and non-negative (%g)", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithOnSwap registers a callback run after each row exchange.
func WithOnSwap(fn func(k, r int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnPivot registers a callback run for every accepted pivot.
func WithOnPivot(fn func(k int, pivot float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// WithOnEliminate registers a callback run after each row update.
func WithOnEliminate(fn func(row, col int, factor float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEliminate = fn
		}
	}
}

// WithOnSubstitute registers a callback run for each back-substituted unknown.
func WithOnSubstitute(fn func(k int, x float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSubstitute = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the last
// recorded violation, if any.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
