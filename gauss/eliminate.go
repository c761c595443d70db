// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// Operation names used in error messages.
const (
	opEliminate        = "Eliminate"
	opEliminateInPlace = "EliminateInPlace"
	opSolve            = "Solve"
	opJordan           = "Jordan"
	opJordanInPlace    = "JordanInPlace"
)

// Eliminate solves A·x = b by Gaussian elimination with back substitution.
//
// Description:
//
//	Eliminate works on private copies of a and b; the caller's values are
//	never modified and the returned x is a fresh slice owned by the caller.
//	Use EliminateInPlace to avoid the O(n²) copy when the inputs may be
//	destroyed.
//
// Algorithm Outline:
//  1. Forward elimination, k = 0..n-2:
//     choose the pivot row for column k (see Pivoting), then for every
//     row i > k with a[i][k] ≠ 0:
//     λ = a[i][k] / a[k][k]
//     a[i][k+1..n-1] -= λ·a[k][k+1..n-1];  a[i][k] = 0
//     b[i] -= λ·b[k]
//  2. Back substitution, k = n-1..0:
//     x[k] = (b[k] − Σ_{j>k} a[k][j]·x[j]) / a[k][k]
//
// Complexity:
//
//	Time   = O(n³) elimination + O(n²) substitution
//	Memory = O(n²) for the working copy
//
// Errors:
//   - matrix.ErrNilMatrix      if a is nil.
//   - *DimensionMismatchError  (ErrDimensionMismatch) if a is not square or len(b) != n.
//   - matrix.ErrNaNInf         if a or b holds NaN/±Inf.
//   - *SingularMatrixError     (ErrSingular) if a pivot is unusable under the policy.
//   - ErrOptionViolation       for invalid options.
func Eliminate(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "gauss: %s", opEliminate)
	}
	if err = validateSystem(opEliminate, a, b); err != nil {
		return nil, err
	}

	work, err := matrix.CopyDense(a)
	if err != nil {
		return nil, errors.Wrapf(err, "gauss: %s", opEliminate)
	}
	x := make([]float64, len(b))
	copy(x, b)

	if err = eliminate(opEliminate, work, x, o); err != nil {
		return nil, err
	}

	return x, nil
}

// EliminateInPlace is Eliminate without the defensive copies.
//
// Ownership:
//
//	The call borrows a and b exclusively. On success a holds the
//	upper-triangular factor (zeros below the diagonal) and b holds x; the
//	returned slice IS b. On error both may be partially reduced and must be
//	treated as garbage. Rows of a and entries of b are exchanged together
//	when the pivoting policy swaps rows.
func EliminateInPlace(a *matrix.Dense, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "gauss: %s", opEliminateInPlace)
	}
	if err = validateSystem(opEliminateInPlace, a, b); err != nil {
		return nil, err
	}
	if err = eliminate(opEliminateInPlace, a, b, o); err != nil {
		return nil, err
	}

	return b, nil
}

// Solve is a convenience wrapper for coefficient matrices held as [][]float64.
// rows and b are copied; neither is modified.
//
// Errors: as Eliminate, plus matrix.ErrRaggedRows / matrix.ErrInvalidDimensions
// from building the matrix.
func Solve(rows [][]float64, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "gauss: %s", opSolve)
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "gauss: %s", opSolve)
	}
	if err = validateSystem(opSolve, a, b); err != nil {
		return nil, err
	}
	x := make([]float64, len(b))
	copy(x, b)
	if err = eliminate(opSolve, a, x, o); err != nil {
		return nil, err
	}

	return x, nil
}

// validateSystem checks nil → shape → finite, in that order.
func validateSystem(op string, a matrix.Matrix, b []float64) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return errors.Wrapf(err, "gauss: %s", op)
	}
	rows, cols := a.Rows(), a.Cols()
	if rows != cols || len(b) != rows {
		return &DimensionMismatchError{Op: op, Rows: rows, Cols: cols, VecLen: len(b)}
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return errors.Wrapf(err, "gauss: %s", op)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return errors.Wrapf(err, "gauss: %s", op)
	}

	return nil
}

// eliminate runs both phases on a validated n×n system; b is overwritten with x.
func eliminate(op string, a *matrix.Dense, b []float64, o Options) error {
	n := a.Rows()
	rows := rowViews(a)

	var (
		i, j, k int
		lam     float64
		pk, ri  []float64
	)

	// Phase 1: forward elimination.
	for k = 0; k < n-1; k++ {
		if err := pivotStep(op, a, rows, b, k, o); err != nil {
			return err
		}
		pk = rows[k]
		for i = k + 1; i < n; i++ {
			ri = rows[i]
			if ri[k] == 0 {
				continue
			}
			lam = ri[k] / pk[k]
			for j = k + 1; j < n; j++ {
				ri[j] -= lam * pk[j]
			}
			ri[k] = 0
			b[i] -= lam * b[k]
			o.OnEliminate(i, k, lam)
		}
	}

	// Phase 2: back substitution. The last pivot is only checked here.
	var sum float64
	for k = n - 1; k >= 0; k-- {
		pk = rows[k]
		if math.Abs(pk[k]) <= o.Tolerance {
			return &SingularMatrixError{Op: op, Row: k, Col: k, Pivot: pk[k]}
		}
		sum = b[k]
		for j = k + 1; j < n; j++ {
			sum -= pk[j] * b[j]
		}
		b[k] = sum / pk[k]
		o.OnSubstitute(k, b[k])
	}

	return nil
}
