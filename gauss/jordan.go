// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// Jordan solves A·x = b by Gauss-Jordan reduction of the augmented matrix [A | b].
// It works on private copies and returns x together with the reduced
// coefficient block, which is the identity for a non-singular input.
//
// Algorithm Outline:
//
//	For i = 0..n-1:
//	  1. choose the pivot row for column i (same Pivoting policy as Eliminate);
//	  2. divide row i (columns i..n-1) and b[i] by the pivot;
//	  3. for every row j ≠ i: f = a[j][i];
//	     a[j][i..n-1] -= f·a[i][i..n-1];  b[j] -= f·b[i].
//
// No back substitution is needed: after the last column b holds x.
//
// Complexity:
//
//	Time   = O(n³) (about 1.5× the work of Eliminate)
//	Memory = O(n²) for the working copy
//
// Errors: same set as Eliminate.
func Jordan(a matrix.Matrix, b []float64, opts ...Option) ([]float64, *matrix.Dense, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "gauss: %s", opJordan)
	}
	if err = validateSystem(opJordan, a, b); err != nil {
		return nil, nil, err
	}

	work, err := matrix.CopyDense(a)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "gauss: %s", opJordan)
	}
	x := make([]float64, len(b))
	copy(x, b)

	if err = jordan(opJordan, work, x, o); err != nil {
		return nil, nil, err
	}

	return x, work, nil
}

// JordanInPlace reduces a to reduced row-echelon form and overwrites b with x.
// The returned slice IS b. On error a and b are partially reduced.
func JordanInPlace(a *matrix.Dense, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "gauss: %s", opJordanInPlace)
	}
	if err = validateSystem(opJordanInPlace, a, b); err != nil {
		return nil, err
	}
	if err = jordan(opJordanInPlace, a, b, o); err != nil {
		return nil, err
	}

	return b, nil
}

// jordan runs the reduction on a validated n×n system.
// x/x == 1 and f - f*1 == 0 hold exactly in IEEE-754, so the reduced block
// comes out as an exact identity.
func jordan(op string, a *matrix.Dense, b []float64, o Options) error {
	n := a.Rows()
	rows := rowViews(a)

	var (
		i, j, k int
		p, f    float64
		pi, rj  []float64
	)
	for i = 0; i < n; i++ {
		if err := pivotStep(op, a, rows, b, i, o); err != nil {
			return err
		}

		// Normalize the pivot row.
		pi = rows[i]
		p = pi[i]
		for k = i; k < n; k++ {
			pi[k] /= p
		}
		b[i] /= p

		// Clear column i everywhere else.
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			rj = rows[j]
			f = rj[i]
			if f == 0 {
				continue
			}
			for k = i; k < n; k++ {
				rj[k] -= f * pi[k]
			}
			b[j] -= f * b[i]
			o.OnEliminate(j, i, f)
		}
	}

	return nil
}
