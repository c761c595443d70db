// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// rowViews returns one no-copy slice per row of a. The views are positional:
// after SwapRows(i, j) rows[i] still addresses row i and sees the new values.
func rowViews(a *matrix.Dense) [][]float64 {
	n := a.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = a.RawRow(i) // i < Rows() always holds
	}

	return rows
}

// choosePivot returns the row that should supply the pivot for column k,
// and false if no candidate exceeds the tolerance.
func choosePivot(rows [][]float64, k int, o Options) (int, bool) {
	n := len(rows)
	switch o.Pivoting {
	case NoPivot:
		return k, math.Abs(rows[k][k]) > o.Tolerance

	case Partial:
		best, bestAbs := k, math.Abs(rows[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(rows[i][k]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		return best, bestAbs > o.Tolerance

	default: // RowSwap
		if math.Abs(rows[k][k]) > o.Tolerance {
			return k, true
		}
		for i := k + 1; i < n; i++ {
			if math.Abs(rows[i][k]) > o.Tolerance {
				return i, true
			}
		}
		return k, false
	}
}

// pivotStep makes rows[k][k] a usable pivot, exchanging rows of a and
// entries of b in lockstep when the policy asks for it.
func pivotStep(op string, a *matrix.Dense, rows [][]float64, b []float64, k int, o Options) error {
	p, ok := choosePivot(rows, k, o)
	if !ok {
		return &SingularMatrixError{Op: op, Row: k, Col: k, Pivot: rows[k][k]}
	}
	if p != k {
		if err := a.SwapRows(k, p); err != nil {
			return errors.Wrapf(err, "gauss: %s", op)
		}
		b[k], b[p] = b[p], b[k]
		o.OnSwap(k, p)
	}
	o.OnPivot(k, rows[k][k])

	return nil
}
