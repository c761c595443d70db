// SPDX-License-Identifier: MIT
// Package matrix provides the verification kernels used around the solvers:
// matrix–vector product, scalar scaling, residuals and tolerance comparison.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opScale    = "Scale"
	opResidual = "Residual"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Scale returns a new Dense whose elements are alpha * m[i,j].
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//   - ErrNaNInf if alpha is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	res, err := CopyDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Residual returns r = m·x − b, the per-equation error of a candidate solution.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols or len(b) != Rows).
//
// Complexity: Time O(r*c), Space O(r).
func Residual(m Matrix, x, b []float64) ([]float64, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range y {
		y[i] -= b[i]
	}

	return y, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol*|b[i,j]| for every element.
// Negative tolerances are normalized with abs; NaN/Inf tolerances are rejected.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normTolerances(rtol, atol)
	if err != nil {
		return false, err
	}
	if err = ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is AllClose for vectors of equal length.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normTolerances(rtol, atol)
	if err != nil {
		return false, err
	}
	if err = ValidateVecLen(a, len(b)); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a {
		if !closeEnough(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

func normTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, matrixErrorf(opAllClose, ErrNaNInf)
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// closeEnough: NaN never matches; equal infinities do.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
