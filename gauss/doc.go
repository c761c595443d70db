// SPDX-License-Identifier: MIT

// Package gauss solves square dense linear systems A·x = b by Gaussian
// elimination (forward elimination + back substitution) and by Gauss-Jordan
// reduction of the augmented matrix.
//
// Overview:
//
//   - Eliminate / EliminateInPlace: reduce A to upper-triangular form,
//     updating b in lockstep, then back-substitute from the last row up.
//   - Jordan / JordanInPlace: normalize each pivot row and clear its column
//     in every other row; A ends as the identity and b as x.
//   - Solve: Eliminate for coefficients held as [][]float64.
//
// Ownership:
//
//	The plain forms (Eliminate, Jordan, Solve) copy their inputs and never
//	touch caller data. The InPlace forms borrow a *matrix.Dense and b for the
//	duration of the call, leave them in the reduced state and return b itself
//	as the solution. Nothing is retained between calls; concurrent calls are
//	safe as long as they do not share InPlace inputs.
//
// Pivoting:
//
//	Both routines share one policy (Options.Pivoting):
//	  RowSwap (default)  exchange with the first usable row below only when
//	                     the diagonal pivot is zero (|p| ≤ Tolerance);
//	  NoPivot            report the first unusable pivot as singular;
//	  Partial            always take the largest |a[i][k]|, i ≥ k.
//	A pivot column with no usable candidate yields *SingularMatrixError.
//
// Error handling (sentinel errors):
//
//   - ErrSingular:          a pivot could not be made non-zero; errors.As to
//     *SingularMatrixError gives the row/column and the offending value.
//   - ErrDimensionMismatch: A not square or len(b) != n; errors.As to
//     *DimensionMismatchError gives the shapes.
//   - ErrOptionViolation:   invalid WithPivoting / WithTolerance value.
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf: nil or non-finite input.
//
// Hooks:
//
//	WithOnSwap, WithOnPivot, WithOnEliminate and WithOnSubstitute observe
//	each step of the computation (e.g. to print an iteration table); the
//	package itself never writes output.
//
// Complexity:
//
//	Time O(n³), memory O(n²) for the copying forms and O(n) for InPlace.
//
// Example:
//
//	x, err := gauss.Solve([][]float64{
//		{4, -2, 1},
//		{-2, 4, -2},
//		{1, -2, 4},
//	}, []float64{11, -16, 17})
//	// x ≈ [3 1 2]
package gauss
