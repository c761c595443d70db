// Package lvnum is a small, dependency-light toolkit for solving dense
// linear systems the classical way: Gaussian elimination with back
// substitution and Gauss-Jordan reduction.
//
// What is inside?
//
//	matrix/ : row-major Dense storage, validators, sentinel errors and the
//	          verification kernels (MatVec, Residual, AllClose)
//	gauss/  : Eliminate, EliminateInPlace, Jordan, JordanInPlace, Solve
//
// Why lvnum?
//
//   - Explicit ownership: every solver has a copying form and an InPlace form.
//   - One documented pivoting policy shared by both algorithms.
//   - Errors you can inspect: errors.Is for the class, errors.As for the
//     row/column that made the system singular.
//
// Quick example:
//
//	x, err := gauss.Solve([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	// x = [0.8 1.4]
//
//	go get github.com/katalvlaran/lvnum
package lvnum
