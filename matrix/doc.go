// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major storage used by the lvnum solvers.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional mutable float64 arrays
//     (Rows, Cols, At, Set, Clone) with bounds-checked accessors.
//   - Dense, a concrete implementation backed by one flat slice
//     (offset = i*cols + j) plus row-level helpers (RawRow, SwapRows) that the
//     elimination kernels in package gauss operate on directly.
//   - Validators shared by every kernel (nil, square, vector length, finite).
//   - Verification kernels (MatVec, Scale, AllClose) used to check A·x ≈ b.
//
// Errors are package-level sentinels (ErrDimensionMismatch, ErrNaNInf, ...),
// wrapped with operation context and matched with errors.Is.
//
// Complexity:
//
//	NewDense: O(r*c); At/Set/RawRow: O(1); SwapRows: O(c); Clone: O(r*c).
package matrix
