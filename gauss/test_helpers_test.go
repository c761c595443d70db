// SPDX-License-Identifier: MIT
// Package gauss_test contains shared fixtures for the solver tests.
package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/matrix"
)

// textbook system: unique solution x = [1, -2, 3].
var (
	textbookA = [][]float64{
		{4, -2, 1},
		{-2, 4, -2},
		{1, -2, 4},
	}
	textbookB = []float64{11, -16, 17}
	textbookX = []float64{1, -2, 3}
)

const (
	tolExact = 1e-12 // small hand-checked systems
	tolRel   = 1e-9  // random well-conditioned systems
)

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// diagDominant returns a strictly diagonally dominant n×n system drawn from
// a seeded source. Such systems are non-singular and well conditioned.
func diagDominant(tb testing.TB, n int, seed int64) (*matrix.Dense, []float64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
		if rng.Intn(2) == 0 {
			rows[i][i] = float64(n) + 1 + rng.Float64()
		} else {
			rows[i][i] = -(float64(n) + 1 + rng.Float64())
		}
		b[i] = rng.Float64()*20 - 10
	}

	return mustRows(tb, rows), b
}

// referenceSolve solves a·x = b with gonum's LU-based solver.
func referenceSolve(tb testing.TB, a *matrix.Dense, b []float64) []float64 {
	tb.Helper()
	n := a.Rows()
	flat := make([]float64, 0, n*n)
	for _, row := range a.ToRows() {
		flat = append(flat, row...)
	}
	var x mat.VecDense
	require.NoError(tb, x.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, append([]float64(nil), b...))))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}

// requireSolves asserts that x satisfies a·x ≈ b relative to the size of b.
func requireSolves(tb testing.TB, a matrix.Matrix, x, b []float64) {
	tb.Helper()
	r, err := matrix.Residual(a, x, b)
	require.NoError(tb, err)
	zero := make([]float64, len(r))
	scale := 1.0
	for _, v := range b {
		if v > scale {
			scale = v
		} else if -v > scale {
			scale = -v
		}
	}
	ok, err := matrix.VecAllClose(r, zero, 0, tolRel*scale)
	require.NoError(tb, err)
	require.True(tb, ok, "residual too large: %v", r)
}
