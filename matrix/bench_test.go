// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the Dense kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkD *matrix.Dense
)

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 1337)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i%7) - 3
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkSwapRows(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := A.SwapRows(0, n-1); err != nil {
					b.Fatal(err)
				}
			}
			sinkD = A
		})
	}
}
