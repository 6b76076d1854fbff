// Package matrix_test provides benchmarks for the multiplication kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rowmat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkR []float64
)

func benchMul(b *testing.B, mul func(a, b *matrix.Dense[float64]) (*matrix.Dense[float64], error)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustZeros[float64](b, n, n)
			B := mustZeros[float64](b, n, n)
			fillRandFloat(b, A, 1337)
			fillRandFloat(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulNaive(b *testing.B) {
	benchMul(b, matrix.MulNaive[float64])
}

func BenchmarkMulParallel(b *testing.B) {
	benchMul(b, func(x, y *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
		return matrix.MulParallel(x, y)
	})
}

func BenchmarkMulParallel_SingleWorker(b *testing.B) {
	benchMul(b, func(x, y *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
		return matrix.MulParallel(x, y, matrix.WithWorkers(1))
	})
}

// BenchmarkMul_Ones mirrors the classic 1000×1000 all-ones workload at a CI-friendly size.
func BenchmarkMul_Ones(b *testing.B) {
	const n = 300
	A, err := matrix.NewOnes[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM, _ = matrix.Mul(A, A)
	}
}

func BenchmarkRowView_Walk(b *testing.B) {
	A := mustZeros[float64](b, 512, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rows := A.RowView()
		for row, ok := rows.Next(); ok; row, ok = rows.Next() {
			sinkR = row
		}
	}
}
