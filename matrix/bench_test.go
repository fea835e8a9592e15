// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the Vector/Matrix kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsignal/matrix"
)

// benchSizes are the vector lengths to benchmark.
var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkV *matrix.Vector
	sinkF float64
)

func benchVector(n int, seed int64) *matrix.Vector {
	return matrix.FromSlice(randomSlice(rand.New(rand.NewSource(seed)), n))
}

func BenchmarkVectorAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchVector(n, 1337), benchVector(n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkVectorDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchVector(n, 1), benchVector(n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkVectorSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := benchVector(n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v := src.Clone()
				if err := v.Sort(); err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkMatrixSum(b *testing.B) {
	b.ReportAllocs()
	for _, rows := range []int{256, 4096} {
		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			r := rand.New(rand.NewSource(5))
			data := make([][]float64, rows)
			for i := range data {
				data[i] = randomSlice(r, 16)
			}
			m, err := matrix.FromData(data)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = m.Sum()
			}
		})
	}
}
