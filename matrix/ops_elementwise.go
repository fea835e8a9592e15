// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise, broadcast and reduction kernels (ew*)
//     shared by Vector and Matrix so tight loops are not duplicated.
//   - Split work through internal/parallel; each chunk is handed to a gonum
//     floats routine (or a plain loop for operations gonum does not offer).
//
// Determinism & Performance:
//   - Elementwise kernels write disjoint chunks; results are bit-identical to a
//     serial loop regardless of the worker count.
//   - Reductions (ewDot, ewSum) fold per chunk and merge partials pairwise in
//     chunk order. The summation order depends on the chunking, so results are
//     only close, not bit-identical, across different kernel policies.
//
// AI-Hints:
//   - Callers validate lengths first (ValidateSameDim etc.); gonum floats
//     panics on mismatched slices and these kernels do not re-check.

package matrix

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsignal/internal/parallel"
)

// ewBinaryTo computes dst = kern(s, t) chunk by chunk.
// kern is one of floats.AddTo/SubTo/MulTo/DivTo. Time: O(n).
func ewBinaryTo(dst, s, t []float64, kern func(dst, s, t []float64) []float64) {
	parallel.For(len(dst), current(), func(lo, hi int) {
		kern(dst[lo:hi], s[lo:hi], t[lo:hi])
	})
}

// ewBinaryInPlace computes dst = kern(dst, s) chunk by chunk.
// kern is one of floats.Add/Sub/Mul/Div. Time: O(n).
func ewBinaryInPlace(dst, s []float64, kern func(dst, s []float64)) {
	parallel.For(len(dst), current(), func(lo, hi int) {
		kern(dst[lo:hi], s[lo:hi])
	})
}

// ewAddConst adds c to every element of dst in place.
func ewAddConst(dst []float64, c float64) {
	parallel.For(len(dst), current(), func(lo, hi int) {
		floats.AddConst(c, dst[lo:hi])
	})
}

// ewScale multiplies every element of dst by c in place.
func ewScale(dst []float64, c float64) {
	parallel.For(len(dst), current(), func(lo, hi int) {
		floats.Scale(c, dst[lo:hi])
	})
}

// ewMapTo computes dst[i] = f(src[i]). f must be free of side effects:
// chunks run concurrently. Time: O(n).
func ewMapTo(dst, src []float64, f func(float64) float64) {
	parallel.For(len(dst), current(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(src[i])
		}
	})
}

// ewFill sets every element of dst to x.
func ewFill(dst []float64, x float64) {
	parallel.For(len(dst), current(), func(lo, hi int) {
		chunk := dst[lo:hi]
		for i := range chunk {
			chunk[i] = x
		}
	})
}

// ewDot returns Σ s[i]*t[i] as a chunked tree reduction.
// Time: O(n). Space: O(chunks).
func ewDot(s, t []float64) float64 {
	return parallel.Reduce(len(s), current(), 0.0,
		func(lo, hi int) float64 { return floats.Dot(s[lo:hi], t[lo:hi]) },
		addFloat)
}

// ewSum returns Σ s[i] as a chunked tree reduction.
func ewSum(s []float64) float64 {
	return parallel.Reduce(len(s), current(), 0.0,
		func(lo, hi int) float64 { return floats.Sum(s[lo:hi]) },
		addFloat)
}

func addFloat(a, b float64) float64 { return a + b }
