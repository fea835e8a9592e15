// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row statistics over a Matrix: Sum, Mean, Variance (column-wise), and the
//     row transforms CenterRows / NormalizeRowsL2.
//
// Exposed API:
//   - (*Matrix).Sum()             -> Vector of column sums          (parallel tree fold)
//   - (*Matrix).Mean()            -> Vector of column means         (Sum / rows)
//   - (*Matrix).Variance()        -> Vector of sample variances     (two-pass, r-1 denominator)
//   - (*Matrix).CenterRows()      -> (Xc, means)                    (subtract per-row mean)
//   - (*Matrix).NormalizeRowsL2() -> (Y, norms)                     (degenerate rows unchanged)
//
// Determinism & Performance:
//   - Sum folds a partial Vector per chunk of rows and merges the partials
//     pairwise in chunk order. No lock and no shared accumulator.
//   - Zero-row matrices: Sum returns a zero Vector of Cols(); Mean/Variance
//     return ErrEmpty.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsignal/internal/parallel"
)

// Operation name constants for unified error wrapping.
const (
	opMean            = "Matrix.Mean"
	opVariance        = "Matrix.Variance"
	opCenterRows      = "Matrix.CenterRows"
	opNormalizeRowsL2 = "Matrix.NormalizeRowsL2"

	minSampleRows = 2 // sample variance needs at least two observations
)

// Sum returns the row-wise sum: out[j] = Σ_i m[i,j].
// Implementation:
//   - Stage 1: split rows into chunks via the kernel policy.
//   - Stage 2: each chunk accumulates its rows into a private partial.
//   - Stage 3: partials are merged pairwise (tree reduction).
//
// Behavior highlights:
//   - Correct for any worker count; only floating-point summation order varies.
//
// Complexity:
//   - Time O(r*c), Space O(chunks*c).
func (m *Matrix) Sum() *Vector {
	cols := m.cols
	sum := parallel.Reduce(len(m.rows), rowConfig(cols), make([]float64, cols),
		func(lo, hi int) []float64 {
			partial := make([]float64, cols)
			for i := lo; i < hi; i++ {
				floats.Add(partial, m.rows[i].data)
			}
			return partial
		},
		func(a, b []float64) []float64 {
			floats.Add(a, b)
			return a
		})

	return &Vector{data: sum}
}

// Mean returns Sum() / Dim().
// Errors: ErrEmpty for a 0-row matrix.
func (m *Matrix) Mean() (*Vector, error) {
	if len(m.rows) == 0 {
		return nil, matrixErrorf(opMean, ErrEmpty)
	}
	sum := m.Sum()
	sum.DivScalarInPlace(float64(len(m.rows)))

	return sum, nil
}

// Variance returns the column-wise sample variance Σ_i (m[i,j]-mean_j)² / (r-1).
// Implementation:
//   - Stage 1: validate r >= 2; compute column means with Mean.
//   - Stage 2: center rows against the means (row-broadcast) and fold squares.
//
// Errors: ErrEmpty when fewer than two rows are present.
// Complexity: Time O(r*c), Space O(r*c) for the centered copy.
func (m *Matrix) Variance() (*Vector, error) {
	if len(m.rows) < minSampleRows {
		return nil, matrixErrorf(opVariance, ErrEmpty)
	}
	means, err := m.Mean()
	if err != nil {
		return nil, matrixErrorf(opVariance, err)
	}
	centered, err := m.SubVector(means)
	if err != nil {
		return nil, matrixErrorf(opVariance, err)
	}
	forRows(centered, func(i int) {
		row := centered.rows[i].data
		floats.Mul(row, row)
	})
	out := centered.Sum()
	out.DivScalarInPlace(float64(len(m.rows) - 1))

	return out, nil
}

// CenterRows subtracts the per-row mean from every entry.
// Returns the centered copy and the row means (len = Dim()).
// Zero-width matrices are a no-op: rows stay empty and means are zero.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) CenterRows() (*Matrix, *Vector, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	out := m.Clone()
	means := make([]float64, len(m.rows))
	if m.cols == 0 {
		return out, &Vector{data: means}, nil
	}
	invC := 1.0 / float64(m.cols)
	forRows(out, func(i int) {
		row := out.rows[i].data
		means[i] = floats.Sum(row) * invC
		floats.AddConst(-means[i], row)
	})

	return out, &Vector{data: means}, nil
}

// NormalizeRowsL2 scales each row to unit Euclidean norm.
// Rows with norm 0 are left unchanged (stable policy).
// Returns the normalized copy and the original row norms.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) NormalizeRowsL2() (*Matrix, *Vector, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	out := m.Clone()
	norms := make([]float64, len(m.rows))
	forRows(out, func(i int) {
		row := out.rows[i].data
		norms[i] = math.Sqrt(floats.Dot(row, row))
		if norms[i] > 0 {
			floats.Scale(1.0/norms[i], row)
		}
	})

	return out, &Vector{data: norms}, nil
}
