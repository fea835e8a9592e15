// SPDX-License-Identifier: MIT
// Package matrix provides row-wise arithmetic on Matrix: elementwise against an
// equal-shape matrix, row-broadcast against a Vector, and scalar scaling.
// Every function performs fail-fast validation and returns clear errors on
// dimension mismatches; in-place forms leave the receiver untouched on error.
//
// Rows are distributed over workers; each row is handed to a gonum floats
// routine, so no row is ever shared between two goroutines.
package matrix

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsignal/internal/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatAdd       = "Matrix.Add"
	opMatSub       = "Matrix.Sub"
	opMatAddVector = "Matrix.AddVector"
	opMatSubVector = "Matrix.SubVector"
)

// rowConfig converts the element-based kernel policy into a row-based one,
// so a chunk still carries roughly Grain elements.
func rowConfig(cols int) parallel.Config {
	cfg := current()
	if cols > 0 {
		cfg.Grain = max(1, cfg.Grain/cols)
	}

	return cfg
}

// forRows calls fn(i) for every row index, distributing rows over workers.
func forRows(m *Matrix, fn func(i int)) {
	parallel.For(len(m.rows), rowConfig(m.cols), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// Add returns m + other (equal shapes).
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate the result.
// Stage 3 (Execute): row-parallel floats.AddTo.
// Complexity: O(r·c) time and memory.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opMatAdd, err)
	}
	out := m.ZeroLike()
	forRows(m, func(i int) { floats.AddTo(out.rows[i].data, m.rows[i].data, other.rows[i].data) })

	return out, nil
}

// Sub returns m - other (equal shapes).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opMatSub, err)
	}
	out := m.ZeroLike()
	forRows(m, func(i int) { floats.SubTo(out.rows[i].data, m.rows[i].data, other.rows[i].data) })

	return out, nil
}

// AddInPlace performs m += other.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opMatAdd, err)
	}
	forRows(m, func(i int) { floats.Add(m.rows[i].data, other.rows[i].data) })

	return nil
}

// SubInPlace performs m -= other.
func (m *Matrix) SubInPlace(other *Matrix) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opMatSub, err)
	}
	forRows(m, func(i int) { floats.Sub(m.rows[i].data, other.rows[i].data) })

	return nil
}

// AddVector returns m with v added to every row (row-broadcast).
// Errors: ErrNilMatrix, ErrDimensionMismatch (v.Dim() != Cols()).
// Complexity: O(r·c).
func (m *Matrix) AddVector(v *Vector) (*Matrix, error) {
	if err := ValidateRowBroadcast(m, v); err != nil {
		return nil, matrixErrorf(opMatAddVector, err)
	}
	out := m.ZeroLike()
	forRows(m, func(i int) { floats.AddTo(out.rows[i].data, m.rows[i].data, v.data) })

	return out, nil
}

// SubVector returns m with v subtracted from every row (row-broadcast).
func (m *Matrix) SubVector(v *Vector) (*Matrix, error) {
	if err := ValidateRowBroadcast(m, v); err != nil {
		return nil, matrixErrorf(opMatSubVector, err)
	}
	out := m.ZeroLike()
	forRows(m, func(i int) { floats.SubTo(out.rows[i].data, m.rows[i].data, v.data) })

	return out, nil
}

// AddVectorInPlace adds v to every row of m.
func (m *Matrix) AddVectorInPlace(v *Vector) error {
	if err := ValidateRowBroadcast(m, v); err != nil {
		return matrixErrorf(opMatAddVector, err)
	}
	forRows(m, func(i int) { floats.Add(m.rows[i].data, v.data) })

	return nil
}

// SubVectorInPlace subtracts v from every row of m.
func (m *Matrix) SubVectorInPlace(v *Vector) error {
	if err := ValidateRowBroadcast(m, v); err != nil {
		return matrixErrorf(opMatSubVector, err)
	}
	forRows(m, func(i int) { floats.Sub(m.rows[i].data, v.data) })

	return nil
}

// Scale returns m * c.
func (m *Matrix) Scale(c float64) *Matrix {
	out := m.Clone()
	out.ScaleInPlace(c)

	return out
}

// ScaleInPlace performs m *= c.
func (m *Matrix) ScaleInPlace(c float64) {
	forRows(m, func(i int) { floats.Scale(c, m.rows[i].data) })
}

// DivScalar returns m / c. c == 0 yields ±Inf/NaN entries.
func (m *Matrix) DivScalar(c float64) *Matrix {
	out := m.Clone()
	out.DivScalarInPlace(c)

	return out
}

// DivScalarInPlace performs m /= c.
func (m *Matrix) DivScalarInPlace(c float64) {
	forRows(m, func(i int) {
		row := m.rows[i].data
		for j := range row {
			row[j] /= c
		}
	})
}
