// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"
)

// Matrix is an ordered sequence of row Vectors sharing one width.
//
// Invariants (enforced by every constructor):
//   - all rows have exactly Cols() components;
//   - a 0-row matrix still reports the column count it was built with.
//
// Row returns a row by reference; because a Vector's Dim is fixed, writing
// through it can never break the shared-width invariant.
type Matrix struct {
	rows []*Vector // row-major storage, len(rows) == Dim()
	cols int       // shared width of every row
}

// Operation name constants for unified error wrapping.
const (
	opNewMatrix   = "NewMatrix"
	opFromRows    = "FromRows"
	opFromData    = "FromData"
	opMatRow      = "Matrix.Row"
	opMatAt       = "Matrix.At"
	opMatSet      = "Matrix.Set"
	opMatRowRange = "Matrix.RowRange"
)

// NewMatrix creates a rows×cols matrix of independent zero rows.
// Stage 1 (Validate): rows >= 0 and cols >= 0.
// Stage 2 (Prepare): allocate one Vector per row.
// Complexity: O(rows*cols) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewMatrix, ErrBadShape)
	}
	data := make([]*Vector, rows)
	for i := range data {
		data[i] = &Vector{data: make([]float64, cols)}
	}

	return &Matrix{rows: data, cols: cols}, nil
}

// Zeros is an intention-revealing alias of NewMatrix.
func Zeros(rows, cols int) (*Matrix, error) {
	return NewMatrix(rows, cols)
}

// OnesMatrix returns a rows×cols matrix with every entry set to 1.
func OnesMatrix(rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(1.0)

	return m, nil
}

// FromRows builds a matrix from deep copies of rows.
// Implementation:
//   - Stage 1: reject nil rows; take the width from the first row.
//   - Stage 2: reject any row whose Dim differs (ErrRaggedRows).
//   - Stage 3: clone every row so the matrix owns its storage.
//
// Errors: ErrNilMatrix, ErrRaggedRows.
// Complexity: O(rows*cols).
func FromRows(rows []*Vector) (*Matrix, error) {
	cols := 0
	for i, r := range rows {
		if r == nil {
			return nil, matrixErrorf(opFromRows, ErrNilMatrix)
		}
		if i == 0 {
			cols = r.Dim()
		} else if r.Dim() != cols {
			return nil, matrixErrorf(opFromRows, ErrRaggedRows)
		}
	}
	data := make([]*Vector, len(rows))
	for i, r := range rows {
		data[i] = r.Clone()
	}

	return &Matrix{rows: data, cols: cols}, nil
}

// FromData builds a matrix from nested float64 slices (copied).
// Errors: ErrRaggedRows if the inner slices differ in length.
func FromData(data [][]float64) (*Matrix, error) {
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	rows := make([]*Vector, len(data))
	for i, r := range data {
		if len(r) != cols {
			return nil, matrixErrorf(opFromData, ErrRaggedRows)
		}
		rows[i] = FromSlice(r)
	}

	return &Matrix{rows: rows, cols: cols}, nil
}

// Dim returns the number of rows.
func (m *Matrix) Dim() int { return len(m.rows) }

// Cols returns the shared row width.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return len(m.rows), m.cols }

// ShapeEqual reports whether m and other have identical shapes.
func (m *Matrix) ShapeEqual(other *Matrix) bool {
	return len(m.rows) == len(other.rows) && m.cols == other.cols
}

// Row returns the i-th row by reference; writes through it mutate m.
// Errors: ErrOutOfRange.
func (m *Matrix) Row(i int) (*Vector, error) {
	if err := ValidateIndex(i, len(m.rows)); err != nil {
		return nil, matrixErrorf(opMatRow, err)
	}

	return m.rows[i], nil
}

// At returns the entry at (i, j).
// Errors: ErrOutOfRange for either index. Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if err := ValidateIndex(i, len(m.rows)); err != nil {
		return 0, matrixErrorf(opMatAt, err)
	}
	if err := ValidateIndex(j, m.cols); err != nil {
		return 0, matrixErrorf(opMatAt, err)
	}

	return m.rows[i].data[j], nil
}

// Set assigns x at (i, j).
// Errors: ErrOutOfRange for either index. Complexity: O(1).
func (m *Matrix) Set(i, j int, x float64) error {
	if err := ValidateIndex(i, len(m.rows)); err != nil {
		return matrixErrorf(opMatSet, err)
	}
	if err := ValidateIndex(j, m.cols); err != nil {
		return matrixErrorf(opMatSet, err)
	}
	m.rows[i].data[j] = x

	return nil
}

// RowRange returns copies of the contiguous rows [lo,hi).
// Errors: ErrOutOfRange unless 0 <= lo <= hi <= Dim().
func (m *Matrix) RowRange(lo, hi int) ([]*Vector, error) {
	if err := ValidateRange(lo, hi, len(m.rows)); err != nil {
		return nil, matrixErrorf(opMatRowRange, err)
	}
	out := make([]*Vector, hi-lo)
	for i := range out {
		out[i] = m.rows[lo+i].Clone()
	}

	return out, nil
}

// Rows returns copies of all rows in order.
func (m *Matrix) Rows() []*Vector {
	out, _ := m.RowRange(0, len(m.rows)) // full range is always valid

	return out
}

// Data returns the entries as nested slices (copied).
func (m *Matrix) Data() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Data()
	}

	return out
}

// Clone returns a deep copy of m.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.Rows(), cols: m.cols}
}

// ZeroLike returns a zero matrix with m's shape.
func (m *Matrix) ZeroLike() *Matrix {
	out, _ := NewMatrix(len(m.rows), m.cols) // shape already valid

	return out
}

// OnesLike returns an all-ones matrix with m's shape.
func (m *Matrix) OnesLike() *Matrix {
	out := m.ZeroLike()
	out.Fill(1.0)

	return out
}

// Fill sets every entry to x in place.
func (m *Matrix) Fill(x float64) {
	forRows(m, func(i int) { fillRow(m.rows[i].data, x) })
}

// fillRow is the serial per-row body of Fill.
func fillRow(row []float64, x float64) {
	for j := range row {
		row[j] = x
	}
}

// Ravel concatenates all rows, in row order, into one flat Vector.
// Complexity: O(rows*cols).
func (m *Matrix) Ravel() *Vector {
	flat := make([]float64, 0, len(m.rows)*m.cols)
	for _, r := range m.rows {
		flat = append(flat, r.data...)
	}

	return &Vector{data: flat}
}

// Last returns a copy of the final row, or false for a 0-row matrix.
func (m *Matrix) Last() (*Vector, bool) {
	if len(m.rows) == 0 {
		return nil, false
	}

	return m.rows[len(m.rows)-1].Clone(), true
}

// Equal reports exact equality of shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !m.ShapeEqual(other) {
		return false
	}
	for i, r := range m.rows {
		if !r.Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// ApproxEqual reports equal shapes and every |m[i,j]-other[i,j]| <= eps.
func (m *Matrix) ApproxEqual(other *Matrix, eps float64) bool {
	if m == nil || other == nil || !m.ShapeEqual(other) {
		return false
	}
	for i, r := range m.rows {
		if !r.ApproxEqual(other.rows[i], eps) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}

	return b.String()
}
