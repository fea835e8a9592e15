// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin, intention-revealing constructors that compose the canonical
//     Vector/Matrix primitives (no logic duplication).

package matrix

const opLinspace = "Linspace"

// Linspace returns n rows linearly interpolated from start to end, both
// endpoints included: row i = start + (end-start) * i/(n-1).
//
// Behavior highlights:
//   - n == 0 yields a 0-row matrix of width start.Dim().
//   - n == 1 yields the single row start.
//   - The last row is exactly end (copied, not recomputed), so no rounding
//     drift accumulates at the endpoint.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (start/end differ), ErrBadShape (n < 0).
//
// Complexity:
//   - Time O(n*d), Space O(n*d).
func Linspace(start, end *Vector, n int) (*Matrix, error) {
	if err := ValidateSameDim(start, end); err != nil {
		return nil, matrixErrorf(opLinspace, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opLinspace, ErrBadShape)
	}

	out, err := NewMatrix(n, start.Dim())
	if err != nil {
		return nil, matrixErrorf(opLinspace, err)
	}
	if n == 0 {
		return out, nil
	}
	copy(out.rows[0].data, start.data)
	if n == 1 {
		return out, nil
	}

	step, _ := end.Sub(start) // dims validated above
	last := float64(n - 1)
	forRows(out, func(i int) {
		row := out.rows[i].data
		switch i {
		case 0:
			return
		case n - 1:
			copy(row, end.data)
		default:
			f := float64(i) / last
			for j := range row {
				row[j] = start.data[j] + step.data[j]*f
			}
		}
	})

	return out, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].data[i] = 1.0
	}

	return m, nil
}
