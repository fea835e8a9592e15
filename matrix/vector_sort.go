// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Ordering kernels: Sort, ArgSort and ZipSort (co-sort of a Vector key with
//     the rows of a Matrix).
//
// Ordering policy:
//   - Sort and ArgSort need a total order and reject NaN up front with
//     ErrNaNComparison; the receiver is left untouched in that case.
//   - ZipSort treats any comparison involving NaN as "equal". That comparator
//     is not a strict weak order, so the final position of NaN keys (and of the
//     rows they carry) is unspecified. Row-wise correspondence is always kept.
//
// Determinism & Performance:
//   - A parallel stable merge sort: chunks are sorted concurrently with
//     slices.SortStableFunc, then merged pairwise level by level. Equal keys
//     keep their original relative order.

package matrix

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvsignal/internal/parallel"
)

const (
	opVecSort    = "Vector.Sort"
	opVecArgSort = "Vector.ArgSort"
	opVecZipSort = "Vector.ZipSort"
)

// compareFloat orders a before b when a < b; NaN-involving pairs compare equal.
func compareFloat(a, b float64) int {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort orders the components ascending in place.
// Errors: ErrNaNComparison if any component is NaN (v unchanged).
// Complexity: O(n log n) time, O(n) scratch.
func (v *Vector) Sort() error {
	if err := ValidateNoNaN(v.data); err != nil {
		return matrixErrorf(opVecSort, err)
	}
	stableSort(v.data, compareFloat)

	return nil
}

// ArgSort returns the permutation that would sort v ascending, without
// mutating v. Ties keep index order.
// Errors: ErrNaNComparison if any component is NaN.
func (v *Vector) ArgSort() ([]int, error) {
	if err := ValidateNoNaN(v.data); err != nil {
		return nil, matrixErrorf(opVecArgSort, err)
	}
	idx := make([]int, len(v.data))
	for i := range idx {
		idx[i] = i
	}
	data := v.data
	stableSort(idx, func(a, b int) int { return compareFloat(data[a], data[b]) })

	return idx, nil
}

// zipEntry pairs one sort key with the matrix row it carries.
type zipEntry struct {
	key float64
	row *Vector
}

// ZipSort co-sorts v ascending and permutes the rows of m identically.
// Implementation:
//   - Stage 1: Validate m is non-nil and has exactly v.Dim() rows.
//   - Stage 2: Stable-sort (key,row) pairs with the NaN-as-equal comparator.
//   - Stage 3: Write sorted keys back into v; collect cloned rows into a new Matrix.
//
// Returns:
//   - *Matrix: a new matrix whose i-th row is the row of m that travelled with
//     the i-th smallest key. m itself is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row count != v.Dim()).
//
// Complexity:
//   - Time O(n log n + n*c), Space O(n*c) for the cloned rows.
//
// Example:
//
//	v = [2, 1, 3], m = [[1,2,3],[3,4,5],[5,6,7]]
//	→ v = [1, 2, 3], result = [[3,4,5],[1,2,3],[5,6,7]]
func (v *Vector) ZipSort(m *Matrix) (*Matrix, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, matrixErrorf(opVecZipSort, err)
	}
	if len(m.rows) != len(v.data) {
		return nil, matrixErrorf(opVecZipSort, ErrDimensionMismatch)
	}

	entries := make([]zipEntry, len(v.data))
	for i, k := range v.data {
		entries[i] = zipEntry{key: k, row: m.rows[i]}
	}
	stableSort(entries, func(a, b zipEntry) int { return compareFloat(a.key, b.key) })

	rows := make([]*Vector, len(entries))
	for i, e := range entries {
		v.data[i] = e.key
		rows[i] = e.row.Clone()
	}

	return &Matrix{rows: rows, cols: m.cols}, nil
}

// stableSort sorts data with cmp using chunk-parallel stable sorts followed by
// level-by-level stable merges. Short inputs are sorted inline.
func stableSort[T any](data []T, cmp func(a, b T) int) {
	cfg := current()
	runs := cfg.Chunks(len(data))
	if len(runs) <= 1 {
		slices.SortStableFunc(data, cmp)
		return
	}

	pairCfg := parallel.Config{Grain: 1, Workers: cfg.Workers}
	parallel.For(len(runs), pairCfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			slices.SortStableFunc(data[runs[k][0]:runs[k][1]], cmp)
		}
	})

	src, dst := data, make([]T, len(data))
	for len(runs) > 1 {
		next := make([][2]int, (len(runs)+1)/2)
		parallel.For(len(next), pairCfg, func(lo, hi int) {
			for p := lo; p < hi; p++ {
				left := runs[2*p]
				if 2*p+1 == len(runs) { // odd run out: carry over
					copy(dst[left[0]:left[1]], src[left[0]:left[1]])
					next[p] = left
					continue
				}
				right := runs[2*p+1]
				mergeStable(dst[left[0]:right[1]], src[left[0]:left[1]], src[right[0]:right[1]], cmp)
				next[p] = [2]int{left[0], right[1]}
			}
		})
		src, dst = dst, src
		runs = next
	}
	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// mergeStable merges sorted a and b into out, preferring a on ties.
func mergeStable[T any](out, a, b []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
