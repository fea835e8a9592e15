// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/matrix"
)

func TestVector_Sort(t *testing.T) {
	v := matrix.Of(3, -1, 2, 2, 0)
	require.NoError(t, v.Sort())
	assert.Equal(t, []float64{-1, 0, 2, 2, 3}, v.Data())

	var empty matrix.Vector
	require.NoError(t, empty.Sort())
}

func TestVector_SortNaNLeavesVectorUnchanged(t *testing.T) {
	v := matrix.Of(3, math.NaN(), 1)
	err := v.Sort()
	require.ErrorIs(t, err, matrix.ErrNaNComparison)

	got := v.Data()
	assert.Equal(t, 3.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 1.0, got[2])
}

func TestVector_SortLargeMatchesStdlib(t *testing.T) {
	withFineGrain(t)
	data := randomSlice(rand.New(rand.NewSource(21)), 1001)
	want := append([]float64(nil), data...)
	sort.Float64s(want)

	v := matrix.FromSlice(data)
	require.NoError(t, v.Sort())
	assert.Equal(t, want, v.Data())
}

func TestVector_ArgSortStableTies(t *testing.T) {
	v := matrix.Of(2, 1, 2, 0, 1)
	idx, err := v.ArgSort()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 0, 2}, idx)
	assert.Equal(t, []float64{2, 1, 2, 0, 1}, v.Data(), "ArgSort must not mutate")

	_, err = matrix.Of(1, math.NaN()).ArgSort()
	assert.ErrorIs(t, err, matrix.ErrNaNComparison)
}

func TestVector_ZipSortExample(t *testing.T) {
	v := matrix.Of(2, 1, 3)
	m := MustMatrix(t, [][]float64{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}})

	sorted, err := v.ZipSort(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v.Data())
	assert.Equal(t, [][]float64{{3, 4, 5}, {1, 2, 3}, {5, 6, 7}}, sorted.Data())
	assert.Equal(t, [][]float64{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}}, m.Data(), "input matrix is not permuted")
}

func TestVector_ZipSortRowCountMismatch(t *testing.T) {
	v := matrix.Of(2, 1)
	m := MustMatrix(t, [][]float64{{1}, {2}, {3}})

	_, err := v.ZipSort(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, []float64{2, 1}, v.Data())

	_, err = v.ZipSort(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVector_ZipSortKeepsRowCorrespondence(t *testing.T) {
	withFineGrain(t)
	r := rand.New(rand.NewSource(8))
	const n = 257
	keys := randomSlice(r, n)
	rows := make([][]float64, n)
	for i, k := range keys {
		rows[i] = []float64{k, float64(i)}
	}

	v := matrix.FromSlice(keys)
	out, err := v.ZipSort(MustMatrix(t, rows))
	require.NoError(t, err)

	sortedKeys := v.Data()
	assert.True(t, sort.Float64sAreSorted(sortedKeys))
	for i := 0; i < n; i++ {
		assert.Equal(t, sortedKeys[i], MustAt(t, out, i, 0), "row %d travelled with the wrong key", i)
	}
}

func TestVector_ZipSortNaNComparesEqual(t *testing.T) {
	v := matrix.Of(math.NaN(), 1, 0)
	m := MustMatrix(t, [][]float64{{10}, {11}, {12}})

	out, err := v.ZipSort(m)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Dim())

	// Every row still sits next to its own key.
	keys := v.Data()
	for i := 0; i < 3; i++ {
		switch got := MustAt(t, out, i, 0); got {
		case 10:
			assert.True(t, math.IsNaN(keys[i]))
		case 11:
			assert.Equal(t, 1.0, keys[i])
		case 12:
			assert.Equal(t, 0.0, keys[i])
		default:
			t.Fatalf("unexpected row value %v", got)
		}
	}
}
