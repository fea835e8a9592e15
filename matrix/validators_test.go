// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/matrix"
)

func TestValidators(t *testing.T) {
	require.NoError(t, matrix.ValidateVectorNotNil(matrix.Of(1)))
	assert.ErrorIs(t, matrix.ValidateVectorNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateMatrixNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameDim(matrix.Of(1, 2), matrix.Of(3, 4)))
	assert.ErrorIs(t, matrix.ValidateSameDim(matrix.Of(1), matrix.Of(3, 4)), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSameDim(nil, matrix.Of(3, 4)), matrix.ErrNilMatrix)

	a := MustMatrix(t, [][]float64{{1, 2}})
	assert.ErrorIs(t, matrix.ValidateSameShape(a, MustMatrix(t, [][]float64{{1}})), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateRowBroadcast(a, matrix.Of(1)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateRowBroadcast(a, matrix.Of(1, 1)))

	require.NoError(t, matrix.ValidateIndex(0, 1))
	assert.ErrorIs(t, matrix.ValidateIndex(1, 1), matrix.ErrOutOfRange)
	require.NoError(t, matrix.ValidateRange(0, 0, 0))
	assert.ErrorIs(t, matrix.ValidateRange(2, 1, 3), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateNoNaN([]float64{1, math.Inf(1)}))
	assert.ErrorIs(t, matrix.ValidateNoNaN([]float64{1, math.NaN()}), matrix.ErrNaNComparison)
}
