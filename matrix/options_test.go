// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsignal/matrix"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultGrain, o.Grain())
	assert.Equal(t, matrix.DefaultWorkers, o.Workers())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithGrain(8), matrix.WithWorkers(3), matrix.WithGrain(16))
	assert.Equal(t, 16, o.Grain())
	assert.Equal(t, 3, o.Workers())

	assert.Equal(t, 1, matrix.NewMatrixOptions(matrix.WithSerial()).Workers())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { matrix.WithGrain(0) })
	assert.Panics(t, func() { matrix.WithGrain(-5) })
	assert.Panics(t, func() { matrix.WithWorkers(-1) })
	assert.NotPanics(t, func() { matrix.WithWorkers(0) })
}

func TestConfigure_ReturnsPreviousAndRestores(t *testing.T) {
	prev := matrix.Configure(matrix.WithGrain(7))
	inner := matrix.Configure(matrix.WithWorkers(2))
	assert.Equal(t, 7, inner.Grain())

	matrix.Restore(prev)
	now := matrix.Configure()
	assert.Equal(t, prev, now)
	matrix.Restore(prev)
}
