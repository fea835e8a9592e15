package sink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/continuous"
	"github.com/katalvlaran/lvsignal/matrix"
	"github.com/katalvlaran/lvsignal/sink"
	"github.com/katalvlaran/lvsignal/source"
)

func TestRecorder_RecordsInOrder(t *testing.T) {
	r := sink.NewRecorder[float64](4)
	step := source.NewStep(0, 1, 1)
	for _, ts := range []float64{0, 0.5, 1, 1.5} {
		r.InputMut(ts, step.Output(ts))
	}

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, r.Times())
	assert.Equal(t, []float64{0, 0, 1, 1}, r.Samples())
	assert.Equal(t, []float64{0, 0, 1, 1}, sink.Series(r).Data())
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, sink.TimeVector(r).Data())

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Times())
}

func TestRecorder_CopiesVectors(t *testing.T) {
	r := sink.NewRecorder[*matrix.Vector](0)
	v := matrix.Of(1, 2)
	r.InputMut(0, v)
	require.NoError(t, v.Set(0, 9))

	got := r.Samples()
	assert.Equal(t, []float64{1, 2}, got[0].Data())
	require.NoError(t, got[0].Set(1, 9))
	assert.Equal(t, []float64{1, 2}, r.Samples()[0].Data())
}

func TestStack(t *testing.T) {
	r := sink.NewRecorder[*matrix.Vector](0)
	_, err := sink.Stack(r)
	assert.ErrorIs(t, err, sink.ErrEmpty)

	vi := continuous.NewVectorIntegrator(matrix.Of(0, 0), continuous.WithDerivative())
	for _, ts := range []float64{1, 2, 3} {
		out, err := vi.TransferMut(ts, matrix.Of(1, 2))
		require.NoError(t, err)
		r.InputMut(ts, out)
	}
	m, err := sink.Stack(r)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {2, 4}, {3, 6}}, m.Data())

	r.InputMut(4, matrix.Of(1))
	_, err = sink.Stack(r)
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestRecorder_AsSinkFunc(t *testing.T) {
	r := sink.NewRecorder[bool](0)
	var s block.SinkMut[bool] = block.SinkFunc[bool](r.InputMut)
	s.InputMut(0, true)
	assert.Equal(t, []bool{true}, r.Samples())
}
