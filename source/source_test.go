package source_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/matrix"
	"github.com/katalvlaran/lvsignal/source"
)

func TestStep(t *testing.T) {
	s := source.NewStep(0, 1, 2)
	assert.Equal(t, 0.0, s.Output(1.999))
	assert.Equal(t, 1.0, s.Output(2))
	assert.Equal(t, 1.0, s.OutputMut(10))
	assert.Equal(t, 0.0, s.Init())
	assert.Equal(t, 1.0, s.End())
	assert.Equal(t, 2.0, s.StepTime())
}

func TestConstant_CopiesContainers(t *testing.T) {
	v := matrix.Of(1, 2)
	c := source.NewConstant(v)
	require.NoError(t, v.Set(0, 100))

	out := c.Output(0)
	assert.Equal(t, []float64{1, 2}, out.Data())
	require.NoError(t, out.Set(1, -5))
	assert.Equal(t, []float64{1, 2}, c.OutputMut(1).Data())

	assert.Equal(t, "on", source.NewConstant("on").Output(3))
}

func TestRamp(t *testing.T) {
	r := source.Ramp{Slope: 2, Start: 1, Initial: 0.5}
	got := block.Sample[float64](r, []float64{0, 1, 1.5, 3})
	assert.Equal(t, []float64{0.5, 0.5, 1.5, 4.5}, got)
}

func TestSine(t *testing.T) {
	s := source.Sine{Amplitude: 2, Frequency: 0.25, Bias: 1}
	assert.InDelta(t, 1.0, s.Output(0), 1e-12)
	assert.InDelta(t, 3.0, s.Output(1), 1e-12)
	assert.InDelta(t, 1.0+2*math.Sin(math.Pi), s.OutputMut(2), 1e-12)
}
