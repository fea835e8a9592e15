package metrics_test

import (
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/continuous"
	"github.com/katalvlaran/lvsignal/metrics"
)

func TestInstrument_CountsCallsAndErrors(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	d, err := metrics.Instrument("rate", continuous.NewDifferentiator(0), reg)
	require.NoError(t, err)
	assert.Equal(t, "rate", d.Name())

	_, err = d.TransferMut(1, 2)
	require.NoError(t, err)
	_, err = d.TransferMut(1, 3)
	require.ErrorIs(t, err, continuous.ErrZeroTimeStep)
	_, err = d.TransferMut(2, 4)
	require.NoError(t, err)

	expected := `
# HELP lvsignal_block_calls_total Number of TransferMut calls per block.
# TYPE lvsignal_block_calls_total counter
lvsignal_block_calls_total{block="rate"} 3
# HELP lvsignal_block_errors_total Number of TransferMut calls that returned an error.
# TYPE lvsignal_block_errors_total counter
lvsignal_block_errors_total{block="rate"} 1
# HELP lvsignal_block_last_output Most recent successful output per block.
# TYPE lvsignal_block_last_output gauge
lvsignal_block_last_output{block="rate"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"lvsignal_block_calls_total", "lvsignal_block_errors_total", "lvsignal_block_last_output"))
}

func TestInstrument_NonFiniteOutputs(t *testing.T) {
	c, err := metrics.NewCollectors(nil)
	require.NoError(t, err)

	var zero float64
	inf := block.TransferFunc[float64, float64](func(_ float64, in float64) (float64, error) {
		return in / zero, nil
	})
	m, err := c.Instrument("div", inf)
	require.NoError(t, err)

	for _, x := range []float64{1, -1, 0} {
		_, err := m.TransferMut(0, x)
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(c.NonFinite.WithLabelValues("div")))
	assert.True(t, math.IsNaN(testutil.ToFloat64(c.Output.WithLabelValues("div"))))
}

func TestInstrument_SharesFamiliesAcrossBlocks(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := metrics.Instrument("a", continuous.NewIntegrator(0), reg)
	require.NoError(t, err)
	b, err := metrics.Instrument("b", continuous.NewIntegrator(0), reg)
	require.NoError(t, err)

	_, err = block.Drive[float64, float64](a, []float64{1, 2}, []float64{1, 1})
	require.NoError(t, err)
	_, err = b.TransferMut(1, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(mustCollector(t, reg), "lvsignal_block_calls_total"))
}

func TestInstrument_NilBlock(t *testing.T) {
	_, err := metrics.Instrument("x", nil, prometheus.NewRegistry())
	assert.ErrorIs(t, err, metrics.ErrNilBlock)
}

// mustCollector returns the shared calls family registered on reg.
func mustCollector(t *testing.T, reg prometheus.Registerer) prometheus.Collector {
	t.Helper()
	c, err := metrics.NewCollectors(reg)
	require.NoError(t, err)

	return c.Calls
}
