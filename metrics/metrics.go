// Package metrics instruments transfer blocks with Prometheus collectors.
//
// Instrument wraps a scalar block.TransferMut and, per block name, counts
// calls, failed calls and non-finite outputs, and exposes the last output as
// a gauge. Collectors are shared by every block registered on the same
// Registerer, so many blocks produce one labelled family each.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvsignal/block"
)

// Namespace prefixes every metric name.
const Namespace = "lvsignal"

const blockLabel = "block"

// ErrNilBlock indicates a nil block passed to Instrument.
var ErrNilBlock = errors.New("metrics: nil block")

// Collectors is the set of metric families shared by instrumented blocks.
type Collectors struct {
	Calls     *prometheus.CounterVec
	Errors    *prometheus.CounterVec
	NonFinite *prometheus.CounterVec
	Output    *prometheus.GaugeVec
}

// NewCollectors creates the families and registers them on reg. Families
// already registered there are reused. A nil reg skips registration.
func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "block_calls_total",
			Help:      "Number of TransferMut calls per block.",
		}, []string{blockLabel}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "block_errors_total",
			Help:      "Number of TransferMut calls that returned an error.",
		}, []string{blockLabel}),
		NonFinite: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "block_nonfinite_outputs_total",
			Help:      "Number of successful outputs that were NaN or infinite.",
		}, []string{blockLabel}),
		Output: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "block_last_output",
			Help:      "Most recent successful output per block.",
		}, []string{blockLabel}),
	}
	if reg == nil {
		return c, nil
	}

	var err error
	if c.Calls, err = register(reg, c.Calls); err != nil {
		return nil, err
	}
	if c.Errors, err = register(reg, c.Errors); err != nil {
		return nil, err
	}
	if c.NonFinite, err = register(reg, c.NonFinite); err != nil {
		return nil, err
	}
	if c.Output, err = register(reg, c.Output); err != nil {
		return nil, err
	}

	return c, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("metrics: register: %w", err)
	}

	return c, nil
}

// Instrumented is a TransferMut that records metrics around an inner block.
type Instrumented struct {
	name  string
	inner block.TransferMut[float64, float64]

	calls     prometheus.Counter
	errs      prometheus.Counter
	nonFinite prometheus.Counter
	output    prometheus.Gauge
}

var _ block.TransferMut[float64, float64] = (*Instrumented)(nil)

// Instrument wraps b under the label name, registering collectors on reg.
func Instrument(name string, b block.TransferMut[float64, float64], reg prometheus.Registerer) (*Instrumented, error) {
	c, err := NewCollectors(reg)
	if err != nil {
		return nil, err
	}

	return c.Instrument(name, b)
}

// Instrument wraps b using the families in c.
func (c *Collectors) Instrument(name string, b block.TransferMut[float64, float64]) (*Instrumented, error) {
	if b == nil {
		return nil, ErrNilBlock
	}

	return &Instrumented{
		name:      name,
		inner:     b,
		calls:     c.Calls.WithLabelValues(name),
		errs:      c.Errors.WithLabelValues(name),
		nonFinite: c.NonFinite.WithLabelValues(name),
		output:    c.Output.WithLabelValues(name),
	}, nil
}

// Name returns the block label.
func (m *Instrumented) Name() string { return m.name }

// TransferMut forwards to the inner block and records the outcome.
func (m *Instrumented) TransferMut(t float64, in float64) (float64, error) {
	m.calls.Inc()
	out, err := m.inner.TransferMut(t, in)
	if err != nil {
		m.errs.Inc()
		return out, err
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		m.nonFinite.Inc()
	}
	m.output.Set(out)

	return out, nil
}
