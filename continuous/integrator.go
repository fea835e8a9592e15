package continuous

import (
	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/matrix"
)

const (
	opIntegrate       = "Integrator.TransferMut"
	opVectorIntegrate = "VectorIntegrator.TransferMut"
)

// Integrator accumulates a scalar signal over caller-supplied time.
//
// In the default mode each call applies the trapezoidal rule against the
// previous sample: past += (t-last)*(v+lastV)/2. With WithDerivative the
// input is treated as a rate and accumulated rectangularly: past += v*(t-last).
// Both modes return the running total.
//
// The first call after construction or Reset uses the initial value as the
// previous sample and the start time (default 0) as the previous time.
type Integrator struct {
	opts      Options
	init      float64
	clk       clock
	lastValue float64
	past      float64
}

var _ block.TransferMut[float64, float64] = (*Integrator)(nil)

// NewIntegrator returns an integrator whose accumulator starts at init.
func NewIntegrator(init float64, opts ...Option) *Integrator {
	o := gatherOptions(opts...)

	return &Integrator{
		opts:      o,
		init:      init,
		clk:       newClock(o.startTime),
		lastValue: init,
		past:      init,
	}
}

// TransferMut advances the integrator to time t with input v.
// Errors: ErrTimeRegression (strict mode only; state unchanged).
func (i *Integrator) TransferMut(t float64, v float64) (float64, error) {
	dt, err := i.clk.step(opIntegrate, &i.opts, t)
	if err != nil {
		return i.past, err
	}
	if i.opts.derivative {
		i.past += v * dt
	} else {
		i.past += dt * (v + i.lastValue) * 0.5
	}
	i.lastValue = v
	i.clk.last = t

	return i.past, nil
}

// Past returns the accumulated value.
func (i *Integrator) Past() float64 { return i.past }

// LastTime returns the time of the most recent sample (start time after Reset).
func (i *Integrator) LastTime() float64 { return i.clk.last }

// Derivative reports whether the integrator runs in rectangular mode.
func (i *Integrator) Derivative() bool { return i.opts.derivative }

// Reset restores the state of a freshly constructed integrator.
// The accumulation mode is unchanged.
func (i *Integrator) Reset() {
	i.past = i.init
	i.lastValue = i.init
	i.clk.reset()
}

// VectorIntegrator is the Integrator over *matrix.Vector samples. Every input
// must have the dimension of the initial value.
type VectorIntegrator struct {
	opts      Options
	init      *matrix.Vector
	clk       clock
	lastValue *matrix.Vector
	past      *matrix.Vector
}

var _ block.TransferMut[*matrix.Vector, *matrix.Vector] = (*VectorIntegrator)(nil)

// NewVectorIntegrator copies init and uses it as accumulator and first
// previous sample. A nil init is treated as the 0-dimensional vector.
func NewVectorIntegrator(init *matrix.Vector, opts ...Option) *VectorIntegrator {
	if init == nil {
		init, _ = matrix.Zero(0)
	}
	o := gatherOptions(opts...)

	return &VectorIntegrator{
		opts:      o,
		init:      init.Clone(),
		clk:       newClock(o.startTime),
		lastValue: init.Clone(),
		past:      init.Clone(),
	}
}

// TransferMut advances the integrator and returns a copy of the accumulator.
// Errors: ErrNilInput, matrix.ErrDimensionMismatch, ErrTimeRegression
// (strict mode). On error the state is unchanged.
func (vi *VectorIntegrator) TransferMut(t float64, v *matrix.Vector) (*matrix.Vector, error) {
	if v == nil {
		return nil, continuousErrorf(opVectorIntegrate, ErrNilInput)
	}
	if err := matrix.ValidateSameDim(vi.past, v); err != nil {
		return nil, continuousErrorf(opVectorIntegrate, err)
	}
	dt, err := vi.clk.step(opVectorIntegrate, &vi.opts, t)
	if err != nil {
		return nil, err
	}

	var inc *matrix.Vector
	if vi.opts.derivative {
		inc = v.Scale(dt)
	} else {
		inc, _ = v.Add(vi.lastValue) // dims checked above
		inc.ScaleInPlace(dt * 0.5)
	}
	_ = vi.past.AddInPlace(inc)
	vi.lastValue = v.Clone()
	vi.clk.last = t

	return vi.past.Clone(), nil
}

// Past returns a copy of the accumulated vector.
func (vi *VectorIntegrator) Past() *matrix.Vector { return vi.past.Clone() }

// LastTime returns the time of the most recent sample.
func (vi *VectorIntegrator) LastTime() float64 { return vi.clk.last }

// Reset restores the state of a freshly constructed integrator.
func (vi *VectorIntegrator) Reset() {
	vi.past = vi.init.Clone()
	vi.lastValue = vi.init.Clone()
	vi.clk.reset()
}
