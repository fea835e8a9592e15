package continuous

import (
	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/logging"
	"github.com/katalvlaran/lvsignal/matrix"
)

const (
	opDifferentiate       = "Differentiator.Differentiate"
	opVectorDifferentiate = "VectorDifferentiator.Differentiate"
)

// Differentiator estimates the rate of change of a scalar signal with a
// backward difference: (v - lastV) / (t - lastT).
type Differentiator struct {
	opts      Options
	init      float64
	clk       clock
	lastValue float64
}

var _ block.TransferMut[float64, float64] = (*Differentiator)(nil)

// NewDifferentiator returns a differentiator whose previous sample is init
// at the start time. WithDerivative has no effect here.
func NewDifferentiator(init float64, opts ...Option) *Differentiator {
	o := gatherOptions(opts...)

	return &Differentiator{opts: o, init: init, clk: newClock(o.startTime), lastValue: init}
}

// Differentiate returns the slope between the previous sample and (t, v).
// Errors: ErrZeroTimeStep when t equals the last time, ErrTimeRegression in
// strict mode. On error the state is unchanged.
func (d *Differentiator) Differentiate(t, v float64) (float64, error) {
	dt, err := d.clk.step(opDifferentiate, &d.opts, t)
	if err != nil {
		return 0, err
	}
	if dt == 0 {
		d.opts.logger.V(logging.DEBUG).Info("zero time step", "op", opDifferentiate, "t", t)
		return 0, continuousErrorf(opDifferentiate, ErrZeroTimeStep)
	}
	res := (v - d.lastValue) / dt
	d.lastValue = v
	d.clk.last = t

	return res, nil
}

// TransferMut implements block.TransferMut via Differentiate.
func (d *Differentiator) TransferMut(t float64, v float64) (float64, error) {
	return d.Differentiate(t, v)
}

// LastTime returns the time of the most recent sample.
func (d *Differentiator) LastTime() float64 { return d.clk.last }

// Reset restores the previous sample to (start time, init).
func (d *Differentiator) Reset() {
	d.lastValue = d.init
	d.clk.reset()
}

// VectorDifferentiator is the Differentiator over *matrix.Vector samples.
type VectorDifferentiator struct {
	opts      Options
	init      *matrix.Vector
	clk       clock
	lastValue *matrix.Vector
}

var _ block.TransferMut[*matrix.Vector, *matrix.Vector] = (*VectorDifferentiator)(nil)

// NewVectorDifferentiator copies init as the first previous sample.
func NewVectorDifferentiator(init *matrix.Vector, opts ...Option) *VectorDifferentiator {
	if init == nil {
		init, _ = matrix.Zero(0)
	}
	o := gatherOptions(opts...)

	return &VectorDifferentiator{opts: o, init: init.Clone(), clk: newClock(o.startTime), lastValue: init.Clone()}
}

// Differentiate returns the componentwise slope as a new vector.
// Errors: ErrNilInput, matrix.ErrDimensionMismatch, ErrZeroTimeStep,
// ErrTimeRegression (strict mode).
func (d *VectorDifferentiator) Differentiate(t float64, v *matrix.Vector) (*matrix.Vector, error) {
	if v == nil {
		return nil, continuousErrorf(opVectorDifferentiate, ErrNilInput)
	}
	if err := matrix.ValidateSameDim(d.lastValue, v); err != nil {
		return nil, continuousErrorf(opVectorDifferentiate, err)
	}
	dt, err := d.clk.step(opVectorDifferentiate, &d.opts, t)
	if err != nil {
		return nil, err
	}
	if dt == 0 {
		d.opts.logger.V(logging.DEBUG).Info("zero time step", "op", opVectorDifferentiate, "t", t)
		return nil, continuousErrorf(opVectorDifferentiate, ErrZeroTimeStep)
	}
	res, _ := v.Sub(d.lastValue)
	res.DivScalarInPlace(dt)
	d.lastValue = v.Clone()
	d.clk.last = t

	return res, nil
}

// TransferMut implements block.TransferMut via Differentiate.
func (d *VectorDifferentiator) TransferMut(t float64, v *matrix.Vector) (*matrix.Vector, error) {
	return d.Differentiate(t, v)
}

// Reset restores the previous sample to (start time, init).
func (d *VectorDifferentiator) Reset() {
	d.lastValue = d.init.Clone()
	d.clk.reset()
}
