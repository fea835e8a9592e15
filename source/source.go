// Package source provides stateless signal generators.
package source

import (
	"math"

	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/value"
)

// Step outputs init before stepTime and end from stepTime on.
type Step struct {
	init     float64
	end      float64
	stepTime float64
}

var _ block.Source[float64] = Step{}

// NewStep returns a step from init to end at stepTime.
func NewStep(init, end, stepTime float64) Step {
	return Step{init: init, end: end, stepTime: stepTime}
}

// Init returns the output before the step.
func (s Step) Init() float64 { return s.init }

// End returns the output from the step time on.
func (s Step) End() float64 { return s.end }

// StepTime returns the time at which the output switches to End.
func (s Step) StepTime() float64 { return s.stepTime }

// Output implements block.Source.
func (s Step) Output(t float64) float64 {
	if t < s.stepTime {
		return s.init
	}

	return s.end
}

// OutputMut implements block.SourceMut.
func (s Step) OutputMut(t float64) float64 { return s.Output(t) }

// Constant outputs a copy of the same value at every time.
type Constant[V value.Value] struct {
	v V
}

// NewConstant stores a copy of v.
func NewConstant[V value.Value](v V) Constant[V] {
	return Constant[V]{v: value.Copy(v)}
}

// Output implements block.Source.
func (c Constant[V]) Output(float64) V { return value.Copy(c.v) }

// OutputMut implements block.SourceMut.
func (c Constant[V]) OutputMut(t float64) V { return c.Output(t) }

// Ramp outputs initial until start, then grows linearly with slope.
type Ramp struct {
	Slope   float64
	Start   float64
	Initial float64
}

var _ block.Source[float64] = Ramp{}

// Output implements block.Source.
func (r Ramp) Output(t float64) float64 {
	if t < r.Start {
		return r.Initial
	}

	return r.Initial + r.Slope*(t-r.Start)
}

// OutputMut implements block.SourceMut.
func (r Ramp) OutputMut(t float64) float64 { return r.Output(t) }

// Sine outputs Bias + Amplitude*sin(2π·Frequency·t + Phase).
type Sine struct {
	Amplitude float64
	Frequency float64 // Hz
	Phase     float64 // radians
	Bias      float64
}

// Output implements block.Source.
func (s Sine) Output(t float64) float64 {
	return s.Bias + s.Amplitude*math.Sin(2*math.Pi*s.Frequency*t+s.Phase)
}

// OutputMut implements block.SourceMut.
func (s Sine) OutputMut(t float64) float64 { return s.Output(t) }
