// Package sink provides blocks that consume signals.
package sink

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/matrix"
	"github.com/katalvlaran/lvsignal/value"
)

// ErrEmpty indicates a conversion requested on a recorder with no samples.
var ErrEmpty = errors.New("sink: no samples recorded")

// Recorder keeps a copy of every (t, v) sample it receives, in arrival order.
type Recorder[V value.Value] struct {
	times   []float64
	samples []V
}

var _ block.SinkMut[float64] = (*Recorder[float64])(nil)

// NewRecorder returns an empty recorder with room for capacity samples.
func NewRecorder[V value.Value](capacity int) *Recorder[V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Recorder[V]{
		times:   make([]float64, 0, capacity),
		samples: make([]V, 0, capacity),
	}
}

// InputMut records a copy of v at time t.
func (r *Recorder[V]) InputMut(t float64, v V) {
	r.times = append(r.times, t)
	r.samples = append(r.samples, value.Copy(v))
}

// Len returns the number of samples.
func (r *Recorder[V]) Len() int { return len(r.samples) }

// Times returns a copy of the sample times.
func (r *Recorder[V]) Times() []float64 {
	return append([]float64(nil), r.times...)
}

// Samples returns copies of the recorded values.
func (r *Recorder[V]) Samples() []V {
	out := make([]V, len(r.samples))
	for i, s := range r.samples {
		out[i] = value.Copy(s)
	}

	return out
}

// Reset drops every sample, keeping the allocated capacity.
func (r *Recorder[V]) Reset() {
	r.times = r.times[:0]
	clear(r.samples)
	r.samples = r.samples[:0]
}

// Series returns the values of a scalar recorder as a Vector.
func Series(r *Recorder[float64]) *matrix.Vector {
	return matrix.FromSlice(r.samples)
}

// TimeVector returns the sample times as a Vector.
func TimeVector[V value.Value](r *Recorder[V]) *matrix.Vector {
	return matrix.FromSlice(r.times)
}

// Stack returns the samples of a vector recorder as the rows of a Matrix.
// Errors: ErrEmpty, matrix.ErrRaggedRows when sample dimensions differ.
func Stack(r *Recorder[*matrix.Vector]) (*matrix.Matrix, error) {
	if len(r.samples) == 0 {
		return nil, fmt.Errorf("Stack: %w", ErrEmpty)
	}
	m, err := matrix.FromRows(r.samples)
	if err != nil {
		return nil, fmt.Errorf("Stack: %w", err)
	}

	return m, nil
}
