// Package block defines the three roles a signal block can play.
//
// A Source produces a Value at a given time, a Sink consumes one, and a
// Transfer maps an input Value to an output Value. Each role comes in a pure
// form, callable on a shared block, and a mutating form that stateful blocks
// (integrators, differentiators, recorders) implement directly. Any pure
// block can be lifted to its mutating form with AsSourceMut, AsSinkMut or
// AsTransferMut; the *Func adapters satisfy both forms at once.
//
// Time is a caller-owned float64; blocks never read a clock. Blocks are not
// safe for concurrent use unless they say so.
package block

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsignal/value"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates times and inputs of different length in Drive.
	ErrLengthMismatch = errors.New("block: times and inputs differ in length")

	// ErrNilBlock indicates a nil block handed to an adapter or Drive.
	ErrNilBlock = errors.New("block: nil block")
)

// Source produces a value as a pure function of time.
type Source[V value.Value] interface {
	Output(t float64) V
}

// SourceMut produces a value and may advance internal state.
type SourceMut[V value.Value] interface {
	OutputMut(t float64) V
}

// Sink observes a value at a given time.
type Sink[V value.Value] interface {
	Input(t float64, v V)
}

// SinkMut observes a value and may record it.
type SinkMut[V value.Value] interface {
	InputMut(t float64, v V)
}

// Transfer maps an input to an output without changing state.
type Transfer[I, O value.Value] interface {
	Transfer(t float64, in I) (O, error)
}

// TransferMut maps an input to an output, advancing accumulated state.
// Implementations must leave their state untouched when they return an error.
type TransferMut[I, O value.Value] interface {
	TransferMut(t float64, in I) (O, error)
}

type sourceMut[V value.Value] struct{ src Source[V] }

func (s sourceMut[V]) OutputMut(t float64) V { return s.src.Output(t) }

// AsSourceMut lifts a pure Source into the mutating form.
func AsSourceMut[V value.Value](src Source[V]) SourceMut[V] {
	if m, ok := src.(SourceMut[V]); ok {
		return m
	}

	return sourceMut[V]{src: src}
}

type sinkMut[V value.Value] struct{ sink Sink[V] }

func (s sinkMut[V]) InputMut(t float64, v V) { s.sink.Input(t, v) }

// AsSinkMut lifts a pure Sink into the mutating form.
func AsSinkMut[V value.Value](sink Sink[V]) SinkMut[V] {
	if m, ok := sink.(SinkMut[V]); ok {
		return m
	}

	return sinkMut[V]{sink: sink}
}

type transferMut[I, O value.Value] struct{ tr Transfer[I, O] }

func (b transferMut[I, O]) TransferMut(t float64, in I) (O, error) { return b.tr.Transfer(t, in) }

// AsTransferMut lifts a pure Transfer into the mutating form.
func AsTransferMut[I, O value.Value](tr Transfer[I, O]) TransferMut[I, O] {
	if m, ok := tr.(TransferMut[I, O]); ok {
		return m
	}

	return transferMut[I, O]{tr: tr}
}

// SourceFunc adapts a plain function to Source and SourceMut.
type SourceFunc[V value.Value] func(t float64) V

// Output calls f(t).
func (f SourceFunc[V]) Output(t float64) V { return f(t) }

// OutputMut calls f(t).
func (f SourceFunc[V]) OutputMut(t float64) V { return f(t) }

// SinkFunc adapts a plain function to Sink and SinkMut.
type SinkFunc[V value.Value] func(t float64, v V)

// Input calls f(t, v).
func (f SinkFunc[V]) Input(t float64, v V) { f(t, v) }

// InputMut calls f(t, v).
func (f SinkFunc[V]) InputMut(t float64, v V) { f(t, v) }

// TransferFunc adapts a plain function to Transfer and TransferMut.
type TransferFunc[I, O value.Value] func(t float64, in I) (O, error)

// Transfer calls f(t, in).
func (f TransferFunc[I, O]) Transfer(t float64, in I) (O, error) { return f(t, in) }

// TransferMut calls f(t, in).
func (f TransferFunc[I, O]) TransferMut(t float64, in I) (O, error) { return f(t, in) }

// Drive feeds inputs[i] at times[i] to b, in order, and collects the outputs.
// It stops at the first failing sample and returns the outputs produced so
// far together with the error, annotated with the sample index.
func Drive[I, O value.Value](b TransferMut[I, O], times []float64, inputs []I) ([]O, error) {
	if b == nil {
		return nil, ErrNilBlock
	}
	if len(times) != len(inputs) {
		return nil, fmt.Errorf("Drive: %d times, %d inputs: %w", len(times), len(inputs), ErrLengthMismatch)
	}
	out := make([]O, 0, len(times))
	for i, t := range times {
		o, err := b.TransferMut(t, inputs[i])
		if err != nil {
			return out, fmt.Errorf("Drive: sample %d at t=%g: %w", i, t, err)
		}
		out = append(out, o)
	}

	return out, nil
}

// Sample evaluates src at every time in times.
func Sample[V value.Value](src SourceMut[V], times []float64) []V {
	out := make([]V, len(times))
	for i, t := range times {
		out[i] = src.OutputMut(t)
	}

	return out
}
