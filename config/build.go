package config

import (
	"fmt"

	"github.com/katalvlaran/lvsignal/block"
	"github.com/katalvlaran/lvsignal/continuous"
	"github.com/katalvlaran/lvsignal/discontinuous"
	"github.com/katalvlaran/lvsignal/source"
)

// BuildTransfer constructs the scalar transfer block declared as name.
// extra options are appended after the declared ones, so a caller can add a
// logger or override the start time.
func (c *Config) BuildTransfer(name string, extra ...continuous.Option) (block.TransferMut[float64, float64], error) {
	b, err := c.Block(name)
	if err != nil {
		return nil, err
	}

	switch b.Kind {
	case KindIntegrator:
		return continuous.NewIntegrator(b.Init, append(b.continuousOptions(), extra...)...), nil
	case KindDifferentiator:
		return continuous.NewDifferentiator(b.Init, append(b.continuousOptions(), extra...)...), nil
	case KindSaturation:
		s, err := discontinuous.NewSaturation(b.Top, b.Bottom)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", name, err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("%w: %q is a %s", ErrWrongRole, name, b.Kind)
}

// BuildSource constructs the scalar source declared as name.
func (c *Config) BuildSource(name string) (block.SourceMut[float64], error) {
	b, err := c.Block(name)
	if err != nil {
		return nil, err
	}

	switch b.Kind {
	case KindStep:
		return source.NewStep(b.Init, b.End, b.StepTime), nil
	case KindConstant:
		return source.NewConstant(b.Value), nil
	case KindRamp:
		return source.Ramp{Slope: b.Slope, Start: b.StartTime, Initial: b.Initial}, nil
	case KindSine:
		return source.Sine{Amplitude: b.Amplitude, Frequency: b.Frequency, Phase: b.Phase, Bias: b.Bias}, nil
	}

	return nil, fmt.Errorf("%w: %q is a %s", ErrWrongRole, name, b.Kind)
}

func (b BlockConfig) continuousOptions() []continuous.Option {
	opts := []continuous.Option{continuous.WithStartTime(b.StartTime)}
	if b.Derivative {
		opts = append(opts, continuous.WithDerivative())
	}
	if b.Strict {
		opts = append(opts, continuous.WithStrictTime())
	}

	return opts
}
