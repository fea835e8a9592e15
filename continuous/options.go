package continuous

import "github.com/go-logr/logr"

// Defaults shared by every block in this package.
const (
	// DefaultStartTime is the baseline time assumed before the first sample.
	DefaultStartTime = 0.0
)

// Option configures a continuous block at construction.
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	derivative bool
	startTime  float64
	strict     bool
	logger     logr.Logger
}

// WithDerivative switches an integrator to rectangular accumulation
// (past += v*dt) instead of the trapezoidal rule. Ignored by differentiators.
func WithDerivative() Option {
	return func(o *Options) { o.derivative = true }
}

// WithStartTime sets the baseline time used by the first call after
// construction or Reset. The default baseline is 0, so a first sample at
// t=5 integrates over [0,5] against the initial value.
func WithStartTime(t float64) Option {
	return func(o *Options) { o.startTime = t }
}

// WithStrictTime makes the block reject t < last time with ErrTimeRegression
// rather than integrating over a negative interval.
func WithStrictTime() Option {
	return func(o *Options) { o.strict = true }
}

// WithLogger routes diagnostics (time regressions, zero steps) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		startTime: DefaultStartTime,
		logger:    logr.Discard(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
