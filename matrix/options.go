// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the data-parallel kernel policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants,
//   - Configure, which installs a policy for every Vector/Matrix kernel.
//
// Design goals:
//   - No dead switches: each flag impacts how kernels split work and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Results never depend on the policy except for floating-point summation order
//     in reductions (Norm, Dot, Sum), which is documented as implementation-defined.
package matrix

import (
	"sync/atomic"

	"github.com/katalvlaran/lvsignal/internal/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGrain is the minimum number of elements (or rows) handed to one worker.
	// Containers shorter than this run inline on the calling goroutine.
	DefaultGrain = parallel.DefaultGrain

	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers when left at zero.
	DefaultWorkers = 0

	// DefaultEpsilon is the tolerance used by ApproxEqual helpers.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicGrainInvalid   = "matrix: WithGrain: grain must be > 0"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective kernel policy after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	grain   int // > 0; DefaultGrain
	workers int // >= 0; DefaultWorkers (0 => GOMAXPROCS)
}

// Grain reports the effective minimum chunk length.
func (o Options) Grain() int { return o.grain }

// Workers reports the configured worker bound (0 means GOMAXPROCS).
func (o Options) Workers() int { return o.workers }

// WithGrain sets the minimum chunk length for data-parallel kernels.
// Panics if grain <= 0.
//
// AI-Hints:
//   - Very small grains only add scheduling overhead; keep it in the thousands
//     for elementwise float64 work.
func WithGrain(grain int) Option {
	if grain <= 0 {
		panic(panicGrainInvalid)
	}

	return func(o *Options) { o.grain = grain }
}

// WithWorkers bounds the number of concurrently running chunks.
// Zero restores the GOMAXPROCS default; negative values panic.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithSerial forces every kernel to run on the calling goroutine.
// Useful for bit-reproducible reductions in tests and benchmarks.
func WithSerial() Option {
	return func(o *Options) { o.workers = 1 }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins. Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		grain:   DefaultGrain,
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// policy holds the active kernel policy shared by all containers.
var policy atomic.Pointer[Options]

func init() {
	o := gatherOptions()
	policy.Store(&o)
}

// Configure installs a new kernel policy for all subsequent Vector/Matrix
// operations and returns the previous one so callers (tests) can restore it.
//
// Notes:
//   - Safe for concurrent use; operations already in flight keep the policy
//     they started with.
func Configure(opts ...Option) (previous Options) {
	o := gatherOptions(opts...)

	return *policy.Swap(&o)
}

// Restore reinstalls a policy previously returned by Configure.
func Restore(o Options) {
	policy.Store(&o)
}

// current returns the active policy as a parallel.Config.
func current() parallel.Config {
	o := policy.Load()

	return parallel.Config{Grain: o.grain, Workers: o.workers}
}
