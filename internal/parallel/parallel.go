// Package parallel runs data-parallel loops over index ranges.
//
// Work is split into contiguous chunks and fanned out to a bounded errgroup.
// Ranges at or below the configured grain run inline on the caller's
// goroutine, so small vectors never pay for goroutine startup.
//
// Reduce is a lock-free fold: every chunk produces its own partial result and
// the partials are merged pairwise in chunk order once all workers finish.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the minimum number of elements handed to one worker.
const DefaultGrain = 2048

// Config bounds how a loop is split.
// Zero values select the defaults (DefaultGrain, GOMAXPROCS workers).
type Config struct {
	Grain   int // minimum chunk length
	Workers int // maximum concurrent chunks
}

// normalize resolves zero or negative fields to defaults.
func (c Config) normalize() Config {
	if c.Grain <= 0 {
		c.Grain = DefaultGrain
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	return c
}

// Chunks returns the [lo,hi) bounds For and Reduce will use for n elements.
// Complexity: O(chunks).
func (c Config) Chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	c = c.normalize()

	size := (n + c.Workers - 1) / c.Workers
	if size < c.Grain {
		size = c.Grain
	}

	out := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}

	return out
}

// For calls fn once per chunk of [0,n). Chunks never overlap, so fn may write
// to disjoint parts of a shared slice without synchronization.
func For(n int, cfg Config, fn func(lo, hi int)) {
	chunks := cfg.Chunks(n)
	switch len(chunks) {
	case 0:
		return
	case 1:
		fn(chunks[0][0], chunks[0][1])
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.normalize().Workers)
	for _, ch := range chunks {
		lo, hi := ch[0], ch[1]
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

// Reduce folds [0,n) into a single value. fold computes one partial per chunk;
// merge combines two partials and must be associative. For n == 0 the zero
// value is returned unchanged.
func Reduce[T any](n int, cfg Config, zero T, fold func(lo, hi int) T, merge func(a, b T) T) T {
	chunks := cfg.Chunks(n)
	if len(chunks) == 0 {
		return zero
	}

	partials := make([]T, len(chunks))
	For(len(chunks), Config{Grain: 1, Workers: cfg.Workers}, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			partials[k] = fold(chunks[k][0], chunks[k][1])
		}
	})

	// Pairwise tree merge; order is fixed by chunk index.
	for len(partials) > 1 {
		next := partials[:(len(partials)+1)/2]
		for i := 0; i < len(partials)/2; i++ {
			next[i] = merge(partials[2*i], partials[2*i+1])
		}
		if len(partials)%2 == 1 {
			next[len(next)-1] = partials[len(partials)-1]
		}
		partials = next
	}

	return partials[0]
}
