package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/internal/parallel"
)

func TestChunks_CoverRangeWithoutOverlap(t *testing.T) {
	cfg := parallel.Config{Grain: 3, Workers: 4}
	chunks := cfg.Chunks(10)
	require.NotEmpty(t, chunks)

	next := 0
	for _, ch := range chunks {
		assert.Equal(t, next, ch[0], "chunks must be contiguous")
		assert.Greater(t, ch[1], ch[0])
		next = ch[1]
	}
	assert.Equal(t, 10, next)
}

func TestChunks_Empty(t *testing.T) {
	assert.Nil(t, parallel.Config{}.Chunks(0))
	assert.Nil(t, parallel.Config{}.Chunks(-1))
}

func TestChunks_BelowGrainIsSingleChunk(t *testing.T) {
	chunks := parallel.Config{Grain: 100, Workers: 8}.Chunks(50)
	require.Len(t, chunks, 1)
	assert.Equal(t, [2]int{0, 50}, chunks[0])
}

func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	const n = 10_000
	seen := make([]int32, n)
	parallel.For(n, parallel.Config{Grain: 64, Workers: 8}, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times", i, c)
		}
	}
}

func TestReduce_SumMatchesSerial(t *testing.T) {
	const n = 12_345
	data := make([]float64, n)
	var want float64
	for i := range data {
		data[i] = float64(i % 7)
		want += data[i]
	}

	for _, workers := range []int{1, 2, 3, 8} {
		got := parallel.Reduce(n, parallel.Config{Grain: 100, Workers: workers}, 0.0,
			func(lo, hi int) float64 {
				var s float64
				for i := lo; i < hi; i++ {
					s += data[i]
				}
				return s
			},
			func(a, b float64) float64 { return a + b })
		assert.InDelta(t, want, got, 1e-9, "workers=%d", workers)
	}
}

func TestReduce_ZeroLengthReturnsZero(t *testing.T) {
	got := parallel.Reduce(0, parallel.Config{}, 42,
		func(lo, hi int) int { return 0 },
		func(a, b int) int { return a + b })
	assert.Equal(t, 42, got)
}
