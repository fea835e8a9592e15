package dtw

// MemoryMode controls how Distance stores its DP table.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)x(m+1) table; required for path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps the previous and current rows: O(m) memory, distance only.
	TwoRows

	// NoMemory keeps a single row plus one carried diagonal cell.
	NoMemory
)

// Defaults.
const (
	// DefaultWindow disables the Sakoe-Chiba band.
	DefaultWindow = -1

	// DefaultSlopePenalty adds nothing to non-diagonal steps.
	DefaultSlopePenalty = 0.0
)

// Option configures Distance.
type Option func(*Options)

// Options is the resolved configuration of one Distance call.
type Options struct {
	Window       int        // -1 = unlimited; otherwise |i-j| <= Window
	SlopePenalty float64    // added to every insertion/deletion step
	ReturnPath   bool       // backtrack the optimal alignment
	MemoryMode   MemoryMode // FullMatrix, TwoRows or NoMemory
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Window:       DefaultWindow,
		SlopePenalty: DefaultSlopePenalty,
		MemoryMode:   FullMatrix,
	}
}

// WithWindow restricts matches to the band |i-j| <= w; -1 removes the band.
func WithWindow(w int) Option {
	return func(o *Options) { o.Window = w }
}

// WithSlopePenalty charges p for every step that advances only one sequence.
func WithSlopePenalty(p float64) Option {
	return func(o *Options) { o.SlopePenalty = p }
}

// WithPath asks Distance to return the optimal warping path.
func WithPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMemoryMode selects the DP storage strategy.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) { o.MemoryMode = m }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
