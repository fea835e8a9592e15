// Package continuous provides stateful continuous-time blocks: integrators
// and differentiators over scalar and vector signals.
//
// Every block implements block.TransferMut. Callers own the time axis and
// should drive a block with non-decreasing timestamps; by default a step
// backwards is logged and integrated over a negative interval, while
// WithStrictTime turns it into ErrTimeRegression. A failed call never
// changes block state.
package continuous
