// Package discontinuous holds stateless blocks whose output is a
// non-smooth function of the input.
package discontinuous

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsignal/block"
)

// ErrBadBounds indicates top < bottom or a NaN bound.
var ErrBadBounds = errors.New("discontinuous: invalid saturation bounds")

// Saturation clamps its input into [bottom, top].
type Saturation struct {
	top    float64
	bottom float64
}

var (
	_ block.Transfer[float64, float64]    = Saturation{}
	_ block.TransferMut[float64, float64] = Saturation{}
)

// NewSaturation returns a clamp with the given bounds. Infinite bounds are
// allowed and leave that side open; top == bottom pins every output.
func NewSaturation(top, bottom float64) (Saturation, error) {
	if math.IsNaN(top) || math.IsNaN(bottom) || top < bottom {
		return Saturation{}, fmt.Errorf("NewSaturation(top=%g, bottom=%g): %w", top, bottom, ErrBadBounds)
	}

	return Saturation{top: top, bottom: bottom}, nil
}

// Top returns the upper bound.
func (s Saturation) Top() float64 { return s.top }

// Bottom returns the lower bound.
func (s Saturation) Bottom() float64 { return s.bottom }

// Clamp returns min(top, max(bottom, x)). NaN passes through.
func (s Saturation) Clamp(x float64) float64 {
	return math.Min(s.top, math.Max(s.bottom, x))
}

// Transfer clamps in; t is ignored. It never fails.
func (s Saturation) Transfer(_ float64, in float64) (float64, error) {
	return s.Clamp(in), nil
}

// TransferMut is Transfer; Saturation has no state.
func (s Saturation) TransferMut(t float64, in float64) (float64, error) {
	return s.Transfer(t, in)
}
