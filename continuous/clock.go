package continuous

import "github.com/katalvlaran/lvsignal/logging"

// clock tracks the last sample time of a block.
type clock struct {
	start float64
	last  float64
}

func newClock(start float64) clock { return clock{start: start, last: start} }

func (c *clock) reset() { c.last = c.start }

// step returns t - last after checking monotonicity. It does not advance
// the clock; callers commit with c.last = t once the sample succeeded.
func (c *clock) step(op string, o *Options, t float64) (float64, error) {
	dt := t - c.last
	if dt < 0 {
		if o.strict {
			return 0, continuousErrorf(op, ErrTimeRegression)
		}
		o.logger.V(logging.DEBUG).Info("time went backwards", "op", op, "t", t, "last", c.last)
	}

	return dt, nil
}
