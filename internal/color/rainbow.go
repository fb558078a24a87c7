package color

import "math"

// segment is the width of one hue segment in the normalized domain.
const segment = 1.0 / 6

// maxT is the largest value of t fed to the ramp; t is clamped to [0, 1).
var maxT = math.Nextafter(1, 0)

// Rainbow maps t in [0, 1) onto the six-segment hue ramp. Within each
// segment one channel is held at 255, one at 0, and the third ramps
// linearly with the offset into the segment. Values outside [0, 1) are
// clamped, and NaN maps to red.
func Rainbow(t float64) ColorU8 {
	if !(t > 0) {
		t = 0
	} else if t > maxT {
		t = maxT
	}

	switch {
	case t < 1*segment: // red → magenta
		return ColorU8{R: 255, G: 0, B: rampUp(t, 0), A: 255}
	case t < 2*segment: // magenta → blue
		return ColorU8{R: rampDown(t, 1), G: 0, B: 255, A: 255}
	case t < 3*segment: // blue → cyan
		return ColorU8{R: 0, G: rampUp(t, 2), B: 255, A: 255}
	case t < 4*segment: // cyan → green
		return ColorU8{R: 0, G: 255, B: rampDown(t, 3), A: 255}
	case t < 5*segment: // green → yellow
		return ColorU8{R: rampUp(t, 4), G: 255, B: 0, A: 255}
	default: // yellow → red
		return ColorU8{R: 255, G: rampDown(t, 5), B: 0, A: 255}
	}
}

// offset returns 255 times the fractional position of t inside segment k.
func offset(t float64, k int) float64 {
	return 255 * (t - float64(k)*segment) / segment
}

// rampUp is the rising channel of segment k, truncated to a byte.
func rampUp(t float64, k int) uint8 {
	return toByte(offset(t, k))
}

// rampDown is the falling channel of segment k, truncated to a byte.
func rampDown(t float64, k int) uint8 {
	return toByte(255 - offset(t, k))
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Colorize maps an escape count under the given budget to a color.
// Negative counts are unresolved and map to Transparent.
func Colorize(count, budget int) ColorU8 {
	return NewScale(budget).Color(count)
}

// Scale normalizes counts by the log of one budget.
// It caches 1/ln(budget) so a colorize pass takes one log per pixel.
type Scale struct {
	invLogBudget float64
}

// NewScale returns the normalization for budget. A budget <= 1 normalizes
// every count to 0.
func NewScale(budget int) Scale {
	if budget <= 1 {
		return Scale{}
	}
	return Scale{invLogBudget: 1 / math.Log(float64(budget))}
}

// T returns the normalized position ln(count)/ln(budget), not yet clamped.
func (s Scale) T(count int) float64 {
	if count <= 1 {
		return 0
	}
	return math.Log(float64(count)) * s.invLogBudget
}

// Color maps count to its ramp color, or Transparent when count < 0.
func (s Scale) Color(count int) ColorU8 {
	if count < 0 {
		return Transparent
	}
	return Rainbow(s.T(count))
}
