// Package color converts escape counts into RGBA8 pixels.
//
// The mapping is a six-segment hue ramp over a log-normalized count:
// red → magenta → blue → cyan → green → yellow → red. Unresolved counts
// map to fully transparent black.
package color

import imgcolor "image/color"

// ColorU8 represents a color with uint8 components in [0,255].
// Alpha is straight (not premultiplied); the ramp only produces 0 or 255.
type ColorU8 struct {
	R, G, B, A uint8
}

// Transparent is the color of unresolved pixels.
var Transparent = ColorU8{}

// RGBA implements image/color.Color.
func (c ColorU8) RGBA() (r, g, b, a uint32) {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Put writes c as four bytes (R, G, B, A) at the start of dst.
// dst must hold at least 4 bytes.
func (c ColorU8) Put(dst []byte) {
	_ = dst[3] // bounds check hint
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
