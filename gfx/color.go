package gfx

import "image/color"

// Color is a 16-bit device color word (rrrrrggggggbbbbb).
//
// Only this file knows the channel layout; everything else treats a Color as opaque.
type Color uint16

// Encode packs a 5-bit red, 6-bit green and 5-bit blue magnitude into a Color.
// Inputs are truncated to their low bits, not saturated.
func Encode(r, g, b uint8) Color {
	rr := uint16(r) & 0x1F
	gg := uint16(g) & 0x3F
	bb := uint16(b) & 0x1F
	return Color(rr<<11 | gg<<5 | bb)
}

// Encode555 packs three 0..31 magnitudes. Green is widened to the device's
// 6-bit field: the 5-bit value fills the high bits and its MSB is repeated in bit 0.
func Encode555(r, g, b uint8) Color {
	g &= 0x1F
	return Encode(r, g<<1|g>>4, b)
}

// Channels returns the 5/6/5-bit channel magnitudes of c.
func (c Color) Channels() (r, g, b uint8) {
	r = uint8(c>>11) & 0x1F
	g = uint8(c>>5) & 0x3F
	b = uint8(c) & 0x1F
	return r, g, b
}

// FromRGBA converts an 8-bit-per-channel color, dropping the low bits.
func FromRGBA(c color.RGBA) Color {
	return Encode(c.R>>3, c.G>>2, c.B>>3)
}

// RGBA expands c to 8 bits per channel.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{
		R: uint8((uint16(r) * 255) / 31),
		G: uint8((uint16(g) * 255) / 63),
		B: uint8((uint16(b) * 255) / 31),
		A: 0xFF,
	}
}

var (
	Black   = Encode(0, 0, 0)
	White   = Encode(31, 63, 31)
	Red     = Encode(31, 0, 0)
	Green   = Encode(0, 63, 0)
	Blue    = Encode(0, 0, 31)
	Yellow  = Encode(31, 63, 0)
	Cyan    = Encode(0, 63, 31)
	Magenta = Encode(31, 0, 31)
)
