package gfx

import "image/color"

// Color is a 16bpp pixel: rrrrrggggggbbbbb.
type Color uint16

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	rr := Color(r>>3) & 0x1F
	gg := Color(g>>2) & 0x3F
	bb := Color(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands the color back to 8-bit channels.
func (c Color) RGB888() (r, g, b uint8) {
	rr := (c >> 11) & 0x1F
	gg := (c >> 5) & 0x3F
	bb := c & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB888()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xFF}.RGBA()
}

// FromRGBA converts a color.RGBA, ignoring alpha.
func FromRGBA(c color.RGBA) Color { return RGB(c.R, c.G, c.B) }
