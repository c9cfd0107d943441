package hal

import "slicer/gfx"

// encodeBigEndian writes px into dst as big-endian RGB565, the order panels
// expect on the wire. It returns the number of bytes written.
func encodeBigEndian(dst []byte, px []gfx.Color) int {
	n := 0
	for _, p := range px {
		if n+1 >= len(dst) {
			break
		}
		dst[n] = byte(p >> 8)
		dst[n+1] = byte(p)
		n += 2
	}
	return n
}

// ExpandRGBA converts RGB565 pixels into an RGBA byte slice (4 bytes per pixel).
func ExpandRGBA(dst []byte, px []gfx.Color) {
	for i, p := range px {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		r, g, b := p.RGB888()
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
