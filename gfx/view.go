package gfx

// View is a 2D window over a flat pixel slice with a fixed row stride.
//
// Pixel (x, y) lives at Pix[x+y*Stride]. Accessors do not clip: an
// out-of-range coordinate hits the slice bounds check and panics.
type View struct {
	Pix    []Color
	Stride int
}

// NewView wraps pix with the given row stride.
func NewView(pix []Color, stride int) View {
	return View{Pix: pix, Stride: stride}
}

// Height returns the number of complete rows in the view.
func (v View) Height() int {
	if v.Stride <= 0 {
		return 0
	}
	return len(v.Pix) / v.Stride
}

func (v View) index(x, y int) int { return x + y*v.Stride }

func (v View) At(x, y int) Color { return v.Pix[v.index(x, y)] }

func (v View) Set(x, y int, c Color) { v.Pix[v.index(x, y)] = c }

// Band returns rows [y, y+h) as a flat slice sharing storage with v.
func (v View) Band(y, h int) []Color {
	return v.Pix[y*v.Stride : (y+h)*v.Stride]
}

// Fill sets every pixel to c.
func (v View) Fill(c Color) {
	for i := range v.Pix {
		v.Pix[i] = c
	}
}
