package gfx

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
)

// Surface is an immutable full-width pixel source (background or spritesheet).
//
// Surfaces are owned by the caller and must not change while a frame renders.
type Surface struct {
	v View
	h int
}

// NewSurface wraps pix as a surface of the given width.
func NewSurface(pix []Color, width int) Surface {
	v := NewView(pix, width)
	return Surface{v: v, h: v.Height()}
}

func (s Surface) Width() int  { return s.v.Stride }
func (s Surface) Height() int { return s.h }

// Pix exposes the backing pixels read-only by convention.
func (s Surface) Pix() []Color { return s.v.Pix }

func (s Surface) At(x, y int) Color { return s.v.At(x, y) }

// Band returns rows [y, y+h).
func (s Surface) Band(y, h int) []Color { return s.v.Band(y, h) }

// SheetID names one of the fixed spritesheets.
type SheetID uint8

const (
	SheetA SheetID = iota
	SheetB

	sheetCount
)

func (id SheetID) String() string {
	switch id {
	case SheetA:
		return "A"
	case SheetB:
		return "B"
	default:
		return fmt.Sprintf("SheetID(%d)", uint8(id))
	}
}

// Sheets is the fixed set of spritesheets a sprite may reference.
type Sheets [sheetCount]Surface

// Resolve returns the surface for id. Unknown ids fall back to SheetA.
func (s *Sheets) Resolve(id SheetID) Surface {
	if id >= sheetCount {
		return s[SheetA]
	}
	return s[id]
}

// Sprite is a rectangle of spritesheet art.
//
// For DrawSprite, (X, Y) is both the sheet location and the screen position.
// For DrawText, (X, Y) is the sheet location only.
type Sprite struct {
	X, Y  int
	W, H  int
	Sheet SheetID
}

// Displayer adapts a writable View to drivers.Displayer so tinyfont and other
// TinyGo drawing code can paint spritesheet art.
type Displayer struct {
	V View
}

var _ drivers.Displayer = (*Displayer)(nil)

func (d *Displayer) Size() (x, y int16) {
	return int16(d.V.Stride), int16(d.V.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.V.Stride || iy >= d.V.Height() {
		return
	}
	d.V.Set(ix, iy, FromRGBA(c))
}

func (d *Displayer) Display() error { return nil }
