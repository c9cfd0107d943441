package gfx

// Blitter composites spritesheet art onto one slice at a time.
//
// The destination View passed to each call is the slice buffer: its stride is
// the screen width and its height is the slice height. Coordinates are screen
// coordinates; the slice top (sliceY) maps them into the buffer.
//
// Horizontal ranges are not clipped. Callers keep sprites on screen.
type Blitter struct {
	Sheets      *Sheets
	Transparent Color
	Score       ScoreLayout
}

// NewBlitter returns a Blitter using cfg's transparency color and the default
// score layout.
func NewBlitter(cfg Config, sheets *Sheets) *Blitter {
	return &Blitter{
		Sheets:      sheets,
		Transparent: cfg.Transparent,
		Score:       DefaultScoreLayout,
	}
}

// DrawSprite draws sp at its own (X, Y), reading the sheet at the same
// coordinates.
func (b *Blitter) DrawSprite(sp Sprite, sliceY int, dst View) {
	b.blit(b.Sheets.Resolve(sp.Sheet), sp.W, sp.H, sliceY, dst, sp.X, sp.Y, sp.X, sp.Y)
}

// DrawText draws sp at screen (x, y). The sprite's (X, Y) is the source
// offset of the art inside its sheet.
func (b *Blitter) DrawText(sp Sprite, sliceY int, dst View, x, y int) {
	b.blit(b.Sheets.Resolve(sp.Sheet), sp.W, sp.H, sliceY, dst, x, y, sp.X, sp.Y)
}

func (b *Blitter) blit(src Surface, w, h, sliceY int, dst View, dx, dy, sx, sy int) {
	yMin, yMax, ok := sliceRows(dy, dy+h, sliceY, sliceY+dst.Height())
	if !ok {
		return
	}

	xMax := dx + w - 1
	for py := yMin; py <= yMax; py++ {
		srcRow := py - dy + sy
		dstRow := py - sliceY
		for px := dx; px <= xMax; px++ {
			c := src.At(px-dx+sx, srcRow)
			if c == b.Transparent {
				continue
			}
			dst.Set(px, dstRow, c)
		}
	}
}

// sliceRows intersects the half-open row ranges [top, bottom) and
// [sliceY, sliceEnd) and returns the inclusive screen rows to draw.
func sliceRows(top, bottom, sliceY, sliceEnd int) (yMin, yMax int, ok bool) {
	if sliceY >= bottom || top >= sliceEnd {
		return 0, 0, false
	}
	yMin = top
	if sliceY > yMin {
		yMin = sliceY
	}
	yMax = bottom - 1
	if sliceEnd-1 < yMax {
		yMax = sliceEnd - 1
	}
	return yMin, yMax, true
}
