package gfx

// ScoreLayout places the five-digit score overlay.
//
// The band covers screen rows [Y, Y+Height); glyph pixels are drawn on the
// rows strictly inside it, and on columns 1..CellWidth-1 of each cell. The
// cursor starts at X and advances one cell before each digit.
type ScoreLayout struct {
	X         int
	Y         int
	Height    int
	CellWidth int

	// Digit d's art starts at sheet column SrcX + d*CellWidth, row SrcY.
	Sheet      SheetID
	SrcX, SrcY int
}

// DefaultScoreLayout draws the score on rows 12..18, first glyph at x=19.
var DefaultScoreLayout = ScoreLayout{
	X:         12,
	Y:         11,
	Height:    9,
	CellWidth: 6,
	Sheet:     SheetA,
}

// scoreDivisor is 10^4: five digit slots.
const scoreDivisor = 10000

// DrawScore renders value as five digits, leading zeros included.
func (b *Blitter) DrawScore(value uint16, sliceY int, dst View) {
	l := b.Score
	sliceEnd := sliceY + dst.Height()
	if sliceY >= l.Y+l.Height || sliceEnd <= l.Y {
		return
	}

	yMin, yMax := l.Y+1, l.Y+l.Height-2
	if sliceY > yMin {
		yMin = sliceY
	}
	if sliceEnd-1 < yMax {
		yMax = sliceEnd - 1
	}

	sheet := b.Sheets.Resolve(l.Sheet)
	cursor := l.X
	remainder := int(value)
	for divisor := scoreDivisor; divisor > 0; divisor /= 10 {
		digit := remainder / divisor
		remainder %= divisor
		cursor += l.CellWidth

		for py := yMin; py <= yMax; py++ {
			srcRow := l.SrcY + py - l.Y
			dstRow := py - sliceY
			for px := 1; px < l.CellWidth; px++ {
				c := sheet.At(l.SrcX+px+l.CellWidth*digit, srcRow)
				if c == b.Transparent {
					continue
				}
				dst.Set(cursor+px, dstRow, c)
			}
		}
	}
}
