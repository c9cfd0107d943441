package gfx

import "testing"

const digitBase = Color(0x200)

// digitSheet holds a digit strip at rows 0..8: cell d is painted with
// digitBase+d on its glyph columns and left transparent on column 0.
func digitSheet() Surface {
	pix := make([]Color, testWidth*testHeight)
	for i := range pix {
		pix[i] = testTransparent
	}
	for d := 0; d < 10; d++ {
		for y := 0; y < 9; y++ {
			for px := 1; px < 6; px++ {
				pix[6*d+px+y*testWidth] = digitBase + Color(d)
			}
		}
	}
	return NewSurface(pix, testWidth)
}

func newScoreBlitter() *Blitter {
	sheets := &Sheets{digitSheet(), patternSheet()}
	return NewBlitter(Config{
		ScreenWidth:  testWidth,
		ScreenHeight: testHeight,
		SliceHeight:  testSliceHeight,
		Transparent:  testTransparent,
	}, sheets)
}

func checkScore(t *testing.T, pix []Color, want [5]int) {
	t.Helper()
	l := DefaultScoreLayout
	for slot, d := range want {
		cell := l.X + (slot+1)*l.CellWidth
		for y := 0; y < testHeight; y++ {
			for px := 0; px < l.CellWidth; px++ {
				got := pix[cell+px+y*testWidth]
				expect := testBackground
				if px > 0 && y > l.Y && y < l.Y+l.Height-1 {
					expect = digitBase + Color(d)
				}
				if got != expect {
					t.Fatalf("slot %d (%d,%d) = %#04x, want %#04x", slot, cell+px, y, got, expect)
				}
			}
		}
	}
}

func TestDrawScore(t *testing.T) {
	tests := []struct {
		value uint16
		want  [5]int
	}{
		{0, [5]int{0, 0, 0, 0, 0}},
		{65535, [5]int{6, 5, 5, 3, 5}},
		{907, [5]int{0, 0, 9, 0, 7}},
	}
	for _, tt := range tests {
		b := newScoreBlitter()
		pix := renderSliced(func(sliceY int, dst View) { b.DrawScore(tt.value, sliceY, dst) })
		checkScore(t, pix, tt.want)
	}
}

func TestDrawScoreMatchesUnsliced(t *testing.T) {
	b := newScoreBlitter()
	draw := func(sliceY int, dst View) { b.DrawScore(31415, sliceY, dst) }
	sliced := renderSliced(draw)
	whole := renderWhole(draw)
	for i := range whole {
		if sliced[i] != whole[i] {
			t.Fatalf("pixel %d: sliced %#04x, unsliced %#04x", i, sliced[i], whole[i])
		}
	}
}

func TestDrawScoreOutsideBandIsNoop(t *testing.T) {
	b := newScoreBlitter()
	for _, sliceY := range []int{0, 24} {
		dst := newSlice(testSliceHeight)
		b.DrawScore(12345, sliceY, dst)
		for i, c := range dst.Pix {
			if c != testBackground {
				t.Fatalf("sliceY=%d: pixel %d = %#04x, want background", sliceY, i, c)
			}
		}
	}
}
