package app

import (
	"image/color"

	"slicer/gfx"

	"tinygo.org/x/tinyfont"
)

var (
	white  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	yellow = color.RGBA{R: 0xFF, G: 0xE0, B: 0x40, A: 0xFF}
	cyan   = color.RGBA{R: 0x40, G: 0xE0, B: 0xFF, A: 0xFF}
	navy   = color.RGBA{R: 0x10, G: 0x18, B: 0x50, A: 0xFF}
)

// Banner text art lives in sheet A below the digit strip.
const (
	bannerText = "SLICED"
	bannerY    = 20
	bannerH    = 8
)

// Badges are drawn in sheet B at their screen positions.
var badges = []gfx.Sprite{
	{X: 4, Y: 104, W: 26, H: 20, Sheet: gfx.SheetB},
	{X: 130, Y: 104, W: 26, H: 20, Sheet: gfx.SheetB},
}

type atlas struct {
	sheets gfx.Sheets
	banner gfx.Sprite
	badges []gfx.Sprite
	bg     gfx.Surface
}

func newAtlas(cfg gfx.Config) *atlas {
	a := &atlas{
		banner: gfx.Sprite{X: 0, Y: bannerY, W: 4*len(bannerText) + 2, H: bannerH, Sheet: gfx.SheetA},
	}
	for _, b := range badges {
		if b.X+b.W <= cfg.ScreenWidth && b.Y+b.H <= cfg.ScreenHeight {
			a.badges = append(a.badges, b)
		}
	}
	a.sheets[gfx.SheetA] = glyphSheet(cfg)
	a.sheets[gfx.SheetB] = badgeSheet(cfg, a.badges)
	a.bg = background(cfg)
	return a
}

func blankView(cfg gfx.Config) gfx.View {
	v := gfx.NewView(make([]gfx.Color, cfg.ScreenPixels()), cfg.ScreenWidth)
	v.Fill(cfg.Transparent)
	return v
}

// glyphSheet holds the score digits (rows 0..8, 6 px cells, glyph in columns
// 1..5) and the banner text.
func glyphSheet(cfg gfx.Config) gfx.Surface {
	v := blankView(cfg)
	d := &gfx.Displayer{V: v}

	for digit := 0; digit < 10; digit++ {
		tinyfont.DrawChar(d, &tinyfont.TomThumb, int16(6*digit+2), 7, rune('0'+digit), yellow)
	}

	for y := bannerY; y < bannerY+bannerH; y++ {
		for x := 0; x < 4*len(bannerText)+2; x++ {
			v.Set(x, y, gfx.FromRGBA(navy))
		}
	}
	tinyfont.WriteLine(d, &tinyfont.TomThumb, 1, bannerY+6, bannerText, white)

	return gfx.NewSurface(v.Pix, cfg.ScreenWidth)
}

func badgeSheet(cfg gfx.Config, badges []gfx.Sprite) gfx.Surface {
	v := blankView(cfg)
	d := &gfx.Displayer{V: v}

	for i, b := range badges {
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				edge := x == b.X || x == b.X+b.W-1 || y == b.Y || y == b.Y+b.H-1
				// Cut the corners so transparency shows.
				corner := (x == b.X || x == b.X+b.W-1) && (y == b.Y || y == b.Y+b.H-1)
				switch {
				case corner:
				case edge:
					v.Set(x, y, gfx.FromRGBA(cyan))
				default:
					v.Set(x, y, gfx.FromRGBA(navy))
				}
			}
		}
		label := "DMA"
		if i == 1 {
			label = "CPU"
		}
		tinyfont.WriteLine(d, &tinyfont.TomThumb, int16(b.X+6), int16(b.Y+13), label, white)
	}

	return gfx.NewSurface(v.Pix, cfg.ScreenWidth)
}

// background is a diagonal gradient with a faint grid every 16 px.
func background(cfg gfx.Config) gfx.Surface {
	pix := make([]gfx.Color, cfg.ScreenPixels())
	for y := 0; y < cfg.ScreenHeight; y++ {
		for x := 0; x < cfg.ScreenWidth; x++ {
			c := gfx.RGB(uint8(x*255/cfg.ScreenWidth), uint8((x+y)/3), uint8(y*255/cfg.ScreenHeight))
			if x%16 == 0 || y%16 == 0 {
				c = gfx.RGB(0x30, 0x30, 0x30)
			}
			pix[x+y*cfg.ScreenWidth] = c
		}
	}
	return gfx.NewSurface(pix, cfg.ScreenWidth)
}
