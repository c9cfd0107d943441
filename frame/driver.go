// Package frame renders whole frames slice by slice through the DMA pair.
package frame

import (
	"fmt"

	"slicer/dma"
	"slicer/gfx"
	"slicer/hal"
)

// Text is a glyph sprite drawn at an explicit screen position.
type Text struct {
	Glyph gfx.Sprite
	X, Y  int
}

// Scene is everything composited over the background for one frame.
type Scene struct {
	Background gfx.Surface
	Sprites    []gfx.Sprite
	Texts      []Text

	ShowScore bool
	Score     uint16
}

// Stats counts frames rendered by a Driver.
type Stats struct {
	Frames uint64
	Slices uint64
	dma.Stats
}

// Driver composites slices into the free buffer while the other one is on
// the bus.
type Driver struct {
	cfg    gfx.Config
	pair   *dma.SlicePair
	sync   *dma.Synchronizer
	blit   *gfx.Blitter
	frames uint64
	slices uint64
}

// New validates cfg and returns a Driver.
func New(cfg gfx.Config, pair *dma.SlicePair, sync *dma.Synchronizer, blit *gfx.Blitter) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	return &Driver{cfg: cfg, pair: pair, sync: sync, blit: blit}, nil
}

// NewForTransport wires a buffer pair and synchronizer over tr.
func NewForTransport(cfg gfx.Config, tr hal.Transport, w dma.Waiter, sheets *gfx.Sheets) (*Driver, error) {
	return New(cfg, dma.NewSlicePair(cfg), dma.NewSynchronizer(tr, w, hal.DefaultTransferSettings), gfx.NewBlitter(cfg, sheets))
}

func (d *Driver) Config() gfx.Config    { return d.cfg }
func (d *Driver) Pair() *dma.SlicePair  { return d.pair }
func (d *Driver) Blitter() *gfx.Blitter { return d.blit }

func (d *Driver) Stats() Stats {
	return Stats{Frames: d.frames, Slices: d.slices, Stats: d.sync.Stats()}
}

// RenderFrame draws bg with an optional overlay glyph at (x, y).
//
// When it returns every transfer has completed, so the caller may change bg
// and the overlay immediately.
func (d *Driver) RenderFrame(bg gfx.Surface, overlay gfx.Sprite, x, y int, show bool) {
	d.render(bg, func(sliceY int, dst gfx.View) {
		if show {
			d.blit.DrawText(overlay, sliceY, dst, x, y)
		}
	})
}

// RenderScene draws the background, then sprites, texts and the score in
// that order.
func (d *Driver) RenderScene(sc Scene) {
	d.render(sc.Background, func(sliceY int, dst gfx.View) {
		for _, sp := range sc.Sprites {
			d.blit.DrawSprite(sp, sliceY, dst)
		}
		for _, t := range sc.Texts {
			d.blit.DrawText(t.Glyph, sliceY, dst, t.X, t.Y)
		}
		if sc.ShowScore {
			d.blit.DrawScore(sc.Score, sliceY, dst)
		}
	})
}

func (d *Driver) render(bg gfx.Surface, overlay func(sliceY int, dst gfx.View)) {
	w, sh := d.cfg.ScreenWidth, d.cfg.SliceHeight
	n := d.cfg.Slices()

	for i := 0; i < n; i++ {
		buf := d.pair.Acquire(i)
		sliceY := i * sh
		dst := buf.View()

		copy(dst.Pix, bg.Band(sliceY, sh))
		overlay(sliceY, dst)

		// The previous slice went out on the other buffer; it must finish
		// before the bus takes this one.
		if i != 0 {
			d.sync.Finalize()
		}
		d.sync.Submit(buf, 0, sliceY, w, sh)
	}
	d.sync.Finalize()

	d.frames++
	d.slices += uint64(n)
}
