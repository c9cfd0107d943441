//go:build !tinygo && cgo

package hal

import (
	"slicer/gfx"
	"slicer/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the emulated panel memory.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig) error {
	h := NewHost(cfg)
	defer h.Close()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("slicer (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.Width()*4, h.Height()*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *Host
	pix     []byte
	panel   *ebiten.Image
	scratch []gfx.Color
	step    func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.h.Width(), g.h.Height()
	if g.panel == nil {
		g.pix = make([]byte, w*h*4)
		g.scratch = make([]gfx.Color, w*h)
		g.panel = ebiten.NewImage(w, h)
	}

	g.h.Snapshot(g.scratch)
	ExpandRGBA(g.pix, g.scratch)

	g.panel.WritePixels(g.pix)
	screen.DrawImage(g.panel, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.Width(), g.h.Height()
}
