package app

import (
	"fmt"

	"slicer/dma"
	"slicer/frame"
	"slicer/gfx"
	"slicer/hal"
	"slicer/internal/buildinfo"
)

// Config selects the display geometry and how the renderer waits for the bus.
type Config struct {
	Display gfx.Config

	// Notify waits on completion notifications instead of spinning.
	Notify bool

	// ReportEvery logs a frame report every N frames (0 disables it).
	ReportEvery uint64
}

// DefaultConfig renders the default display with a spin-wait and reports
// once a second at 60 Hz.
var DefaultConfig = Config{
	Display:     gfx.DefaultConfig,
	ReportEvery: 60,
}

type checksummer interface {
	Checksum() uint64
}

type system struct {
	h      hal.HAL
	cfg    Config
	drv    *frame.Driver
	atlas  *atlas
	scene  frame.Scene
	banner bouncer
}

// New starts the demo with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig)
}

// Run renders frames forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig)
}

// NewWithConfig returns a step function that renders one frame per call.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("slicer: " + err.Error())
		}
		return func() error { return err }
	}
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	var w dma.Waiter = dma.SpinWaiter{}
	if cfg.Notify {
		w = dma.NotifyWaiter{}
	}

	a := newAtlas(cfg.Display)
	drv, err := frame.NewForTransport(cfg.Display, h.Transport(), w, &a.sheets)
	if err != nil {
		return nil, err
	}

	s := &system{
		h:     h,
		cfg:   cfg,
		drv:   drv,
		atlas: a,
		scene: frame.Scene{
			Background: a.bg,
			Sprites:    a.badges,
			ShowScore:  true,
		},
	}
	s.banner = bouncer{
		dx: 1, dy: 1,
		maxX: cfg.Display.ScreenWidth - a.banner.W,
		maxY: cfg.Display.ScreenHeight - a.banner.H,
	}
	s.banner.x, s.banner.y = s.banner.maxX/2, s.banner.maxY/2

	if l := h.Logger(); l != nil {
		d := s.drv.Config()
		l.WriteLineString(fmt.Sprintf("slicer %s: %dx%d, %d slices of %d lines, waiter=%T",
			buildinfo.Short(), d.ScreenWidth, d.ScreenHeight, d.Slices(), d.SliceHeight, w))
	}
	return s, nil
}

func (s *system) step() error {
	s.banner.advance()
	s.scene.Texts = append(s.scene.Texts[:0], frame.Text{Glyph: s.atlas.banner, X: s.banner.x, Y: s.banner.y})

	if err := guard(s.h.Logger(), func() { s.drv.RenderScene(s.scene) }); err != nil {
		return err
	}
	s.scene.Score++

	st := s.drv.Stats()
	if s.cfg.ReportEvery > 0 && st.Frames%s.cfg.ReportEvery == 0 {
		s.report(st)
	}
	return nil
}

func (s *system) report(st frame.Stats) {
	l := s.h.Logger()
	if l == nil {
		return
	}
	line := fmt.Sprintf("frame %d: slices=%d submits=%d busy=%d", st.Frames, st.Slices, st.Submits, st.Busy)
	if c, ok := s.h.(checksummer); ok {
		line += fmt.Sprintf(" panel=%016x", c.Checksum())
	}
	l.WriteLineString(line)
}

// bouncer moves a point inside [0, maxX] x [0, maxY], reflecting at the edges.
type bouncer struct {
	x, y       int
	dx, dy     int
	maxX, maxY int
}

func (b *bouncer) advance() {
	if b.maxX > 0 {
		b.x += b.dx
		if b.x <= 0 || b.x >= b.maxX {
			b.dx = -b.dx
		}
	}
	if b.maxY > 0 {
		b.y += b.dy
		if b.y <= 0 || b.y >= b.maxY {
			b.dy = -b.dy
		}
	}
}
