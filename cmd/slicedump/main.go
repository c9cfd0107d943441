//go:build !tinygo

// Command slicedump renders demo frames headless and writes the panel
// contents as a PNG.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"slicer/app"
	"slicer/gfx"
	"slicer/hal"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const defaultOutPath = "panel.png"

type options struct {
	out    string
	frames int
	scale  int
	notify bool
	bus    bool
	quiet  bool
}

type styles struct {
	key   lipgloss.Style
	value lipgloss.Style
	err   lipgloss.Style
}

func newStyles() styles {
	return styles{
		key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)).Width(12),
		value: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func main() {
	var opt options
	flag.StringVar(&opt.out, "out", defaultOutPath, "Output PNG path.")
	flag.IntVar(&opt.frames, "frames", 1, "Frames to render before dumping.")
	flag.IntVar(&opt.scale, "scale", 4, "Integer upscale factor.")
	flag.BoolVar(&opt.notify, "notify", false, "Use the notify waiter instead of spinning.")
	flag.BoolVar(&opt.bus, "bus-delay", false, "Delay each transfer by its wire time.")
	flag.BoolVar(&opt.quiet, "q", false, "Suppress the app log.")
	flag.Parse()

	st := newStyles()
	if err := run(opt, st, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, st.err.Render("slicedump: "+err.Error()))
		os.Exit(1)
	}
}

func run(opt options, st styles, stdout io.Writer) error {
	if opt.frames <= 0 {
		return fmt.Errorf("invalid frame count %d", opt.frames)
	}
	if opt.scale <= 0 {
		return fmt.Errorf("invalid scale %d", opt.scale)
	}

	cfg := app.DefaultConfig
	cfg.Notify = opt.notify
	cfg.ReportEvery = 0

	var log io.Writer = stdout
	if opt.quiet {
		log = io.Discard
	}
	h := hal.NewHost(hal.HostConfig{
		Width:       cfg.Display.ScreenWidth,
		Height:      cfg.Display.ScreenHeight,
		SimulateBus: opt.bus,
		Log:         log,
	})
	defer h.Close()

	step := app.NewWithConfig(h, cfg)
	for i := 0; i < opt.frames; i++ {
		if err := step(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	img := snapshot(h, opt.scale)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(opt.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", opt.out, err)
	}

	rows := [][2]string{
		{"display", fmt.Sprintf("%dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)},
		{"slices", fmt.Sprintf("%d x %d lines", cfg.Display.Slices(), cfg.Display.SliceHeight)},
		{"frames", fmt.Sprintf("%d", opt.frames)},
		{"transfers", fmt.Sprintf("%d", h.Transfers())},
		{"checksum", fmt.Sprintf("%016x", h.Checksum())},
		{"output", fmt.Sprintf("%s (%dx)", opt.out, opt.scale)},
	}
	for _, r := range rows {
		fmt.Fprintln(stdout, lipgloss.JoinHorizontal(lipgloss.Top, st.key.Render(r[0]), st.value.Render(r[1])))
	}

	if want := uint64(opt.frames * cfg.Display.Slices()); h.Transfers() != want {
		return errors.New("transfer count mismatch")
	}
	return nil
}

// snapshot copies the panel into an RGBA image scaled by an integer factor.
func snapshot(h *hal.Host, scale int) *image.RGBA {
	w, ht := h.Width(), h.Height()
	px := make([]gfx.Color, w*ht)
	h.Snapshot(px)

	src := image.NewRGBA(image.Rect(0, 0, w, ht))
	hal.ExpandRGBA(src.Pix, px)
	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w*scale, ht*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
