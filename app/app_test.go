//go:build !tinygo

package app

import (
	"bytes"
	"strings"
	"testing"

	"slicer/gfx"
	"slicer/hal"
)

func newTestHost(t *testing.T, log *bytes.Buffer) *hal.Host {
	h := hal.NewHost(hal.HostConfig{
		Width:  gfx.DefaultConfig.ScreenWidth,
		Height: gfx.DefaultConfig.ScreenHeight,
		Log:    log,
	})
	t.Cleanup(func() { h.Close() })
	return h
}

func TestStepRendersFrames(t *testing.T) {
	var log bytes.Buffer
	h := newTestHost(t, &log)
	step := NewWithConfig(h, Config{Display: gfx.DefaultConfig, ReportEvery: 1})

	const frames = 3
	for i := 0; i < frames; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	slices := uint64(gfx.DefaultConfig.Slices())
	if got := h.Transfers(); got != frames*slices {
		t.Fatalf("Transfers() = %d, want %d", got, frames*slices)
	}

	out := log.String()
	if !strings.Contains(out, "16 slices of 8 lines") {
		t.Fatalf("missing banner in log:\n%s", out)
	}
	if n := strings.Count(out, "frame "); n != frames {
		t.Fatalf("got %d frame reports, want %d:\n%s", n, frames, out)
	}
	if !strings.Contains(out, "panel=") {
		t.Fatalf("frame report without checksum:\n%s", out)
	}
}

func TestWaitersProduceSamePanel(t *testing.T) {
	var sums []uint64
	for _, notify := range []bool{false, true} {
		var log bytes.Buffer
		h := newTestHost(t, &log)
		step := NewWithConfig(h, Config{Display: gfx.DefaultConfig, Notify: notify})
		for i := 0; i < 5; i++ {
			if err := step(); err != nil {
				t.Fatalf("notify=%v step %d: %v", notify, i, err)
			}
		}
		sums = append(sums, h.Checksum())
	}
	if sums[0] != sums[1] {
		t.Fatalf("panel checksum differs: spin %016x, notify %016x", sums[0], sums[1])
	}
}

func TestInvalidConfigFailsStep(t *testing.T) {
	var log bytes.Buffer
	h := newTestHost(t, &log)
	cfg := Config{Display: gfx.Config{ScreenWidth: 160, ScreenHeight: 128, SliceHeight: 7}}
	step := NewWithConfig(h, cfg)
	if err := step(); err == nil {
		t.Fatal("step() = nil, want config error")
	}
	if !strings.Contains(log.String(), "slice height 7") {
		t.Fatalf("config error not logged:\n%s", log.String())
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	var log bytes.Buffer
	h := newTestHost(t, &log)
	err := guard(h.Logger(), func() { panic("boom") })
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("guard() = %v, want boom error", err)
	}
	if !strings.Contains(log.String(), "slicer panic: boom") {
		t.Fatalf("panic not logged:\n%s", log.String())
	}
}

func TestBouncerStaysInBounds(t *testing.T) {
	b := bouncer{x: 3, y: 1, dx: 1, dy: 1, maxX: 5, maxY: 2}
	for i := 0; i < 50; i++ {
		b.advance()
		if b.x < 0 || b.x > b.maxX || b.y < 0 || b.y > b.maxY {
			t.Fatalf("step %d: (%d,%d) out of bounds", i, b.x, b.y)
		}
	}
}
