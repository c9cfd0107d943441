//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"slicer/gfx"
)

// HostConfig configures the desktop HAL.
type HostConfig struct {
	Width  int
	Height int

	// SimulateBus delays each transfer by its wire time at the configured clock.
	SimulateBus bool

	// Log receives log lines; nil means stdout.
	Log io.Writer
}

// Host is the desktop HAL: a stdout logger and an emulated panel.
type Host struct {
	logger *hostLogger
	panel  *hostPanel
}

// New returns a host HAL for the default display geometry.
func New() HAL {
	return NewHost(HostConfig{
		Width:       gfx.DefaultConfig.ScreenWidth,
		Height:      gfx.DefaultConfig.ScreenHeight,
		SimulateBus: true,
	})
}

func NewHost(cfg HostConfig) *Host {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	return &Host{
		logger: &hostLogger{w: w},
		panel:  newHostPanel(cfg.Width, cfg.Height, cfg.SimulateBus),
	}
}

func (h *Host) Logger() Logger       { return h.logger }
func (h *Host) Transport() Transport { return h.panel }

func (h *Host) Width() int  { return h.panel.w }
func (h *Host) Height() int { return h.panel.h }

// Snapshot copies the panel memory into dst.
func (h *Host) Snapshot(dst []gfx.Color) { h.panel.snapshot(dst) }

// Checksum hashes the panel memory.
func (h *Host) Checksum() uint64 { return h.panel.checksum() }

// Close stops the panel's DMA engine. Transfers already queued still complete.
func (h *Host) Close() error {
	h.panel.close()
	return nil
}

// Transfers returns the number of completed DMA transfers.
func (h *Host) Transfers() uint64 { return h.panel.transfers.Load() }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
