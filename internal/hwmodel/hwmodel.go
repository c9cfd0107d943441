// Package hwmodel is a checking model of a DMA display transport for tests.
//
// Each queued buffer is completed by its own goroutine after Latency. At
// completion the model compares the buffer with the copy taken at queue time;
// any difference means the CPU wrote into a buffer the hardware was reading.
// Protocol misuse is recorded as a violation instead of panicking so tests can
// report all of them.
package hwmodel

import (
	"fmt"
	"sync"
	"time"

	"slicer/gfx"
	"slicer/hal"
)

// Transfer is one queued buffer as seen by the hardware.
type Transfer struct {
	X0, Y0, X1, Y1 int
	Pixels         int
	Settings       hal.TransferSettings
}

// Transport implements hal.Transport.
type Transport struct {
	Latency time.Duration

	desc *hal.Descriptors

	// CPU-side controller state.
	win      [4]int
	inTx     bool
	writing  bool
	settings hal.TransferSettings

	mu         sync.Mutex
	inFlight   map[*gfx.Color]bool
	transfers  []Transfer
	ends       int
	violations []string
	screen     gfx.View
}

// New returns a model of a width x height panel.
func New(width, height int, latency time.Duration) *Transport {
	return &Transport{
		Latency:  latency,
		desc:     hal.NewDescriptors(hal.DescriptorCount),
		inFlight: make(map[*gfx.Color]bool),
		screen:   gfx.NewView(make([]gfx.Color, width*height), width),
	}
}

func (t *Transport) Descriptors() *hal.Descriptors { return t.desc }

func (t *Transport) SetTransferWindow(x0, y0, x1, y1 int) {
	t.win = [4]int{x0, y0, x1, y1}
}

func (t *Transport) BeginTransaction(s hal.TransferSettings) {
	if t.inTx {
		t.violate("BeginTransaction while a transaction is open")
	}
	t.inTx = true
	t.settings = s
}

func (t *Transport) EndTransaction() {
	if !t.inTx {
		t.violate("EndTransaction without a transaction")
	}
	if !t.desc.Idle() {
		t.violate("EndTransaction with descriptors in flight")
	}
	t.inTx = false
	t.mu.Lock()
	t.ends++
	t.mu.Unlock()
}

func (t *Transport) EnterWriteMode() { t.writing = true }
func (t *Transport) ExitWriteMode()  { t.writing = false }

func (t *Transport) EnqueueBuffer(px []gfx.Color) {
	if !t.inTx || !t.writing {
		t.violate("EnqueueBuffer outside write mode")
	}
	if len(px) == 0 {
		return
	}
	key := &px[0]

	t.mu.Lock()
	if t.inFlight[key] {
		t.violations = append(t.violations, "EnqueueBuffer of a buffer already in flight")
	}
	t.inFlight[key] = true
	tr := Transfer{
		X0: t.win[0], Y0: t.win[1], X1: t.win[2], Y1: t.win[3],
		Pixels:   len(px),
		Settings: t.settings,
	}
	t.transfers = append(t.transfers, tr)
	t.mu.Unlock()

	want := append([]gfx.Color(nil), px...)
	t.desc.Acquire()
	go t.complete(key, px, want, tr)
}

func (t *Transport) complete(key *gfx.Color, px, want []gfx.Color, tr Transfer) {
	if t.Latency > 0 {
		time.Sleep(t.Latency)
	}

	t.mu.Lock()
	for i := range px {
		if px[i] != want[i] {
			t.violations = append(t.violations, fmt.Sprintf("buffer modified in flight at y=%d pixel %d", tr.Y0, i))
			break
		}
	}
	w := tr.X1 - tr.X0 + 1
	for i, c := range want {
		x, y := tr.X0+i%w, tr.Y0+i/w
		if x < t.screen.Stride && y < t.screen.Height() {
			t.screen.Set(x, y, c)
		}
	}
	delete(t.inFlight, key)
	t.mu.Unlock()

	t.desc.Release()
}

func (t *Transport) violate(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.violations = append(t.violations, msg)
}

// Transfers returns every queued transfer in order.
func (t *Transport) Transfers() []Transfer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Transfer(nil), t.transfers...)
}

// Ends returns the number of closed transactions.
func (t *Transport) Ends() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ends
}

func (t *Transport) Violations() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.violations...)
}

// InFlight returns the number of buffers not yet completed.
func (t *Transport) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inFlight)
}

// Screen returns a copy of the pixels delivered so far.
func (t *Transport) Screen() []gfx.Color {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]gfx.Color(nil), t.screen.Pix...)
}
