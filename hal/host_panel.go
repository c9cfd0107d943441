//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"slicer/gfx"

	"github.com/cespare/xxhash"
)

type window struct {
	x0, y0, x1, y1 int
}

type dmaJob struct {
	px  []gfx.Color
	win window
	hz  uint32
}

// hostPanel emulates a display controller with its own pixel memory and a DMA
// engine that drains queued buffers on a separate goroutine.
//
// Queued buffers are read when the engine gets to them, not when they are
// queued: writing a buffer before its descriptor is released shows up as
// corrupted pixels in the panel memory, as it would on hardware.
type hostPanel struct {
	mu  sync.Mutex
	w   int
	h   int
	mem []gfx.Color

	// Controller state; only touched by the submitting goroutine.
	win      window
	inTx     bool
	writing  bool
	settings TransferSettings

	desc      *Descriptors
	jobs      chan dmaJob
	closeOnce sync.Once
	simulate  bool
	transfers atomic.Uint64
}

func newHostPanel(w, h int, simulateBus bool) *hostPanel {
	desc := NewDescriptors(DescriptorCount)
	p := &hostPanel{
		w:        w,
		h:        h,
		mem:      make([]gfx.Color, w*h),
		win:      window{x1: w - 1, y1: h - 1},
		desc:     desc,
		jobs:     make(chan dmaJob, desc.Max()),
		simulate: simulateBus,
	}
	go p.run()
	return p
}

// close stops the DMA engine once queued jobs have drained. Enqueueing after
// close panics.
func (p *hostPanel) close() {
	p.closeOnce.Do(func() { close(p.jobs) })
}

func (p *hostPanel) SetTransferWindow(x0, y0, x1, y1 int) {
	p.win = window{x0: x0, y0: y0, x1: x1, y1: y1}
}

func (p *hostPanel) BeginTransaction(s TransferSettings) {
	if p.inTx {
		panic("hal: BeginTransaction while a transaction is open")
	}
	p.inTx = true
	p.settings = s
}

func (p *hostPanel) EndTransaction() {
	p.inTx = false
}

func (p *hostPanel) EnterWriteMode() { p.writing = true }
func (p *hostPanel) ExitWriteMode()  { p.writing = false }

func (p *hostPanel) EnqueueBuffer(px []gfx.Color) {
	if !p.inTx || !p.writing {
		panic(fmt.Sprintf("hal: EnqueueBuffer outside write mode (tx=%v write=%v)", p.inTx, p.writing))
	}
	p.desc.Acquire()
	p.jobs <- dmaJob{px: px, win: p.win, hz: p.settings.ClockHz}
}

func (p *hostPanel) Descriptors() *Descriptors { return p.desc }

func (p *hostPanel) run() {
	for job := range p.jobs {
		if p.simulate && job.hz > 0 {
			// 16 bits per pixel on the wire.
			time.Sleep(time.Duration(len(job.px)) * 16 * time.Second / time.Duration(job.hz))
		}
		p.write(job)
		p.transfers.Add(1)
		p.desc.Release()
	}
}

// write streams pixels into the window row by row, wrapping at its end like
// the controller's memory pointer.
func (p *hostPanel) write(job dmaJob) {
	p.mu.Lock()
	defer p.mu.Unlock()

	win := job.win
	if win.x1 < win.x0 || win.y1 < win.y0 {
		return
	}
	x, y := win.x0, win.y0
	for _, c := range job.px {
		if x >= 0 && x < p.w && y >= 0 && y < p.h {
			p.mem[x+y*p.w] = c
		}
		x++
		if x > win.x1 {
			x = win.x0
			y++
			if y > win.y1 {
				y = win.y0
			}
		}
	}
}

func (p *hostPanel) snapshot(dst []gfx.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.mem)
}

func (p *hostPanel) checksum() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf := make([]byte, len(p.mem)*2)
	for i, c := range p.mem {
		buf[i*2] = byte(c)
		buf[i*2+1] = byte(c >> 8)
	}
	return xxhash.Sum64(buf)
}
