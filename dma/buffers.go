// Package dma owns the two slice buffers and sequences their hand-off to a
// DMA-capable display transport.
//
// Each buffer cycles Idle → Compositing → Submitted → Idle. The CPU writes a
// buffer only while it is Compositing; the transport reads it while it is
// Submitted; only Synchronizer.Finalize moves it back to Idle.
package dma

import (
	"fmt"

	"slicer/gfx"
)

// State is the ownership state of a slice buffer.
type State uint8

const (
	Idle State = iota
	Compositing
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Compositing:
		return "compositing"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// SliceBuffer is one screenWidth x sliceHeight pixel buffer.
type SliceBuffer struct {
	id    int
	view  gfx.View
	state State
}

func (b *SliceBuffer) ID() int          { return b.id }
func (b *SliceBuffer) State() State     { return b.state }
func (b *SliceBuffer) View() gfx.View   { return b.view }
func (b *SliceBuffer) Pix() []gfx.Color { return b.view.Pix }

// SlicePair is the pair of buffers alternated by slice parity.
type SlicePair struct {
	bufs [2]SliceBuffer
}

func NewSlicePair(cfg gfx.Config) *SlicePair {
	p := &SlicePair{}
	for i := range p.bufs {
		p.bufs[i] = SliceBuffer{
			id:   i,
			view: gfx.NewView(make([]gfx.Color, cfg.SlicePixels()), cfg.ScreenWidth),
		}
	}
	return p
}

// Buffer returns buffer n (0 or 1).
func (p *SlicePair) Buffer(n int) *SliceBuffer { return &p.bufs[n&1] }

// Acquire returns the buffer for slice i (even → 0, odd → 1) and marks it
// Compositing. Acquiring a buffer the transport still owns panics.
func (p *SlicePair) Acquire(slice int) *SliceBuffer {
	b := &p.bufs[slice&1]
	if b.state == Submitted {
		panic(fmt.Sprintf("dma: slice %d: buffer %d is still in flight", slice, b.id))
	}
	b.state = Compositing
	return b
}

// AllIdle reports whether neither buffer is in use.
func (p *SlicePair) AllIdle() bool {
	return p.bufs[0].state == Idle && p.bufs[1].state == Idle
}
