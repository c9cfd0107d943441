package dma

import (
	"fmt"

	"slicer/hal"
)

// Stats counts synchronizer activity.
type Stats struct {
	Submits   uint64
	Finalizes uint64

	// Busy counts finalizes that found the transfer still running.
	Busy uint64
}

// Synchronizer serializes transfers over the single transport channel.
//
// At most one transfer is pending. Submit opens a bus transaction and queues
// a buffer; Finalize waits for it, closes the transaction and returns the
// buffer to Idle. Submit while a transfer is pending panics.
type Synchronizer struct {
	tr       hal.Transport
	desc     *hal.Descriptors
	wait     Waiter
	settings hal.TransferSettings

	pending  bool
	inFlight *SliceBuffer
	stats    Stats
}

// NewSynchronizer returns a synchronizer over tr. A nil waiter spins.
func NewSynchronizer(tr hal.Transport, w Waiter, s hal.TransferSettings) *Synchronizer {
	if w == nil {
		w = SpinWaiter{}
	}
	return &Synchronizer{
		tr:       tr,
		desc:     tr.Descriptors(),
		wait:     w,
		settings: s,
	}
}

func (s *Synchronizer) Pending() bool { return s.pending }
func (s *Synchronizer) Stats() Stats  { return s.stats }

// WaitIdle blocks until the transport holds no queued descriptors.
func (s *Synchronizer) WaitIdle() {
	if s.desc.Idle() {
		return
	}
	s.wait.WaitIdle(s.desc)
}

// Submit sends the first w*h pixels of buf to the screen rectangle at (x, y).
// It returns once the buffer is queued.
func (s *Synchronizer) Submit(buf *SliceBuffer, x, y, w, h int) {
	if s.pending {
		panic(fmt.Sprintf("dma: submit of buffer %d while buffer %d is pending", buf.id, s.inFlight.id))
	}
	if buf.state != Compositing {
		panic(fmt.Sprintf("dma: submit of buffer %d in state %v", buf.id, buf.state))
	}

	s.pending = true
	s.inFlight = buf
	buf.state = Submitted
	s.stats.Submits++

	s.tr.SetTransferWindow(x, y, x+w-1, y+h-1)
	s.tr.BeginTransaction(s.settings)
	s.tr.EnterWriteMode()
	s.tr.EnqueueBuffer(buf.view.Pix[:w*h])
}

// Finalize completes the pending transfer, if any.
func (s *Synchronizer) Finalize() {
	if !s.pending {
		return
	}
	if !s.desc.Idle() {
		s.stats.Busy++
	}
	s.WaitIdle()
	s.tr.ExitWriteMode()
	s.tr.EndTransaction()

	s.pending = false
	s.inFlight.state = Idle
	s.inFlight = nil
	s.stats.Finalizes++
}
