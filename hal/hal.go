package hal

import (
	"errors"
	"sync/atomic"

	"slicer/gfx"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// DescriptorCount is the number of hardware transfer descriptors.
const DescriptorCount = 3

// TransferSettings configures the bus for one transaction.
type TransferSettings struct {
	ClockHz  uint32
	MSBFirst bool
	Mode     uint8
}

// DefaultTransferSettings is 24 MHz, MSB first, SPI mode 0.
var DefaultTransferSettings = TransferSettings{
	ClockHz:  24_000_000,
	MSBFirst: true,
}

// Transport is a display controller reached over a DMA-capable bus.
//
// EnqueueBuffer returns as soon as the buffer is queued. The hardware keeps
// reading px until the transfer completes, which is signalled by the
// descriptor counter returning to its maximum.
type Transport interface {
	SetTransferWindow(x0, y0, x1, y1 int)
	BeginTransaction(s TransferSettings)
	EndTransaction()
	EnterWriteMode()
	ExitWriteMode()
	EnqueueBuffer(px []gfx.Color)
	Descriptors() *Descriptors
}

// Descriptors counts free hardware transfer descriptors.
//
// Acquire is called when a transfer is queued, Release from the completion
// interrupt (or the goroutine standing in for it).
type Descriptors struct {
	free   atomic.Uint32
	max    uint32
	notify chan struct{}
}

func NewDescriptors(n uint32) *Descriptors {
	d := &Descriptors{max: n, notify: make(chan struct{}, 1)}
	d.free.Store(n)
	return d
}

func (d *Descriptors) Max() uint32  { return d.max }
func (d *Descriptors) Free() uint32 { return d.free.Load() }

// Idle reports whether every descriptor is free.
func (d *Descriptors) Idle() bool { return d.free.Load() >= d.max }

// Acquire takes one descriptor. It spins while none are free.
func (d *Descriptors) Acquire() {
	for {
		n := d.free.Load()
		if n == 0 {
			continue
		}
		if d.free.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Release returns one descriptor and wakes a notify waiter.
func (d *Descriptors) Release() {
	d.free.Add(1)
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// Notify fires after Release. A receive may be stale; re-check Idle.
func (d *Descriptors) Notify() <-chan struct{} { return d.notify }

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Transport() Transport
}
