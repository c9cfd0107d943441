//go:build !tinygo

package hal

import (
	"io"
	"testing"

	"slicer/gfx"
)

func waitIdle(d *Descriptors) {
	for !d.Idle() {
		<-d.Notify()
	}
}

func TestDescriptorsAcquireRelease(t *testing.T) {
	d := NewDescriptors(DescriptorCount)
	if d.Max() != DescriptorCount {
		t.Fatalf("Max() = %d, want %d", d.Max(), DescriptorCount)
	}
	if !d.Idle() || d.Free() != DescriptorCount {
		t.Fatalf("new counter: Free() = %d, Idle() = %v", d.Free(), d.Idle())
	}

	d.Acquire()
	d.Acquire()
	if d.Idle() || d.Free() != DescriptorCount-2 {
		t.Fatalf("after 2 Acquire: Free() = %d", d.Free())
	}

	d.Release()
	select {
	case <-d.Notify():
	default:
		t.Fatal("Release did not notify")
	}
	d.Release()
	if !d.Idle() {
		t.Fatalf("Idle() = false after releasing all, Free() = %d", d.Free())
	}
}

func TestHostPanelWritesWindow(t *testing.T) {
	h := NewHost(HostConfig{Width: 16, Height: 8, Log: io.Discard})
	defer h.Close()
	tr := h.Transport()

	px := make([]gfx.Color, 4*2)
	for i := range px {
		px[i] = gfx.Color(i + 1)
	}

	tr.SetTransferWindow(3, 2, 6, 3)
	tr.BeginTransaction(DefaultTransferSettings)
	tr.EnterWriteMode()
	tr.EnqueueBuffer(px)
	waitIdle(tr.Descriptors())
	tr.ExitWriteMode()
	tr.EndTransaction()

	mem := make([]gfx.Color, 16*8)
	h.Snapshot(mem)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := gfx.Color(0)
			if x >= 3 && x <= 6 && y >= 2 && y <= 3 {
				want = gfx.Color((x - 3) + (y-2)*4 + 1)
			}
			if got := mem[x+y*16]; got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if h.Transfers() != 1 {
		t.Fatalf("Transfers() = %d, want 1", h.Transfers())
	}
}

func TestHostPanelChecksumTracksContent(t *testing.T) {
	h := NewHost(HostConfig{Width: 4, Height: 4, Log: io.Discard})
	defer h.Close()
	before := h.Checksum()

	tr := h.Transport()
	tr.SetTransferWindow(0, 0, 3, 0)
	tr.BeginTransaction(DefaultTransferSettings)
	tr.EnterWriteMode()
	tr.EnqueueBuffer([]gfx.Color{1, 2, 3, 4})
	waitIdle(tr.Descriptors())
	tr.ExitWriteMode()
	tr.EndTransaction()

	if h.Checksum() == before {
		t.Fatal("Checksum() unchanged after transfer")
	}
}

func TestHostPanelRejectsEnqueueOutsideWriteMode(t *testing.T) {
	h := NewHost(HostConfig{Width: 4, Height: 4, Log: io.Discard})
	defer h.Close()
	defer func() {
		if recover() == nil {
			t.Fatal("EnqueueBuffer outside a transaction did not panic")
		}
	}()
	h.Transport().EnqueueBuffer([]gfx.Color{1})
}

func TestHostCloseDrainsQueuedTransfers(t *testing.T) {
	h := NewHost(HostConfig{Width: 4, Height: 1, Log: io.Discard})
	tr := h.Transport()

	tr.SetTransferWindow(0, 0, 1, 0)
	tr.BeginTransaction(DefaultTransferSettings)
	tr.EnterWriteMode()
	tr.EnqueueBuffer([]gfx.Color{1, 2})
	tr.SetTransferWindow(2, 0, 3, 0)
	tr.EnqueueBuffer([]gfx.Color{3, 4})
	h.Close()
	h.Close()
	waitIdle(tr.Descriptors())

	if h.Transfers() != 2 {
		t.Fatalf("Transfers() = %d, want 2", h.Transfers())
	}
	mem := make([]gfx.Color, 4)
	h.Snapshot(mem)
	for i, want := range []gfx.Color{1, 2, 3, 4} {
		if mem[i] != want {
			t.Fatalf("mem = %v, want [1 2 3 4]", mem)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("EnqueueBuffer after Close did not panic")
		}
	}()
	tr.EnqueueBuffer([]gfx.Color{5})
}

func TestEncodeBigEndian(t *testing.T) {
	dst := make([]byte, 4)
	n := encodeBigEndian(dst, []gfx.Color{0x1234, 0xABCD, 0xFFFF})
	if n != 4 {
		t.Fatalf("encodeBigEndian() = %d, want 4", n)
	}
	want := []byte{0x12, 0x34, 0xAB, 0xCD}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = % x, want % x", dst, want)
		}
	}
}
