package hwmodel

import (
	"testing"
	"time"

	"slicer/gfx"
	"slicer/hal"
)

const latency = 50 * time.Millisecond

func waitIdle(d *hal.Descriptors) {
	for !d.Idle() {
		<-d.Notify()
	}
}

func checkViolations(t *testing.T, m *Transport, want []string) {
	t.Helper()
	got := m.Violations()
	if len(got) != len(want) {
		t.Fatalf("Violations() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Violations() = %q, want %q", got, want)
		}
	}
}

func TestWellBehavedCallerHasNoViolations(t *testing.T) {
	m := New(4, 4, time.Millisecond)
	bufs := [2][]gfx.Color{make([]gfx.Color, 4), make([]gfx.Color, 4)}

	for row := 0; row < 4; row++ {
		buf := bufs[row%2]
		for i := range buf {
			buf[i] = gfx.Color(row*4 + i + 1)
		}
		m.SetTransferWindow(0, row, 3, row)
		m.BeginTransaction(hal.DefaultTransferSettings)
		m.EnterWriteMode()
		m.EnqueueBuffer(buf)
		waitIdle(m.Descriptors())
		m.ExitWriteMode()
		m.EndTransaction()
	}

	checkViolations(t, m, nil)
	if m.InFlight() != 0 || m.Ends() != 4 {
		t.Fatalf("InFlight() = %d, Ends() = %d, want 0, 4", m.InFlight(), m.Ends())
	}
	trs := m.Transfers()
	if len(trs) != 4 {
		t.Fatalf("%d transfers, want 4", len(trs))
	}
	for i, tr := range trs {
		if tr.Y0 != i || tr.Pixels != 4 || tr.Settings != hal.DefaultTransferSettings {
			t.Fatalf("transfer %d = %+v", i, tr)
		}
	}
	for i, c := range m.Screen() {
		if c != gfx.Color(i+1) {
			t.Fatalf("Screen()[%d] = %d, want %d", i, c, i+1)
		}
	}
}

func TestReusingBufferInFlightIsRecorded(t *testing.T) {
	m := New(4, 2, latency)
	buf := []gfx.Color{1, 2, 3, 4}

	m.SetTransferWindow(0, 0, 3, 0)
	m.BeginTransaction(hal.DefaultTransferSettings)
	m.EnterWriteMode()
	m.EnqueueBuffer(buf)

	// Composite the next row into the same buffer without waiting.
	buf[0] = 9
	m.SetTransferWindow(0, 1, 3, 1)
	m.EnqueueBuffer(buf)

	waitIdle(m.Descriptors())
	m.ExitWriteMode()
	m.EndTransaction()

	checkViolations(t, m, []string{
		"EnqueueBuffer of a buffer already in flight",
		"buffer modified in flight at y=0 pixel 0",
	})
	if m.InFlight() != 0 {
		t.Fatalf("InFlight() = %d, want 0", m.InFlight())
	}

	// The screen shows what each transfer held when it was queued.
	want := []gfx.Color{1, 2, 3, 4, 9, 2, 3, 4}
	got := m.Screen()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Screen() = %v, want %v", got, want)
		}
	}
}

func TestTransactionMisuseIsRecorded(t *testing.T) {
	m := New(4, 1, latency)

	m.SetTransferWindow(0, 0, 3, 0)
	m.BeginTransaction(hal.DefaultTransferSettings)
	m.BeginTransaction(hal.DefaultTransferSettings)
	m.EnterWriteMode()
	m.EnqueueBuffer([]gfx.Color{1, 2, 3, 4})
	m.EndTransaction()
	waitIdle(m.Descriptors())
	m.ExitWriteMode()
	m.EndTransaction()

	m.EnqueueBuffer([]gfx.Color{5, 6, 7, 8})
	waitIdle(m.Descriptors())

	checkViolations(t, m, []string{
		"BeginTransaction while a transaction is open",
		"EndTransaction with descriptors in flight",
		"EndTransaction without a transaction",
		"EnqueueBuffer outside write mode",
	})
	if m.Ends() != 2 {
		t.Fatalf("Ends() = %d, want 2", m.Ends())
	}
}
