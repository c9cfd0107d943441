//go:build tinygo

package hal

import "slicer/gfx"

// nullTransport accepts transfers and completes them immediately.
type nullTransport struct {
	desc *Descriptors
}

func newNullTransport() *nullTransport {
	return &nullTransport{desc: NewDescriptors(DescriptorCount)}
}

func (t *nullTransport) SetTransferWindow(x0, y0, x1, y1 int) {}
func (t *nullTransport) BeginTransaction(s TransferSettings)  {}
func (t *nullTransport) EndTransaction()                      {}
func (t *nullTransport) EnterWriteMode()                      {}
func (t *nullTransport) ExitWriteMode()                       {}
func (t *nullTransport) Descriptors() *Descriptors            { return t.desc }

func (t *nullTransport) EnqueueBuffer(px []gfx.Color) {
	t.desc.Acquire()
	t.desc.Release()
}
