//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"

	"slicer/gfx"
)

// ili9488 drives the PicoCalc panel over SPI1.
//
// The RP2 SPI driver blocks until the bytes are on the wire, so a transfer is
// complete by the time EnqueueBuffer returns; the descriptor counter still
// goes through Acquire/Release so the synchronizer sees the same protocol as
// with a DMA-backed bus.
type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	settings TransferSettings
	desc     *Descriptors
	txBuf    []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	lcd := &ili9488{
		spi:      *machine.SPI1,
		cs:       machine.GP13,
		dc:       machine.GP14,
		rst:      machine.GP15,
		settings: DefaultTransferSettings,
		desc:     NewDescriptors(DescriptorCount),
		txBuf:    make([]byte, 4096),
	}
	if err := lcd.configure(lcd.settings); err != nil {
		return nil, err
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *ili9488) configure(s TransferSettings) error {
	return d.spi.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: s.ClockHz,
		LSBFirst:  !s.MSBFirst,
		Mode:      s.Mode,
	})
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	d.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	d.cmd(0xC1, 0x41)                   // PWCTRL2
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	d.cmd(0xB1, 0xA0, 0x11)       // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27) // DISCTRL
	d.cmd(0x21)                   // INVON

	// Mirror for PicoCalc wiring + BGR panel order.
	d.cmd(0x36, 0x40|0x04|0x08) // MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) SetTransferWindow(x0, y0, x1, y1 int) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

func (d *ili9488) BeginTransaction(s TransferSettings) {
	if s != d.settings {
		if err := d.configure(s); err == nil {
			d.settings = s
		}
	}
}

func (d *ili9488) EndTransaction() {}

func (d *ili9488) EnterWriteMode() {
	d.cs.Low()
	d.dc.High()
}

func (d *ili9488) ExitWriteMode() {
	d.cs.High()
}

func (d *ili9488) Descriptors() *Descriptors { return d.desc }

func (d *ili9488) EnqueueBuffer(px []gfx.Color) {
	d.desc.Acquire()
	defer d.desc.Release()

	per := len(d.txBuf) / 2
	for off := 0; off < len(px); off += per {
		end := off + per
		if end > len(px) {
			end = len(px)
		}
		n := encodeBigEndian(d.txBuf, px[off:end])
		d.spi.Tx(d.txBuf[:n], nil)
	}
}
