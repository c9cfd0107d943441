//go:build tinygo && baremetal && picocalc

package hal

type picoCalcHAL struct {
	logger *uartLogger
	tr     Transport
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Panel: ILI9488 on SPI1 (GP10-GP15). If it fails to initialize, transfers are
// accepted and dropped.
func New() HAL {
	logger := newUARTLogger()

	var tr Transport
	if lcd, err := initILI9488(); err == nil {
		tr = lcd
	} else {
		logger.WriteLineString("hal: panel init failed: " + err.Error())
		tr = newNullTransport()
	}

	return &picoCalcHAL{logger: logger, tr: tr}
}

func (h *picoCalcHAL) Logger() Logger       { return h.logger }
func (h *picoCalcHAL) Transport() Transport { return h.tr }
