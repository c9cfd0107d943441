//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger tinyGoHostLogger
	tr     Transport
}

// New returns a TinyGo-on-host HAL (linux/wasm targets without pins).
func New() HAL {
	return &tinyGoHostHAL{tr: newNullTransport()}
}

func (h *tinyGoHostHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHostHAL) Transport() Transport { return h.tr }

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) { println(s) }
func (tinyGoHostLogger) WriteLineBytes(b []byte)  { println(string(b)) }
