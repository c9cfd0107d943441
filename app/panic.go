package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"slicer/hal"
)

// guard runs step and turns a panic into an error, logging the panic value
// and stack one line at a time.
func guard(l hal.Logger, step func()) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err = fmt.Errorf("render panic: %v", v)
		if l == nil {
			return
		}
		l.WriteLineString(fmt.Sprintf("slicer panic: %v", v))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}()
	step()
	return nil
}
