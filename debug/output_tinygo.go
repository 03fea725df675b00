//go:build debug && tinygo

package debug

import (
	"io"
	"machine"
)

// The board's default UART, which is what a serial monitor is attached to.
func defaultOutput() io.Writer { return machine.Serial }
