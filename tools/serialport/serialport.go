// Package serialport opens UART devices in raw mode, which is how firmware
// debug output is usually read.
package serialport

import (
	"errors"
	"os"
)

var (
	ErrBaud        = errors.New("unsupported baud rate")
	ErrUnsupported = errors.New("serial ports not supported on this platform")
)

// Port is an open serial device configured for 8N1 raw transfers.
type Port struct {
	f *os.File
}

// Open opens device and sets the baud rate.
func Open(device string, baud int) (*Port, error) {
	return open(device, baud)
}

func (p *Port) Read(b []byte) (int, error)  { return p.f.Read(b) }
func (p *Port) Write(b []byte) (int, error) { return p.f.Write(b) }
func (p *Port) Close() error                { return p.f.Close() }

// Name returns the device path.
func (p *Port) Name() string { return p.f.Name() }
