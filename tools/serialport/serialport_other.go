//go:build !linux

package serialport

func open(device string, baud int) (*Port, error) {
	return nil, ErrUnsupported
}
