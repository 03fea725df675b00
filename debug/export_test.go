//go:build debug

package debug

import "golang.org/x/exp/constraints"

var (
	AppendHex   = appendHex
	AppendBin   = appendBin
	AppendBytes = appendBytes
)

func Bits[T constraints.Integer](v T) uint64 { return bits(v) }

// SetHalt replaces the routine called after a failed assertion. The returned
// function restores the previous one.
func SetHalt(f func()) (restore func()) {
	prev := halt
	halt = f
	return func() { halt = prev }
}
