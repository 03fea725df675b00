//go:build debug

package debug

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const digits = "0123456789ABCDEF"

func appendHex(b []byte, v uint64) []byte { return appendPow2(b, v, 4) }

func appendBin(b []byte, v uint64) []byte { return appendPow2(b, v, 1) }

// appendPow2 appends v in base 1<<shift, without leading zeros.
func appendPow2(b []byte, v uint64, shift uint) []byte {
	var buf [64]byte
	mask := uint64(1)<<shift - 1
	i := len(buf)
	for {
		i--
		buf[i] = digits[v&mask]
		v >>= shift
		if v == 0 {
			break
		}
	}
	return append(b, buf[i:]...)
}

// appendBytes appends each byte of p as two hex digits, separated by a single
// space.
func appendBytes(b []byte, p []byte) []byte {
	for i, c := range p {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, digits[c>>4], digits[c&0xf])
	}
	return b
}

// bits returns the bit pattern of v, truncated to the width of T.
func bits[T constraints.Integer](v T) uint64 {
	u := uint64(v)
	if n := unsafe.Sizeof(v) * 8; n < 64 {
		u &= 1<<n - 1
	}
	return u
}
