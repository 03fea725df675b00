//go:build debug && n64

package debug

import (
	"embedded/mmio"
	"io"
	"unsafe"
)

const kseg1 uintptr = 0xffffffff_a0000000

const (
	isvToken   = 0x49533634
	isvBase    = kseg1 | 0x13ff_0000
	isvBufSize = 512 // actually 64*1024 - 0x20

	piStatus = kseg1 | 0x0460_0010
	piIOBusy = 1 << 1
)

type isvRegisters struct {
	token    mmio.U32
	readPtr  mmio.U32
	_        [3]mmio.U32
	writePtr mmio.U32
	_        [2]mmio.U32
	buf      [isvBufSize / 4]mmio.U32
}

var (
	isv  = (*isvRegisters)(unsafe.Pointer(isvBase))
	pisr = (*mmio.U32)(unsafe.Pointer(piStatus))
)

// piStore writes a register on the PI external bus and waits until the bus
// accepted it.
//
//go:nosplit
func piStore(r *mmio.U32, v uint32) {
	r.Store(v)
	for pisr.Load()&piIOBusy != 0 {
		// wait
	}
}

// isViewer writes to the ISViewer registers without DMA, regardless if an
// ISViewer is present or not. It doesn't allocate and can be used before the
// scheduler runs.
type isViewer struct{}

func defaultOutput() io.Writer { return isViewer{} }

//go:nosplit
func (isViewer) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		n := min(len(p), isvBufSize)

		for i := 0; i < n/4; i++ {
			pi := 4 * i
			piStore(&isv.buf[i], uint32(p[pi])<<24|
				uint32(p[pi+1])<<16|
				uint32(p[pi+2])<<8|
				uint32(p[pi+3]))
		}

		if tail := n % 4; tail != 0 {
			var w uint32
			base := n - tail
			for i := 0; i < tail; i++ {
				w |= uint32(p[base+i]) << ((3 - i) * 8)
			}
			piStore(&isv.buf[n/4], w)
		}

		piStore(&isv.readPtr, 0)
		piStore(&isv.writePtr, uint32(n))
		piStore(&isv.token, isvToken)

		for isv.readPtr.Load() != isv.writePtr.Load() {
			// wait
		}

		piStore(&isv.token, 0)
		p = p[n:]
	}
	return written, nil
}
