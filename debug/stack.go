//go:build debug

package debug

import "runtime"

// freeStack estimates how many bytes of stack memory the runtime holds but
// doesn't currently use. Goroutine stacks grow on demand, so this is the
// headroom available before the runtime has to ask the OS for more.
func freeStack() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.StackInuse > ms.StackSys {
		return 0
	}
	return ms.StackSys - ms.StackInuse
}
