//go:build debug

package debug

import "time"

// halt is called after a failed assertion and must not return.
var halt = func() {
	for {
		time.Sleep(time.Hour)
	}
}
