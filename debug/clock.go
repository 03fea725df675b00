//go:build debug

package debug

import "time"

var boot = time.Now()

// sinceBoot reads the monotonic clock relative to package initialization.
func sinceBoot() time.Duration { return time.Since(boot) }
