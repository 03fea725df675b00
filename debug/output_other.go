//go:build debug && !n64 && !tinygo

package debug

import (
	"io"
	"os"
)

func defaultOutput() io.Writer { return os.Stderr }
