//go:build debug

package debug

import (
	"io"
	"sync"
)

// sink serializes writes to the output. Each call formats into buf while
// holding mu and hands the result to w with a single Write.
type sink struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

var out = sink{w: defaultOutput(), buf: make([]byte, 0, 128)}

func (s *sink) set(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func (s *sink) get() io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w
}

// begin locks the sink and returns the emptied line buffer. Every begin must
// be followed by exactly one end.
func (s *sink) begin() []byte {
	s.mu.Lock()
	return s.buf[:0]
}

func (s *sink) end(b []byte) {
	s.buf = b
	s.w.Write(b)
	s.mu.Unlock()
}
