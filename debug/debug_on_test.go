//go:build debug

package debug_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/clktmr/dbg/debug"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := debug.Output()
	debug.SetOutput(buf)
	t.Cleanup(func() { debug.SetOutput(prev) })
	return buf
}

func expect(t *testing.T, buf *bytes.Buffer, expected string) {
	t.Helper()
	if got := buf.String(); got != expected {
		t.Fatalf("got %q, expected %q", got, expected)
	}
	buf.Reset()
}

func TestEnabled(t *testing.T) {
	if !debug.Enabled {
		t.Fatal("debug.Enabled is false in a debug build")
	}
}

func TestPrint(t *testing.T) {
	buf := capture(t)

	debug.Print("Hello ")
	debug.Println("World")
	expect(t, buf, "Hello World\n")

	debug.Print(42)
	expect(t, buf, "42")

	debug.Println()
	expect(t, buf, "\n")
}

func TestPrintf(t *testing.T) {
	buf := capture(t)

	a, b, c, d := 1, 2, 3, 4
	debug.Printf("Six: %d, %d, %d, %d, %d, %d\n", a, b, c, d, 5, 6)
	expect(t, buf, "Six: 1, 2, 3, 4, 5, 6\n")

	format := "%s %x %.2f %d %q %v %t %c"
	args := []any{"str", 255, 3.14159, -7, "q", []int{1, 2}, true, 'Z'}
	debug.Printf(format, args...)
	expect(t, buf, fmt.Sprintf(format, args...))

	debug.Printfln("Integer: %d", 42)
	expect(t, buf, "Integer: 42\n")
}

func TestVal(t *testing.T) {
	buf := capture(t)

	debug.Val("count", 42)
	expect(t, buf, "count=42\n")

	debug.Val("ratio", 0.5)
	expect(t, buf, "ratio=0.5\n")
}

func TestTag(t *testing.T) {
	buf := capture(t)

	debug.Tag("[CAN]", "RX")
	expect(t, buf, "[CAN] RX\n")
}

func TestHexBin(t *testing.T) {
	buf := capture(t)

	debug.Hex(uint8(0xab))
	expect(t, buf, "AB")
	debug.Hex(255)
	expect(t, buf, "FF")
	debug.Hex(int8(-1))
	expect(t, buf, "FF")
	debug.Hex(0)
	expect(t, buf, "0")

	debug.Bin(0b11001100)
	expect(t, buf, "11001100")
	debug.Bin(uint16(0))
	expect(t, buf, "0")
}

func TestArray(t *testing.T) {
	buf := capture(t)

	frame := []byte{0x42, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE}
	debug.Array(frame)
	expect(t, buf, "42 12 34 56 78 9A BC DE")

	debug.Array(frame[:2])
	expect(t, buf, "42 12")

	debug.Array(nil)
	expect(t, buf, "")
}

func TestIf(t *testing.T) {
	buf := capture(t)

	debug.If(false, "never")
	expect(t, buf, "")

	debug.If(true, "x=%d", 5)
	expect(t, buf, "x=5\n")

	calls := 0
	debug.IfFunc(func() bool { calls++; return true }, "frame 0x%02X", 0xff)
	expect(t, buf, "frame 0xFF\n")
	if calls != 1 {
		t.Fatalf("condition evaluated %d times", calls)
	}
}

type halted struct{}

// mustHalt runs f and reports whether it reached the halt routine.
func mustHalt(t *testing.T, f func()) (didHalt bool) {
	t.Helper()
	restore := debug.SetHalt(func() { panic(halted{}) })
	defer restore()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(halted); !ok {
				panic(r)
			}
			didHalt = true
		}
	}()
	f()
	return false
}

func TestAssert(t *testing.T) {
	buf := capture(t)

	if mustHalt(t, func() { debug.Assert(true, "unused") }) {
		t.Fatal("passing assertion halted")
	}
	expect(t, buf, "")

	reached := false
	if !mustHalt(t, func() {
		debug.Assert(false, "Cannot continue")
		reached = true
	}) {
		t.Fatal("failed assertion returned")
	}
	if reached {
		t.Fatal("statement after failed assertion was executed")
	}
	expect(t, buf, "[ASSERT] Cannot continue\n")
}

func TestAssertFunc(t *testing.T) {
	buf := capture(t)

	calls := 0
	if !mustHalt(t, func() {
		debug.AssertFunc(func() bool { calls++; return false }, "bad state")
	}) {
		t.Fatal("failed assertion returned")
	}
	if calls != 1 {
		t.Fatalf("condition evaluated %d times", calls)
	}
	expect(t, buf, "[ASSERT] bad state\n")
}

func TestElapsed(t *testing.T) {
	buf := capture(t)

	start := debug.Micros()
	time.Sleep(2 * time.Millisecond)
	debug.Elapsed(start, "Operation")

	var us uint32
	if _, err := fmt.Sscanf(buf.String(), "Operation took %d microseconds\n", &us); err != nil {
		t.Fatalf("unexpected output %q: %v", buf.String(), err)
	}
	if us < 2000 {
		t.Fatalf("elapsed %dus, slept 2000us", us)
	}
	buf.Reset()

	debug.Elapsed(debug.Micros(), "")
	if !strings.HasPrefix(buf.String(), "took ") {
		t.Fatalf("unexpected output for empty label %q", buf.String())
	}
}

func TestMicrosMonotonic(t *testing.T) {
	prev := debug.Micros()
	for range 1000 {
		now := debug.Micros()
		if now-prev > 1<<31 {
			t.Fatalf("clock went backwards: %d after %d", now, prev)
		}
		prev = now
	}
}

func TestStack(t *testing.T) {
	buf := capture(t)

	debug.Stack()

	var free uint64
	if _, err := fmt.Sscanf(buf.String(), "[STACK] ~%d bytes free\n", &free); err != nil {
		t.Fatalf("unexpected output %q: %v", buf.String(), err)
	}
}

func TestSetOutputNil(t *testing.T) {
	capture(t)
	debug.SetOutput(nil)
	debug.Println("discarded")
	if debug.Output() == nil {
		t.Fatal("output is nil after SetOutput(nil)")
	}
}

func TestConcurrentCalls(t *testing.T) {
	buf := capture(t)

	const workers, lines = 8, 100
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range lines {
				debug.Tag(fmt.Sprintf("[W%d]", i), "0123456789abcdef")
			}
		}()
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != workers*lines {
		t.Fatalf("got %d lines, expected %d", len(got), workers*lines)
	}
	for _, line := range got {
		var w int
		if _, err := fmt.Sscanf(line, "[W%d] 0123456789abcdef", &w); err != nil {
			t.Fatalf("interleaved line %q", line)
		}
	}
}
