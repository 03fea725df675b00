//go:build !debug

// Package debug provides serial debug printing that is enabled with the debug
// build tag and otherwise compiles to no-ops.
//
// Without the tag every function has an empty body and is inlined away, so a
// call leaves no code behind. Arguments are still evaluated by the caller
// though, as with any Go call. Guard arguments that have side effects or are
// expensive to compute with `if debug.Enabled {...}`, or use the Func variants
// which take the condition as a closure.
//
// This is not considered idiomatic Go, but might be useful in an embedded
// environment.
package debug

import (
	"io"

	"golang.org/x/exp/constraints"
)

// Guard calls with costly arguments with `if debug.Enabled {...}`, otherwise
// they can't be removed in release builds.
const Enabled = false

// SetOutput sets the writer debug output is sent to. Passing nil discards
// all output.
func SetOutput(w io.Writer) {}

// Output returns the writer debug output is sent to, or nil in release
// builds.
func Output() io.Writer { return nil }

// Print formats its operands like [fmt.Print] and writes them without a
// trailing newline.
func Print(a ...any) {}

// Println formats its operands like [fmt.Println].
func Println(a ...any) {}

// Printf formats according to a format specifier like [fmt.Printf]. There is
// no limit on the number of arguments.
func Printf(format string, a ...any) {}

// Printfln is like Printf but terminates the output with a newline.
func Printfln(format string, a ...any) {}

// Val writes a "name=value" line.
func Val(name string, value any) {}

// Tag writes a "tag message" line, e.g. Tag("[CAN]", "RX").
func Tag(tag, message string) {}

// Hex writes v in uppercase base 16 without leading zeros. Signed values are
// written as their two's complement at the width of T.
func Hex[T constraints.Integer](v T) {}

// Bin writes v in base 2 without leading zeros. Signed values are written as
// their two's complement at the width of T.
func Bin[T constraints.Integer](v T) {}

// Array writes buf as space separated two digit hex bytes, without a trailing
// newline.
func Array(buf []byte) {}

// If is like Printfln if cond is true: it writes the formatted text followed
// by a newline. Nothing is written if cond is false.
func If(cond bool, format string, a ...any) {}

// IfFunc is like If, but cond is only called in debug builds.
func IfFunc(cond func() bool, format string, a ...any) {}

// Assert writes message and halts the calling goroutine forever if b is
// false.
func Assert(b bool, message string) {}

// AssertFunc is like Assert, but cond is only called in debug builds.
func AssertFunc(cond func() bool, message string) {}

// Micros returns a monotonic microsecond counter which wraps around at 2^32.
// It always returns 0 in release builds.
func Micros() uint32 { return 0 }

// Elapsed writes the microseconds passed since start, which must have been
// returned by Micros.
func Elapsed(start uint32, label string) {}

// Stack writes an estimate of the unused goroutine stack memory.
func Stack() {}
