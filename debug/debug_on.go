//go:build debug

package debug

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Guard calls with costly arguments with `if debug.Enabled {...}`, otherwise
// they can't be removed in release builds.
const Enabled = true

func SetOutput(w io.Writer) { out.set(w) }

func Output() io.Writer { return out.get() }

func Print(a ...any) {
	b := out.begin()
	out.end(fmt.Append(b, a...))
}

func Println(a ...any) {
	b := out.begin()
	out.end(fmt.Appendln(b, a...))
}

func Printf(format string, a ...any) {
	b := out.begin()
	out.end(fmt.Appendf(b, format, a...))
}

func Printfln(format string, a ...any) {
	b := out.begin()
	b = fmt.Appendf(b, format, a...)
	out.end(append(b, '\n'))
}

func Val(name string, value any) {
	b := out.begin()
	b = append(b, name...)
	b = append(b, '=')
	b = fmt.Append(b, value)
	out.end(append(b, '\n'))
}

func Tag(tag, message string) {
	b := out.begin()
	b = append(b, tag...)
	b = append(b, ' ')
	b = append(b, message...)
	out.end(append(b, '\n'))
}

func Hex[T constraints.Integer](v T) {
	b := out.begin()
	out.end(appendHex(b, bits(v)))
}

func Bin[T constraints.Integer](v T) {
	b := out.begin()
	out.end(appendBin(b, bits(v)))
}

func Array(buf []byte) {
	b := out.begin()
	out.end(appendBytes(b, buf))
}

func If(cond bool, format string, a ...any) {
	if cond {
		Printfln(format, a...)
	}
}

func IfFunc(cond func() bool, format string, a ...any) {
	if cond() {
		Printfln(format, a...)
	}
}

func Assert(b bool, message string) {
	if !b {
		fail(message)
	}
}

func AssertFunc(cond func() bool, message string) {
	if !cond() {
		fail(message)
	}
}

func fail(message string) {
	b := out.begin()
	b = append(b, "[ASSERT] "...)
	b = append(b, message...)
	out.end(append(b, '\n'))
	halt()
}

func Micros() uint32 { return uint32(sinceBoot().Microseconds()) }

func Elapsed(start uint32, label string) {
	d := Micros() - start
	b := out.begin()
	if label != "" {
		b = append(b, label...)
		b = append(b, ' ')
	}
	b = append(b, "took "...)
	b = strconv.AppendUint(b, uint64(d), 10)
	out.end(append(b, " microseconds\n"...))
}

func Stack() {
	b := out.begin()
	b = append(b, "[STACK] ~"...)
	b = strconv.AppendUint(b, freeStack(), 10)
	out.end(append(b, " bytes free\n"...))
}
