// Package monitor renders the line based output of the debug package on a
// host terminal.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrAssert is returned by Run if a failed assertion was seen and
// Config.ExitOnAssert is set.
var ErrAssert = errors.New("assertion failed")

const assertTag = "[ASSERT]"

// maxLine is the length at which a line without newline is shown in parts.
const maxLine = 4096

type Monitor struct {
	cfg     *Config
	out     io.Writer
	capture io.Writer
	styles  *styles
	allow   map[string]bool
	stats   map[string]int
	now     func() time.Time
}

// New returns a Monitor writing rendered lines to out.
func New(cfg *Config, out io.Writer) (*Monitor, error) {
	if _, err := htmlindex.Get(cfg.Encoding); err != nil {
		return nil, fmt.Errorf("encoding %q: %w", cfg.Encoding, err)
	}
	styles, err := newStyles(out, cfg.Color)
	if err != nil {
		return nil, err
	}

	m := &Monitor{
		cfg:    cfg,
		out:    out,
		styles: styles,
		stats:  make(map[string]int),
		now:    time.Now,
	}
	if len(cfg.Tags) > 0 {
		m.allow = make(map[string]bool, len(cfg.Tags))
		for _, tag := range cfg.Tags {
			m.allow[normalizeTag(tag)] = true
		}
	}
	return m, nil
}

// SetCapture sets a writer which receives every shown line undecorated.
func (m *Monitor) SetCapture(w io.Writer) { m.capture = w }

// Stats returns the number of shown lines per tag. Untagged lines are counted
// under the empty string.
func (m *Monitor) Stats() map[string]int { return maps.Clone(m.stats) }

// Run reads lines from r until EOF, an error or ctx is done. Cancelling ctx
// doesn't interrupt a blocked read, the caller should close r for that.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	enc, _ := htmlindex.Get(m.cfg.Encoding)
	r = transform.NewReader(r, enc.NewDecoder())

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Split(scanLines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if err := m.handle(line); err != nil {
				return err
			}
		}
	}
}

func (m *Monitor) handle(line string) error {
	line = strings.TrimRight(line, "\r")
	tag := leadingTag(line)
	exit := tag == assertTag && m.cfg.ExitOnAssert
	if m.allow != nil && tag != "" && !m.allow[tag] && !exit {
		return nil
	}
	m.stats[tag]++

	if m.capture != nil {
		if _, err := io.WriteString(m.capture, line+"\n"); err != nil {
			return fmt.Errorf("capture: %w", err)
		}
	}

	var b strings.Builder
	if m.cfg.Timestamps {
		b.WriteString(m.styles.time(m.now().Format("15:04:05.000")))
		b.WriteByte(' ')
	}
	if tag != "" {
		b.WriteString(m.styles.tag(tag))
	}
	b.WriteString(line[len(tag):])
	b.WriteByte('\n')
	if _, err := io.WriteString(m.out, b.String()); err != nil {
		return err
	}

	if exit {
		return fmt.Errorf("%w: %s", ErrAssert, strings.TrimSpace(line[len(tag):]))
	}
	return nil
}

// scanLines is bufio.ScanLines, but returns the first maxLine bytes of an
// unterminated line instead of waiting for more input than the scanner can
// buffer. The cut is moved back to a rune boundary if possible.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	advance, token, err = bufio.ScanLines(data, atEOF)
	if advance > 0 || token != nil || err != nil || len(data) < maxLine {
		return advance, token, err
	}
	n := maxLine
	for i := maxLine; i > maxLine-utf8.UTFMax && i < len(data); i-- {
		if utf8.RuneStart(data[i]) {
			n = i
			break
		}
	}
	return n, data[:n], nil
}

// leadingTag returns the bracketed tag a line starts with, e.g. "[CAN]".
func leadingTag(line string) string {
	if !strings.HasPrefix(line, "[") {
		return ""
	}
	if i := strings.IndexByte(line, ']'); i > 1 {
		return line[:i+1]
	}
	return ""
}

func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if !strings.HasPrefix(tag, "[") {
		tag = "[" + tag + "]"
	}
	return tag
}
