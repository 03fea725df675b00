package monitor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	alertTags = map[string]bool{"[ERROR]": true, assertTag: true}
	infoTags  = map[string]bool{"[STACK]": true, "[PROFILE]": true}
)

type styles struct {
	plain bool
	alert lipgloss.Style
	info  lipgloss.Style
	other lipgloss.Style
	ts    lipgloss.Style
}

func newStyles(out io.Writer, mode string) (*styles, error) {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case "", "auto":
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		return &styles{plain: true}, nil
	default:
		return nil, fmt.Errorf("color %q: must be auto, always or never", mode)
	}

	return &styles{
		alert: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		info:  r.NewStyle().Foreground(lipgloss.Color("39")),
		other: r.NewStyle().Foreground(lipgloss.Color("86")),
		ts:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}, nil
}

func (s *styles) tag(tag string) string {
	switch {
	case s.plain:
		return tag
	case alertTags[tag]:
		return s.alert.Render(tag)
	case infoTags[tag]:
		return s.info.Render(tag)
	default:
		return s.other.Render(tag)
	}
}

func (s *styles) time(ts string) string {
	if s.plain {
		return ts
	}
	return s.ts.Render(ts)
}
