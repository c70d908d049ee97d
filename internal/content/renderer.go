// Package content renders lesson markdown for the shell's viewport. The
// shell only depends on the Renderer interface; markdown handling stays an
// external collaborator.
package content

import (
	"strings"

	"github.com/anditko/docnav/internal/thememode"
	"github.com/charmbracelet/glamour"
)

// Renderer converts lesson markdown into terminal-ready text.
type Renderer interface {
	Render(markdown string, mode thememode.Mode, width int) (string, error)
}

// Glamour renders markdown as styled ANSI, choosing the glamour style that
// matches the theme mode.
type Glamour struct{}

func NewGlamour() Glamour {
	return Glamour{}
}

func (Glamour) Render(markdown string, mode thememode.Mode, width int) (string, error) {
	style := "dark"
	if mode == thememode.Light {
		style = "light"
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

// Plain is the degraded renderer used when glamour fails: raw markdown,
// hard-wrapped to the viewport width.
type Plain struct{}

func (Plain) Render(markdown string, _ thememode.Mode, width int) (string, error) {
	if width <= 0 {
		return markdown, nil
	}
	var b strings.Builder
	for _, line := range strings.Split(markdown, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			b.WriteString(string(runes[:width]))
			b.WriteByte('\n')
			runes = runes[width:]
		}
		b.WriteString(string(runes))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
