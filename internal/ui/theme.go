// Package ui holds the terminal presentation layer of launchts: colours and
// message styles, headless detection, the install spinner and markdown
// rendering for previews.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours used by launchts output.
type Palette struct {
	Primary string
	Success string
	Warning string
	Error   string
	Muted   string
}

// Theme carries the palette and the styles derived from it.
type Theme struct {
	NoColor bool
	Colors  Palette

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
	card    lipgloss.Style
}

// DefaultPalette is the standard colour scheme.
var DefaultPalette = Palette{
	Primary: "#3178C6", // TypeScript blue
	Success: "#8BC34A",
	Warning: "#FFC107",
	Error:   "#E53935",
	Muted:   "#8A8F98",
}

// NewTheme builds a theme. With noColor every style renders plain text.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor, Colors: DefaultPalette}
	if noColor {
		return t
	}
	t.success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success)).Bold(true)
	t.warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.failure = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
	t.muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	t.bold = lipgloss.NewStyle().Bold(true)
	t.card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Colors.Primary)).
		Padding(0, 1)
	return t
}

// DetectTheme honours the NO_COLOR convention.
func DetectTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return NewTheme(noColor)
}

// render styles each line on its own so multi-line blocks are not padded.
func (t *Theme) render(style lipgloss.Style, s string) string {
	if t.NoColor {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Success styles a success line.
func (t *Theme) Success(s string) string { return t.render(t.success, s) }

// Warning styles a warning block.
func (t *Theme) Warning(s string) string { return t.render(t.warning, s) }

// Error styles an error line.
func (t *Theme) Error(s string) string { return t.render(t.failure, s) }

// Muted styles secondary text.
func (t *Theme) Muted(s string) string { return t.render(t.muted, s) }

// Bold emphasises s.
func (t *Theme) Bold(s string) string { return t.render(t.bold, s) }

// Card frames s in a rounded border. Without colour it is returned as is.
func (t *Theme) Card(s string) string {
	if t.NoColor {
		return s
	}
	return t.card.Render(s)
}
