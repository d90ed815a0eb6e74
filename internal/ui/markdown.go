package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the word-wrap width for rendered markdown.
const DefaultWrap = 80

// RenderMarkdown renders md for the terminal. Without colour it uses the
// plain "notty" style, which keeps the document readable in pipes.
func RenderMarkdown(theme *Theme, md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	style := glamour.WithAutoStyle()
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
