package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Tasks"

// renderShell draws the decorative frame around body: a header line with the
// title and theme glyph, then the body inside a bordered box.
func renderShell(th theme, width int, body string) string {
	inner := 0
	if width > 4 {
		inner = width - 4
	}

	title := th.title.Render(appTitle)
	glyph := th.glyph.Render(themeGlyph(th.dark))
	gap := 1
	if inner > 0 {
		gap = inner - lipgloss.Width(title) - lipgloss.Width(glyph)
		if gap < 1 {
			gap = 1
		}
	}
	header := th.header.Render(title + strings.Repeat(" ", gap) + glyph)

	frame := th.frame
	if inner > 0 {
		frame = frame.Width(inner + 2)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
