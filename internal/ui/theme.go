package ui

import "github.com/charmbracelet/lipgloss"

// palette is the set of colors for one theme.
type palette struct {
	bg      lipgloss.Color
	fg      lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	done    lipgloss.Color
	overdue lipgloss.Color
	errFg   lipgloss.Color
}

var (
	lightPalette = palette{
		bg:      lipgloss.Color("#F7F7F2"),
		fg:      lipgloss.Color("#1F2328"),
		muted:   lipgloss.Color("#8C959F"),
		accent:  lipgloss.Color("#0969DA"),
		border:  lipgloss.Color("#D0D7DE"),
		done:    lipgloss.Color("#6E7781"),
		overdue: lipgloss.Color("#CF222E"),
		errFg:   lipgloss.Color("#A40E26"),
	}
	darkPalette = palette{
		bg:      lipgloss.Color("#161B22"),
		fg:      lipgloss.Color("#E6EDF3"),
		muted:   lipgloss.Color("#6E7681"),
		accent:  lipgloss.Color("#58A6FF"),
		border:  lipgloss.Color("#30363D"),
		done:    lipgloss.Color("#8B949E"),
		overdue: lipgloss.Color("#FF7B72"),
		errFg:   lipgloss.Color("#FFA198"),
	}
)

// theme holds the rendered styles derived from a palette.
type theme struct {
	dark bool

	frame     lipgloss.Style
	header    lipgloss.Style
	title     lipgloss.Style
	glyph     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	row       lipgloss.Style
	cursor    lipgloss.Style
	done      lipgloss.Style
	due       lipgloss.Style
	overdue   lipgloss.Style
	muted     lipgloss.Style
	status    lipgloss.Style
}

func newTheme(dark bool) theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	base := lipgloss.NewStyle().Foreground(p.fg)
	return theme{
		dark: dark,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Background(p.bg).
			Padding(0, 1),
		header:    lipgloss.NewStyle().Foreground(p.accent).Bold(true).MarginBottom(1),
		title:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		glyph:     lipgloss.NewStyle().Foreground(p.muted),
		tab:       lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Foreground(p.bg).Background(p.accent).Bold(true).Padding(0, 1),
		row:       base,
		cursor:    base.Bold(true).Foreground(p.accent),
		done:      lipgloss.NewStyle().Foreground(p.done).Strikethrough(true),
		due:       lipgloss.NewStyle().Foreground(p.muted),
		overdue:   lipgloss.NewStyle().Foreground(p.overdue).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		status:    lipgloss.NewStyle().Foreground(p.errFg),
	}
}

// themeGlyph is shown in the header for the active theme.
func themeGlyph(dark bool) string {
	if dark {
		return "☾"
	}
	return "☀"
}
