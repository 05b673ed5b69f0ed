package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/season"
)

// Color palette, lilac on deep plum
var (
	Primary   = lipgloss.Color("#A855F7") // Lilac
	Secondary = lipgloss.Color("#EC4899") // Rose
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose red
	Text      = lipgloss.Color("#FAF5FF") // Off white
	TextDim   = lipgloss.Color("#A1A1AA") // Zinc
	BgDark    = lipgloss.Color("#1E1025") // Plum
	BgCard    = lipgloss.Color("#2E1A38") // Dusk
	Border    = lipgloss.Color("#4C3558") // Mauve
)

// Season colors
var (
	Spring = lipgloss.Color("#FBBF24") // Warm gold
	Summer = lipgloss.Color("#93C5FD") // Powder blue
	Autumn = lipgloss.Color("#EA580C") // Burnt orange
	Winter = lipgloss.Color("#60A5FA") // Icy blue
)

// SeasonColor returns the display color for s.
func SeasonColor(s season.Season) color.Color {
	switch s {
	case season.Spring:
		return Spring
	case season.Summer:
		return Summer
	case season.Autumn:
		return Autumn
	case season.Winter:
		return Winter
	}
	return Text
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)
