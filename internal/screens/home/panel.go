package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/season"
	"github.com/abhisek/hairharmony/internal/ui/theme"
)

const titleCompact = "H A I R · H A R M O N Y"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

// renderTitle returns the title with a strip of season swatches beneath.
func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(titleCompact)

	var strip []string
	for _, s := range season.All() {
		strip = append(strip, lipgloss.NewStyle().Foreground(theme.SeasonColor(s)).Render("████"))
	}

	return centered(cw, title) + "\n\n" + centered(cw, strings.Join(strip, " "))
}

// renderStatus shows how analyses will be decided and the last result.
func renderStatus(smart bool, last season.Season, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	mode := dim.Render("rules engine")
	if smart {
		mode = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("AI stylist + rules fallback")
	}
	lines := []string{"Analysis: " + mode}

	if last != "" {
		lines = append(lines, fmt.Sprintf("Last result: %s",
			lipgloss.NewStyle().Foreground(theme.SeasonColor(last)).Bold(true).Render(last.Title())))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when compact.
func renderMenu(items []string, selected, cw int, compact bool) string {
	if compact {
		var lines []string
		for i, label := range items {
			if i == selected {
				lines = append(lines, theme.Selected.Render(" ▸ "+label+" "))
			} else {
				lines = append(lines, theme.Unselected.Render("   "+label))
			}
		}
		return centered(cw, strings.Join(lines, "\n"))
	}

	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)
	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return centered(cw, strings.Join(buttons, "\n"))
}
