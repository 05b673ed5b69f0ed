package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/ui/theme"
)

// Bar displays a labeled horizontal bar, used for quiz progress and
// season scores.
type Bar struct {
	Label string

	// LabelWidth pads the label so stacked bars line up.
	LabelWidth int

	// Percent is the filled fraction in [0, 1].
	Percent float64

	// Suffix is shown after the bar, e.g. "7 pts". Empty shows nothing.
	Suffix string

	Width int
	Fill  color.Color
}

// NewBar creates a bar filled with the secondary color.
func NewBar(label string, percent float64, width int) Bar {
	return Bar{
		Label:   label,
		Percent: percent,
		Width:   width,
		Fill:    theme.Secondary,
	}
}

// View renders the bar.
func (p Bar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	suffix := ""
	if p.Suffix != "" {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + p.Suffix)
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return result + suffix
}

// Percent formats a fraction as a whole percentage.
func Percent(f float64) string {
	return fmt.Sprintf("%d%%", int(f*100))
}
