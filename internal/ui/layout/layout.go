// Package layout draws the frame around every quiz screen: a title bar with
// the breadcrumb and progress, the screen body, and a key hint bar.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/ui/theme"
)

// Smallest terminal the quiz will draw into.
const (
	MinWidth  = 60
	MinHeight = 20
)

const brand = "  Hair Harmony"

// KeyHint is one entry of the footer, e.g. "Enter Next".
type KeyHint struct {
	Key         string
	Description string
}

// Frame is everything drawn around a screen body.
type Frame struct {
	// Trail is the breadcrumb of open screens, bottom first.
	Trail []string
	// Status sits on the right of the title bar, e.g. "4/11".
	Status string
	Hints  []KeyHint
}

// IsTooSmall reports whether a terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// TooSmall is drawn instead of the frame on undersized terminals.
func TooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The quiz needs a bigger window.\n\nResize to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

// BodyHeight is how many rows a screen gets inside f.
func (f Frame) BodyHeight(width, height int) int {
	return max(height-lipgloss.Height(f.header(width))-lipgloss.Height(f.footer(width)), 0)
}

// Render draws body inside the frame, filling width x height.
func (f Frame) Render(body string, width, height int) string {
	header := f.header(width)
	footer := f.footer(width)
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().Width(width).Height(rows).Render(body)
	return header + "\n" + content + "\n" + footer
}

func (f Frame) header(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(f.Trail, " › "))
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status)

	// Centre the breadcrumb within the bar, two cells of border each side.
	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

func (f Frame) footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// Divider is a horizontal rule inset from width, capped at limit cells.
func Divider(width, limit int) string {
	n := min(width-8, limit)
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(n, 0)))
}
