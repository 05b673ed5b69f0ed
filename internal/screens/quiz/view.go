package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/ui/components"
	"github.com/abhisek/hairharmony/internal/ui/theme"
)

func (s *QuizScreen) renderQuestion(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 30 {
		cw = 30
	}

	var b strings.Builder

	bar := components.NewBar("", float64(s.idx)/float64(len(s.questions)), cw)
	bar.Fill = theme.Primary
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	q := s.current()
	if q.Kind == qz.KindText {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Title))
		b.WriteString("\n\n")
		b.WriteString(s.text.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press Enter to see your season."))
	} else {
		b.WriteString(s.choice.View())
	}

	content := theme.Card.Width(cw + 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderAnalyzing renders the waiting state.
func renderAnalyzing(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Analyzing your colors...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
