package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/router"
	"github.com/abhisek/hairharmony/internal/screen"
	"github.com/abhisek/hairharmony/internal/season"
	"github.com/abhisek/hairharmony/internal/ui/components"
	"github.com/abhisek/hairharmony/internal/ui/layout"
	"github.com/abhisek/hairharmony/internal/ui/theme"
)

// Options configures a ResultScreen.
type Options struct {
	// Retake builds a fresh quiz. When nil Enter goes back instead.
	Retake func() screen.Screen

	CheckoutURL string

	// SaveErr is shown when the result could not be stored.
	SaveErr error
}

// ResultScreen displays a finished analysis.
type ResultScreen struct {
	res  *analysis.Result
	opts Options
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(res *analysis.Result, opts Options) *ResultScreen {
	return &ResultScreen{res: res, opts: opts}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Color Season"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Retake quiz"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if s.opts.Retake == nil {
			return s, router.Back()
		}
		return s, router.Replace(s.opts.Retake())
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res := s.res
	if res == nil {
		return ""
	}

	cw := width - 8
	if cw > 64 {
		cw = 64
	}
	if cw < 30 {
		cw = 30
	}
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}
	tint := theme.SeasonColor(res.Season)

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("You are a")))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(tint).Bold(true).
		Render(strings.ToUpper(res.Season.Title()))))
	b.WriteString("\n\n")

	conf := components.NewBar("Confidence", float64(res.Confidence)/100, cw)
	conf.Fill = tint
	conf.Suffix = fmt.Sprintf("%d%%", res.Confidence)
	b.WriteString(center(conf.View()))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(res.Reasoning)))
	b.WriteString("\n\n")

	if res.Scores != nil {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Scores")))
		b.WriteString("\n")
		b.WriteString(center(layout.Divider(width, cw)))
		b.WriteString("\n")
		b.WriteString(renderScores(*res.Scores, cw, center))
		b.WriteString("\n")
	}

	b.WriteString(center(theme.Hint.Render(sourceLine(res))))
	b.WriteString("\n\n")

	if res.PDFURL != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Render("Your guide: " + res.PDFURL)))
		b.WriteString("\n")
	}
	if s.opts.CheckoutURL != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Full palette kit: " + s.opts.CheckoutURL)))
		b.WriteString("\n")
	}
	if s.opts.SaveErr != nil {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("Result not saved: %v", s.opts.SaveErr))))
		b.WriteString("\n")
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

// renderScores draws one bar per season, scaled to the best score.
func renderScores(sc season.Scores, cw int, center func(string) string) string {
	top := sc.Max()
	var b strings.Builder
	for _, s := range season.All() {
		pts := sc.Of(s)
		pct := 0.0
		if top > 0 {
			pct = float64(pts) / float64(top)
		}
		bar := components.NewBar(s.Title(), pct, cw)
		bar.LabelWidth = 6
		bar.Fill = theme.SeasonColor(s)
		bar.Suffix = fmt.Sprintf("%2d pts", pts)
		b.WriteString(center(bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func sourceLine(res *analysis.Result) string {
	switch {
	case res.Source == analysis.SourceLLM:
		return "Decided by the AI stylist"
	case res.Fallback:
		return "Decided by the rules engine (AI stylist unavailable)"
	default:
		return "Decided by the rules engine"
	}
}
