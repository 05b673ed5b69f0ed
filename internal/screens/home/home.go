package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/router"
	"github.com/abhisek/hairharmony/internal/screen"
	quizscreen "github.com/abhisek/hairharmony/internal/screens/quiz"
	"github.com/abhisek/hairharmony/internal/season"
	"github.com/abhisek/hairharmony/internal/store"
	"github.com/abhisek/hairharmony/internal/ui/components"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu  components.Menu
	smart bool
	last  season.Season
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. results may be nil, in which case quiz
// results are not saved and no last result is shown.
func New(svc *analysis.Service, results store.ResultRepo) *HomeScreen {
	var last season.Season
	if results != nil {
		if recs, err := results.Recent(context.Background(), 1); err == nil && len(recs) > 0 {
			if s, err := season.Parse(recs[0].Season); err == nil {
				last = s
			}
		}
	}

	items := []components.MenuItem{
		{Label: "TAKE THE QUIZ", Shortcut: "t", Action: func() tea.Cmd {
			return router.Push(quizscreen.New(svc, results))
		}},
		{Label: "EXIT", Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		smart: svc != nil && svc.HasClassifier(),
		last:  last,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		renderStatus(h.smart, h.last, cw),
		renderMenu(h.menu.Labels(), h.menu.Selected, cw, compact),
	}
	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
