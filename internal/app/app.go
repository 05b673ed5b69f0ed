// Package app runs the terminal quiz: splash, home menu, the question flow
// and the result card, framed by a title and key hint bar.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/router"
	"github.com/abhisek/hairharmony/internal/screen"
	"github.com/abhisek/hairharmony/internal/screens/home"
	"github.com/abhisek/hairharmony/internal/screens/welcome"
	"github.com/abhisek/hairharmony/internal/store"
	"github.com/abhisek/hairharmony/internal/ui/layout"
)

var quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router        *router.Router
	width, height int
}

func newAppModel(svc *analysis.Service, results store.ResultRepo) AppModel {
	splash := welcome.New(func() screen.Screen { return home.New(svc, results) })
	return AppModel{router: router.New(splash)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc always abandons the quiz or result and goes home.
			if m.router.Depth() > 1 {
				return m, router.Home()
			}
			return m, nil
		}
	}
	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.TooSmall(m.width, m.height))
		return v
	}

	active := m.router.Active()
	frame := layout.Frame{
		Trail: m.router.Trail(),
		Hints: hintsFor(active, m.router.Depth()),
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		frame.Status = sp.Status()
	}

	body := m.router.View(m.width, frame.BodyHeight(m.width, m.height))
	v.SetContent(frame.Render(body, m.width, m.height))
	return v
}

// hintsFor returns the footer for the active screen. Screens can supply
// their own; Ctrl+C is always listed last.
func hintsFor(active screen.Screen, depth int) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), quitHint)
	}
	if depth > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Home"}, quitHint}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		quitHint,
	}
}

// Run blocks until the quiz exits. results may be nil to skip saving.
func Run(svc *analysis.Service, results store.ResultRepo) error {
	if _, err := tea.NewProgram(newAppModel(svc, results)).Run(); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}
