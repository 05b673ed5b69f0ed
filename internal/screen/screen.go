// Package screen defines what the router needs from a quiz screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hairharmony/internal/ui/layout"
)

// Screen is one page of the terminal quiz.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the body only; the app adds the title and hint bars.
	View(width, height int) string

	// Title is the breadcrumb entry. The splash returns "" to stay out of it.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider puts a short status on the right of the title bar, such
// as "4/11" while answering.
type StatusProvider interface {
	Status() string
}
