// Package router keeps the stack of quiz screens and moves between them in
// response to NavigateMsg.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hairharmony/internal/screen"
)

// Op says how a NavigateMsg changes the stack.
type Op int

const (
	// OpPush opens a screen on top of the current one.
	OpPush Op = iota
	// OpReplace swaps the top screen, e.g. quiz for result.
	OpReplace
	// OpBack closes the top screen.
	OpBack
	// OpHome closes everything above the bottom screen.
	OpHome
)

// NavigateMsg asks the router to change screens. Screen is only read for
// OpPush and OpReplace.
type NavigateMsg struct {
	Op     Op
	Screen screen.Screen
}

// Push returns a command that opens s.
func Push(s screen.Screen) tea.Cmd { return navigate(OpPush, s) }

// Replace returns a command that swaps the top screen for s.
func Replace(s screen.Screen) tea.Cmd { return navigate(OpReplace, s) }

// Back returns a command that closes the top screen.
func Back() tea.Cmd { return navigate(OpBack, nil) }

// Home returns a command that returns to the bottom screen.
func Home() tea.Cmd { return navigate(OpHome, nil) }

func navigate(op Op, s screen.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: op, Screen: s} }
}

// Router owns the screen stack. The bottom screen is never closed.
type Router struct {
	screens []screen.Screen
}

// New starts a stack with first at the bottom.
func New(first screen.Screen) *Router {
	return &Router{screens: []screen.Screen{first}}
}

// Active is the screen on top, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[len(r.screens)-1]
}

// Depth is the number of open screens.
func (r *Router) Depth() int { return len(r.screens) }

// Trail lists the titles of open screens from the bottom up. Untitled
// screens such as the splash are left out.
func (r *Router) Trail() []string {
	var trail []string
	for _, s := range r.screens {
		if t := s.Title(); t != "" {
			trail = append(trail, t)
		}
	}
	return trail
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if nav, ok := msg.(NavigateMsg); ok {
		return r.apply(nav)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.screens[len(r.screens)-1] = next
	return cmd
}

func (r *Router) apply(nav NavigateMsg) tea.Cmd {
	top := len(r.screens) - 1

	switch nav.Op {
	case OpBack:
		if top > 0 {
			r.screens = r.screens[:top]
		}
		return nil
	case OpHome:
		if top > 0 {
			r.screens = r.screens[:1]
		}
		return nil
	}

	if nav.Screen == nil {
		return nil
	}
	if nav.Op == OpReplace && top >= 0 {
		r.screens[top] = nav.Screen
	} else {
		r.screens = append(r.screens, nav.Screen)
	}
	return nav.Screen.Init()
}

// View renders the active screen into the given content area.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
