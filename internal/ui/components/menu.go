package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one action on a menu. Shortcut, when set, runs the action
// directly from the keyboard.
type MenuItem struct {
	Label    string
	Shortcut string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks which item of a vertical action list is highlighted.
// Screens draw it themselves from Labels and Selected.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu highlights the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(1)
	return m
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, it := range m.Items {
		labels[i] = it.Label
	}
	return labels
}

// Update moves the highlight, wrapping at both ends, and runs actions.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j", "tab":
		m.Selected = m.step(1)
	case "enter":
		return m, m.run(m.Selected)
	default:
		for i, it := range m.Items {
			if it.Shortcut != "" && strings.EqualFold(it.Shortcut, key) {
				m.Selected = i
				return m, m.run(i)
			}
		}
	}
	return m, nil
}

// step finds the next enabled item in direction dir. It stays put when
// nothing else is enabled.
func (m Menu) step(dir int) int {
	n := len(m.Items)
	for k := 1; k <= n; k++ {
		i := ((m.Selected+dir*k)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return max(m.Selected, 0)
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	it := m.Items[i]
	if it.Disabled || it.Action == nil {
		return nil
	}
	return it.Action()
}
