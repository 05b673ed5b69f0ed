package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hairharmony/internal/ui/theme"
)

// Choice is one selectable option.
type Choice struct {
	Value string
	Label string
}

// ChoiceList is a single-choice selector. Options can be picked with the
// arrow keys and Enter, or directly by their letter.
type ChoiceList struct {
	Prompt    string
	Options   []Choice
	Selected  int
	Submitted bool
}

// NewChoiceList creates a selector. When current matches an option value
// that option starts selected.
func NewChoiceList(prompt string, options []Choice, current string) ChoiceList {
	c := ChoiceList{Prompt: prompt, Options: options}
	for i, o := range options {
		if o.Value == current {
			c.Selected = i
			break
		}
	}
	return c
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		if len(c.Options) > 0 {
			c.Submitted = true
		}
	default:
		if len(key) == 1 {
			if i := int(key[0] - 'a'); i >= 0 && i < len(c.Options) {
				c.Selected = i
				c.Submitted = true
			}
		}
	}

	return c, nil
}

// Value returns the selected option value, or "" before submission.
func (c ChoiceList) Value() string {
	if !c.Submitted || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected].Value
}

// View renders the selector.
func (c ChoiceList) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt.Label)

		switch {
		case c.Submitted && i == c.Selected:
			b.WriteString(theme.Chosen.Render(line))
		case c.Submitted:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		case i == c.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
