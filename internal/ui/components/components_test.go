package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func testChoices() []Choice {
	return []Choice{
		{Value: "gold", Label: "Gold"},
		{Value: "silver", Label: "Silver"},
	}
}

func TestChoiceList_ArrowsAndEnter(t *testing.T) {
	c := NewChoiceList("Best jewelry tone?", testChoices(), "")
	if c.Value() != "" {
		t.Fatalf("value before submit = %q, want empty", c.Value())
	}

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Selected != 1 {
		t.Fatalf("selected = %d, want 1 (clamped)", c.Selected)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if c.Value() != "silver" {
		t.Errorf("value = %q, want silver", c.Value())
	}

	// Submitted lists ignore further keys.
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Selected != 1 {
		t.Errorf("selected changed after submit")
	}
}

func TestChoiceList_LetterShortcut(t *testing.T) {
	c := NewChoiceList("q", testChoices(), "")
	c, _ = c.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if c.Value() != "silver" {
		t.Errorf("value = %q, want silver", c.Value())
	}

	c = NewChoiceList("q", testChoices(), "")
	c, _ = c.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})
	if c.Submitted {
		t.Error("out-of-range letter should not submit")
	}
}

func TestChoiceList_Preselect(t *testing.T) {
	c := NewChoiceList("q", testChoices(), "silver")
	if c.Selected != 1 {
		t.Errorf("selected = %d, want 1", c.Selected)
	}
}

func TestChoiceList_View(t *testing.T) {
	view := NewChoiceList("Best jewelry tone?", testChoices(), "").View()
	for _, want := range []string{"Best jewelry tone?", "A)  Gold", "B)  Silver"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Start", Action: func() tea.Cmd { called = true; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("selected = %d, want first enabled item", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("moved onto a disabled item")
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !called {
		t.Error("enter should run the selected action")
	}
}

func TestMenu_WrapsAndShortcuts(t *testing.T) {
	var ran []string
	item := func(label, key string) MenuItem {
		return MenuItem{Label: label, Shortcut: key, Action: func() tea.Cmd {
			ran = append(ran, label)
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("Quiz", "t"), item("Exit", "q")})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up from the top should wrap, selected = %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down from the bottom should wrap, selected = %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if m.Selected != 1 || len(ran) != 1 || ran[0] != "Exit" {
		t.Errorf("shortcut should select and run Exit, selected=%d ran=%v", m.Selected, ran)
	}
	if got := strings.Join(m.Labels(), ","); got != "Quiz,Exit" {
		t.Errorf("labels = %q", got)
	}
}

func TestTextInput_Value(t *testing.T) {
	ti := NewTextInput("anything else?", "  sensitive scalp ", 200)
	if ti.Value() != "sensitive scalp" {
		t.Errorf("value = %q", ti.Value())
	}
}

func TestBar_Width(t *testing.T) {
	tests := []struct {
		name string
		bar  Bar
	}{
		{"plain", NewBar("", 0.5, 30)},
		{"labeled", Bar{Label: "Autumn", LabelWidth: 8, Percent: 1.4, Suffix: "9 pts", Width: 40}},
		{"negative", Bar{Percent: -1, Width: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.bar.View()
			if w := lipgloss.Width(got); w != tt.bar.Width {
				t.Errorf("width = %d, want %d", w, tt.bar.Width)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.87); got != "87%" {
		t.Errorf("Percent(0.87) = %q", got)
	}
}
