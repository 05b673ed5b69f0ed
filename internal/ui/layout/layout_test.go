package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{60, 20, false},
		{59, 24, true},
		{80, 19, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFrame_Render(t *testing.T) {
	f := Frame{
		Trail:  []string{"Home", "Quiz"},
		Status: "3/11",
		Hints:  []KeyHint{{Key: "Esc", Description: "Home"}},
	}
	out := f.Render("What is your skin tone?", 80, 24)

	for _, want := range []string{"Hair Harmony", "Home › Quiz", "3/11", "Esc", "skin tone"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if got := lipgloss.Height(out); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if body := f.BodyHeight(80, 24); body <= 0 || body >= 24 {
		t.Errorf("body height = %d, want between the bars", body)
	}
}

func TestTooSmall(t *testing.T) {
	if msg := TooSmall(40, 10); !strings.Contains(msg, "60 x 20") {
		t.Errorf("message should name the minimum size:\n%s", msg)
	}
}

func TestDivider(t *testing.T) {
	if got := lipgloss.Width(Divider(100, 40)); got != 40 {
		t.Errorf("divider width = %d, want 40", got)
	}
	if got := lipgloss.Width(Divider(4, 40)); got != 0 {
		t.Errorf("divider width = %d, want 0", got)
	}
}
