package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestHelpRendersWithinBounds(t *testing.T) {
	m := New(60, 20)
	if err := m.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}
	view := m.View()
	if got := lipgloss.Width(view); got < 60 || got > 62 {
		t.Fatalf("width = %d, want about 60", got)
	}
	if got := lipgloss.Height(view); got < 20 || got > 22 {
		t.Fatalf("height = %d, want about 20", got)
	}
	if !strings.Contains(ansi.Strip(view), "Toasts") {
		t.Fatalf("expected the heading in view:\n%s", view)
	}
}

func TestHelpClampsToMinimum(t *testing.T) {
	m := New(4, 2)
	if w, h := m.Size(); w != minWidth || h != minHeight {
		t.Fatalf("size = %dx%d", w, h)
	}
}
