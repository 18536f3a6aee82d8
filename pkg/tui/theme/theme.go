package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Toast  ToastTheme
}

// FooterTheme groups styles used by the bottom help/status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ToastTheme styles the notification box. Colors are kept as hex strings
// so they can be faded toward Backdrop.
type ToastTheme struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Close       lipgloss.Style

	Text     string
	Muted    string
	Backdrop string
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Toast: ToastTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:       lipgloss.NewStyle().Bold(true),
			Description: lipgloss.NewStyle(),
			Close:       lipgloss.NewStyle(),
			Text:        "#f3f4f6",
			Muted:       "#9ca3af",
			Backdrop:    "#111827",
		},
	}
}
