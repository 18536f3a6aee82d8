package stage

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Success    key.Binding
	Error      key.Binding
	Info       key.Binding
	Warning    key.Binding
	Default    key.Binding
	Position   key.Binding
	DismissAll key.Binding
	Clear      key.Binding
	Help       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func newKeyMap(interactive bool) keyMap {
	k := keyMap{
		Success:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Error:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Warning:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Default:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "default")),
		Position:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next position")),
		DismissAll: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss all")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if !interactive {
		for _, b := range []*key.Binding{&k.Success, &k.Error, &k.Info, &k.Warning, &k.Default, &k.Position, &k.Clear} {
			b.SetEnabled(false)
		}
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Info, k.Warning, k.Default, k.Position, k.DismissAll, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Success, k.Error, k.Info, k.Warning, k.Default},
		{k.Position, k.DismissAll, k.Clear, k.Help, k.Quit},
	}
}
