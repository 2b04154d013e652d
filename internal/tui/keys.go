package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the form's key bindings. It implements help.KeyMap.
type keyMap struct {
	Next    key.Binding
	Back    key.Binding
	Tooltip key.Binding
	Quit    key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Tooltip: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		// Close only applies on the summary, where no field takes text.
		Close: key.NewBinding(
			key.WithKeys("q", "enter"),
			key.WithHelp("q", "close"),
			key.WithDisabled(),
		),
	}
}

// syncToStep enables the bindings that make sense on the given step.
func (k *keyMap) syncToStep(s Stepper) {
	summary := s.IsSummary()
	k.Next.SetEnabled(!summary)
	k.Back.SetEnabled(!summary && !s.IsFirst())
	k.Tooltip.SetEnabled(!summary)
	k.Close.SetEnabled(summary)

	if s.IsLastInput() {
		k.Next.SetHelp("enter", "calculate")
	} else {
		k.Next.SetHelp("enter", "next")
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Tooltip, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
