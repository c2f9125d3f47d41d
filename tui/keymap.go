package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the calculator.
type KeyMap struct {
	Quit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Reset     key.Binding
}

// DefaultKeyMap returns the default key bindings. Letters are left to the
// inputs, so every shortcut uses a modifier or a non-printing key.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "f2"),
			key.WithHelp("f2", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "f1"),
			key.WithHelp("f1", "previous tab"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.PrevTab, k.NextTab, k.Reset, k.Quit}
}
