package combobox

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the control reacts to while it holds focus.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the standard combobox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Previous option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Next option"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "Open or choose"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Close}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Close}}
}

func (k KeyMap) empty() bool {
	return len(k.Up.Keys()) == 0 && len(k.Down.Keys()) == 0 &&
		len(k.Select.Keys()) == 0 && len(k.Close.Keys()) == 0
}
