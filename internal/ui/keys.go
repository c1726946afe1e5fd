package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/combo/internal/combobox"
)

// keyMap defines the host bindings. Keys that none of these match are
// dispatched to the focused combobox.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Inspect    key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	// Combobox bindings, shown in help only.
	Field combobox.KeyMap
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Accessibility inspector"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll page down"),
		),
		Field: combobox.DefaultKeyMap(),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Field.Select, k.Field.Close, k.Inspect, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one column per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.PageUp, k.PageDown},
		{k.Field.Down, k.Field.Up, k.Field.Select, k.Field.Close},
		{k.Inspect, k.CycleTheme, k.Help, k.Quit},
	}
}
