package combobox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/combo/internal/document"
)

// HandleKey interprets a key event addressed to this control. Events whose
// target is any other element (including rows inside the panel) are ignored.
// It is the listener Mount registers with the document.
func (m *Model) HandleKey(ev document.KeyEvent) tea.Cmd {
	if ev.Target != m.id {
		return nil
	}
	msg := ev.Key
	n := len(m.options)

	switch {
	case key.Matches(msg, m.keys.Select):
		if !m.store.IsOpen() {
			m.lockScroll()
			return m.apply(m.store.Open())
		}
		candidate := m.highlightedOption()
		closed := m.apply(m.store.Close())
		return tea.Batch(closed, m.commit(candidate))

	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Up):
		m.lockScroll()
		if !m.store.IsOpen() {
			// The opening press does not move the highlight.
			return m.apply(m.store.Open())
		}
		delta := 1
		if key.Matches(msg, m.keys.Up) {
			delta = -1
		}
		return m.apply(m.store.Move(delta, n))

	case key.Matches(msg, m.keys.Close):
		return m.apply(m.store.Close())
	}
	return nil
}
