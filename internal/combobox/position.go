package combobox

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/combo/internal/mouse"
	"github.com/five82/combo/internal/state"
)

// Element names a measurable part of the combobox.
type Element int

const (
	ElementControl Element = iota
	ElementPanel
)

// Surface measures rendered geometry. Bounds reports false for an element
// that is not currently on screen.
type Surface interface {
	Bounds(el Element) (mouse.Rect, bool)
	ViewportHeight() int
}

// ResolvePlacement decides where the panel goes: above the control when it
// would not fit in the rows left below it, otherwise below.
func ResolvePlacement(control mouse.Rect, panelHeight, viewportHeight int) state.Placement {
	availableBelow := viewportHeight - control.Bottom()
	if panelHeight >= availableBelow {
		return state.PlacementAbove
	}
	return state.PlacementBelow
}

type measureMsg struct {
	id      string
	session int
}

// measureCmd defers placement until the opened panel has been rendered once.
func measureCmd(id string, session int) tea.Cmd {
	return func() tea.Msg {
		return measureMsg{id: id, session: session}
	}
}

func (m *Model) resolvePlacement(session int) {
	if session != m.session || !m.store.IsOpen() {
		return
	}
	control, ok := m.surface.Bounds(ElementControl)
	if !ok {
		return
	}
	panel, ok := m.surface.Bounds(ElementPanel)
	if !ok {
		m.logger.Printf("combobox %s: panel not mounted, keeping %s placement", m.id, m.store.Snapshot().Placement)
		return
	}
	vh := m.surface.ViewportHeight()
	if vh <= 0 {
		return
	}
	p := ResolvePlacement(control, panel.H, vh)
	m.store.SetPlacement(p)
	m.logger.Printf("combobox %s: placement %s (panel=%d below=%d)", m.id, p, panel.H, vh-control.Bottom())
}

// selfSurface measures the combobox from its own layout, the origin the host
// reported and the terminal height.
type selfSurface struct {
	m *Model
}

func (s selfSurface) Bounds(el Element) (mouse.Rect, bool) {
	l := s.m.layout()
	switch el {
	case ElementControl:
		return l.control, true
	case ElementPanel:
		if !s.m.store.IsOpen() {
			return mouse.Rect{}, false
		}
		return l.panel, true
	}
	return mouse.Rect{}, false
}

func (s selfSurface) ViewportHeight() int {
	return s.m.viewportHeight
}
