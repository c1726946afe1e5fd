package combobox

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/combo/internal/mouse"
)

// Hit region ids.
const (
	regionLabel   = "label"
	regionControl = "control"
	regionPanel   = "panel"
	regionRow     = "row" // Data: option index
)

func (m *Model) hitMap() *mouse.HitMap {
	g := m.layout()
	hm := mouse.NewHitMap()
	if m.label != "" {
		hm.AddRect(regionLabel, g.label.X, g.label.Y, g.label.W, g.label.H, nil)
	}
	hm.AddRect(regionControl, g.control.X, g.control.Y, g.control.W, g.control.H, nil)
	if m.store.IsOpen() {
		hm.AddRect(regionPanel, g.panel.X, g.panel.Y, g.panel.W, g.panel.H, nil)
		for k := 0; k < g.visible; k++ {
			hm.AddRect(regionRow, g.panel.X+1, g.panel.Y+1+k, g.panel.W-2, 1, g.offset+k)
		}
	}
	return hm
}

// Contains reports whether the cell (x, y) belongs to the control, its label
// or its open panel.
func (m *Model) Contains(x, y int) bool {
	return m.hitMap().Test(x, y) != nil
}

// PanelContains reports whether the cell (x, y) is inside the open panel.
func (m *Model) PanelContains(x, y int) bool {
	if !m.store.IsOpen() {
		return false
	}
	return m.layout().panel.Contains(x, y)
}

// ClickLabel focuses the control and opens the panel. Unlike a click on the
// control itself it never closes.
func (m *Model) ClickLabel() tea.Cmd {
	m.focused = true
	return tea.Batch(m.focusCmd(), m.apply(m.store.Open()))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	region := m.hitMap().Test(msg.X, msg.Y)

	switch {
	case mouse.IsClick(msg):
		if region == nil {
			// Focus moves elsewhere.
			if m.focused {
				m.Blur()
			}
			return nil
		}
		switch region.ID {
		case regionLabel:
			return m.ClickLabel()
		case regionRow:
			idx, _ := region.Data.(int)
			if idx < 0 || idx >= len(m.options) {
				return nil
			}
			candidate := m.options[idx]
			return tea.Batch(m.apply(m.store.Close()), m.commit(candidate))
		default:
			var focus tea.Cmd
			if !m.focused {
				m.focused = true
				focus = m.focusCmd()
			}
			return tea.Batch(focus, m.apply(m.store.Toggle()))
		}

	case mouse.IsMotion(msg):
		if region != nil && region.ID == regionRow {
			idx, _ := region.Data.(int)
			return m.apply(m.store.Highlight(idx, len(m.options)))
		}

	default:
		if d := mouse.WheelDelta(msg); d != 0 && region != nil && (region.ID == regionPanel || region.ID == regionRow) {
			m.scroller.ScrollBy(d)
		}
	}
	return nil
}

func (m *Model) focusCmd() tea.Cmd {
	id := m.id
	return func() tea.Msg { return FocusMsg{ID: id} }
}
