package combobox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/five82/combo/internal/mouse"
	"github.com/five82/combo/internal/state"
)

const controlHeight = 3 // border + one line

// Styles holds the lipgloss styles used to draw the control and its panel.
type Styles struct {
	Label          lipgloss.Style
	Control        lipgloss.Style
	ControlFocused lipgloss.Style
	Value          lipgloss.Style
	Placeholder    lipgloss.Style
	Chevron        lipgloss.Style
	Panel          lipgloss.Style
	Row            lipgloss.Style
	RowHighlighted lipgloss.Style
	RowSelected    lipgloss.Style
	Empty          lipgloss.Style
}

// DefaultStyles returns a neutral 256-color style set.
func DefaultStyles() Styles {
	primary := lipgloss.Color("212")
	muted := lipgloss.Color("241")
	border := lipgloss.Color("240")

	return Styles{
		Label: lipgloss.NewStyle().Bold(true),
		Control: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ControlFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder: lipgloss.NewStyle().Foreground(muted),
		Chevron:     lipgloss.NewStyle().Foreground(muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		RowHighlighted: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true),
		RowSelected: lipgloss.NewStyle().
			Foreground(primary),
		Empty: lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}

type geometry struct {
	label   mouse.Rect
	control mouse.Rect
	panel   mouse.Rect
	visible int
	offset  int
}

// layout computes screen rectangles from the origin, the label and the
// current placement.
func (m *Model) layout() geometry {
	var g geometry
	y := m.originY
	if m.label != "" {
		g.label = mouse.Rect{X: m.originX, Y: y, W: lipgloss.Width(m.label), H: 1}
		y++
	}
	g.control = mouse.Rect{X: m.originX, Y: y, W: m.width, H: controlHeight}

	g.visible = m.visibleRows()
	g.offset = clampOffset(m.scroller.Offset(), len(m.options), g.visible)

	panelH := g.visible + 2
	if g.visible == 0 {
		panelH = 3 // empty-state line
	}
	panelY := g.control.Bottom()
	if m.store.Snapshot().Placement == state.PlacementAbove {
		panelY = g.control.Y - panelH
	}
	g.panel = mouse.Rect{X: m.originX, Y: panelY, W: m.width, H: panelH}
	return g
}

// Height returns the number of lines View renders.
func (m *Model) Height() int {
	if m.label != "" {
		return controlHeight + 1
	}
	return controlHeight
}

// View renders the label and the collapsed control. The open panel is drawn
// separately by Overlay so the host can layer it over the page.
func (m *Model) View() string {
	var b strings.Builder
	if m.label != "" {
		b.WriteString(m.styles.Label.Render(m.label))
		b.WriteString("\n")
	}

	inner := max(1, m.width-4) // border + padding
	chevron := "▾"
	if m.store.IsOpen() {
		chevron = "▴"
	}
	textW := max(0, inner-2)

	var text string
	if m.value != nil {
		text = m.styles.Value.Render(xansi.Truncate(m.value.Label, textW, "…"))
	} else {
		text = m.styles.Placeholder.Render(xansi.Truncate("Select…", textW, ""))
	}
	pad := max(0, inner-lipgloss.Width(text)-1)
	line := text + strings.Repeat(" ", pad) + m.styles.Chevron.Render(chevron)

	style := m.styles.Control
	if m.focused {
		style = m.styles.ControlFocused
	}
	b.WriteString(style.Width(m.width - 2).Render(line))
	return b.String()
}

// Overlay renders the open panel and the screen cell where its top-left
// corner belongs. ok is false while closed.
func (m *Model) Overlay() (content string, x, y int, ok bool) {
	if !m.store.IsOpen() {
		return "", 0, 0, false
	}
	g := m.layout()
	return m.renderPanel(g), g.panel.X, g.panel.Y, true
}

func (m *Model) renderPanel(g geometry) string {
	rowW := max(1, m.width-2)
	if g.visible == 0 {
		return m.styles.Panel.Width(rowW).Render(m.styles.Empty.Render("No options"))
	}

	h := m.store.Highlighted()
	lines := make([]string, 0, g.visible)
	for i := g.offset; i < g.offset+g.visible && i < len(m.options); i++ {
		opt := m.options[i]
		marker := "  "
		if i == h {
			marker = "› "
		}
		check := ""
		if opt == m.value {
			check = " ✓"
		}
		labelW := max(0, rowW-lipgloss.Width(marker)-lipgloss.Width(check))
		text := xansi.Truncate(opt.Label, labelW, "…")
		fill := max(0, rowW-lipgloss.Width(marker)-lipgloss.Width(text)-lipgloss.Width(check))
		row := marker + text + strings.Repeat(" ", fill) + check

		style := m.styles.Row
		switch {
		case i == h:
			style = m.styles.RowHighlighted
		case opt == m.value:
			style = m.styles.RowSelected
		}
		lines = append(lines, style.Render(row))
	}
	return m.styles.Panel.Width(rowW).Render(strings.Join(lines, "\n"))
}

func clampOffset(offset, count, visible int) int {
	maxOff := max(0, count-visible)
	if offset < 0 {
		return 0
	}
	if offset > maxOff {
		return maxOff
	}
	return offset
}
