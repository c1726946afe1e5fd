package ui

import (
	"fmt"

	xansi "github.com/charmbracelet/x/ansi"
)

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("combo", styles.AccentText.Bold(true)),
		bg.Render(fmt.Sprintf("%d fields", len(m.fields)), styles.MutedText),
		bg.Render("theme "+m.theme.Name, styles.MutedText),
	}
	if m.doc.ScrollLocked() {
		parts = append(parts, bg.Render("scroll locked", styles.WarningText))
	}
	return bg.FillLine(bg.Join(parts, "  │  "), m.width)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var line string
	switch {
	case m.inspect:
		line = bg.Render(xansi.Truncate(m.inspectorLine(), max(0, m.width-1), "…"), styles.Text)
	case m.status != "":
		line = bg.Render(m.status, styles.SuccessText)
	default:
		line = bg.Render("No selection committed yet", styles.FaintText)
	}
	return bg.FillLine(line, m.width) + "\n" + m.help.View(m.keys)
}

// inspectorLine shows the focused control's attributes and, while its panel
// is open, the highlighted row's.
func (m Model) inspectorLine() string {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return "no field focused"
	}
	f := m.fields[m.focus]
	a := f.Accessibility()
	line := "control " + a.Control.String()
	if h := f.State().Highlighted; a.Rows != nil && h < len(a.Rows) {
		line += "  row " + a.Rows[h].String()
	}
	return line
}
