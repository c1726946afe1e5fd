package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/combo/internal/mouse"
)

var helpSectionTitles = []string{"Form", "Field", "General"}

// helpModal lists every binding. Any key or click closes it.
type helpModal struct {
	keys keyMap
}

func (h helpModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h, nil, true
	case tea.MouseMsg:
		return h, nil, mouse.IsClick(msg)
	}
	return h, nil, false
}

func (h helpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	columns := h.keys.FullHelp()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)
	for i, column := range columns {
		title := ""
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		b.WriteString("\n")

		for _, binding := range column {
			if !binding.Enabled() {
				continue
			}
			hint := binding.Help()
			b.WriteString(keyStyle.Render(hint.Key))
			b.WriteString(styles.Text.Render(hint.Desc))
			b.WriteString("\n")
		}

		if i < len(columns)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(helpModalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
