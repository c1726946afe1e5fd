package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/combo/internal/combobox"
	"github.com/five82/combo/internal/config"
	"github.com/five82/combo/internal/document"
	"github.com/five82/combo/internal/prefs"
)

func newTestModel(t *testing.T) (Model, string) {
	t.Helper()
	cfg := config.Default()
	cfg.SmoothScroll = false
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	m, err := New(Options{Config: &cfg, ThemeName: "Nightfox", PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(m.Close)
	return send(m, tea.WindowSizeMsg{Width: 80, Height: 24}), prefsPath
}

// send delivers msg and every message its commands produce.
func send(m Model, msg tea.Msg) Model {
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 1000; steps++ {
		next := queue[0]
		queue = queue[1:]
		updated, cmd := m.Update(next)
		m = updated.(Model)
		queue = append(queue, collect(cmd)...)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func focusedIDs(m Model) []string {
	var ids []string
	for _, f := range m.fields {
		if f.Focused() {
			ids = append(ids, f.ID())
		}
	}
	return ids
}

func TestNew_FocusesFirstField(t *testing.T) {
	m, _ := newTestModel(t)

	if got := focusedIDs(m); len(got) != 1 || got[0] != "fruit" {
		t.Fatalf("focused = %v, want [fruit]", got)
	}
	if m.doc.Listeners() != len(m.fields) {
		t.Fatalf("Listeners = %d, want one per field (%d)", m.doc.Listeners(), len(m.fields))
	}
}

func TestTabCyclesFocusAndBlurs(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.fields[0].State().Open {
		t.Fatal("Enter did not open the focused field")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := focusedIDs(m); len(got) != 1 || got[0] != "size" {
		t.Fatalf("focused = %v after tab, want [size]", got)
	}
	if m.fields[0].State().Open {
		t.Fatal("leaving a field left its panel open")
	}
	if m.doc.ScrollLocked() {
		t.Fatal("scroll lock survived blur")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := focusedIDs(m); len(got) != 1 || got[0] != m.fields[len(m.fields)-1].ID() {
		t.Fatalf("focused = %v after wrapping back, want last field", got)
	}
}

func TestKeyboardCommitUpdatesValueAndStatus(t *testing.T) {
	m, _ := newTestModel(t)
	fruit := m.fields[0]

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Cherry") {
		t.Fatal("open panel not composited into the view")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if fruit.Value() != fruit.Options()[2] {
		t.Fatalf("Value = %+v, want Cherry", fruit.Value())
	}
	if !strings.Contains(m.status, "Cherry") || !strings.Contains(m.status, "option 3 of 4") {
		t.Fatalf("status = %q, want Cherry as option 3 of 4", m.status)
	}
	if fruit.State().Open {
		t.Fatal("panel still open after commit")
	}
}

func TestScrollLockBlocksPageScroll(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.doc.ScrollLocked() {
		t.Fatal("keyboard open did not lock page scroll")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.page.YOffset != 0 {
		t.Fatalf("YOffset = %d while locked, want 0", m.page.YOffset)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = send(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.page.YOffset == 0 {
		t.Fatal("page did not scroll after the lock was released")
	}
}

func TestLabelClickFocusesAndOpens(t *testing.T) {
	m, _ := newTestModel(t)
	size := m.fields[1]

	y := -1
	for row := 0; row < m.height; row++ {
		if size.Contains(fieldIndent, row) {
			y = row
			break
		}
	}
	if y < 0 {
		t.Fatal("size field not found on screen")
	}

	m = send(m, click(fieldIndent, y))

	if got := focusedIDs(m); len(got) != 1 || got[0] != "size" {
		t.Fatalf("focused = %v, want [size]", got)
	}
	if !size.State().Open {
		t.Fatal("label click did not open the panel")
	}
	if m.doc.ScrollLocked() {
		t.Fatal("pointer open locked page scroll")
	}
}

func TestClickOnEmptyPageBlursEverything(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(m, click(70, 12))

	if got := focusedIDs(m); len(got) != 0 {
		t.Fatalf("focused = %v, want none", got)
	}
	if m.fields[0].State().Open {
		t.Fatal("panel open after outside click")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := focusedIDs(m); len(got) != 1 || got[0] != "fruit" {
		t.Fatalf("focused = %v after tab from nothing, want [fruit]", got)
	}
}

func TestCycleThemePersists(t *testing.T) {
	m, prefsPath := newTestModel(t)

	m = send(m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	p, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}

func TestHelpModalClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help overlay not shown")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal != nil {
		t.Fatal("help overlay still open")
	}
	if m.fields[0].State().Open {
		t.Fatal("key that closed help reached the field")
	}
}

func TestInspectorShowsAccessibilityAttributes(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, runes("a"))
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	line := m.inspectorLine()
	for _, want := range []string{
		`aria-expanded="true"`,
		`aria-activedescendant="fruit-option-0"`,
		`aria-controls="fruit-options"`,
		`aria-selected="false"`,
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("inspector = %q, missing %s", line, want)
		}
	}
}

func TestNew_DuplicateFieldIDFails(t *testing.T) {
	cfg := config.Config{
		MaxVisible: 6,
		Fields: []config.Field{
			{ID: "x", Options: combobox.Options("A", "a")},
			{ID: "x", Options: combobox.Options("B", "b")},
		},
	}
	_, err := New(Options{Config: &cfg})
	if !errors.Is(err, document.ErrDuplicateOwner) {
		t.Fatalf("New error = %v, want ErrDuplicateOwner", err)
	}
}

func TestThemeCycleOrder(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		if got, want := NextTheme(name), names[(i+1)%len(names)]; got != want {
			t.Fatalf("NextTheme(%s) = %s, want %s", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %s, want %s", got, names[0])
	}
	if got := GetTheme("unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown) = %s, want Nightfox", got)
	}
}
