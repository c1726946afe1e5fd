package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/combo/internal/combobox"
	"github.com/five82/combo/internal/config"
	"github.com/five82/combo/internal/document"
	"github.com/five82/combo/internal/mouse"
	"github.com/five82/combo/internal/overlay"
	"github.com/five82/combo/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    *config.Config
	ThemeName string
	PrefsPath string
	Logger    *log.Logger
}

// Model is the root application state for Bubble Tea: a scrolling page
// holding a form of comboboxes.
type Model struct {
	// Configuration
	prefsPath string
	logger    *log.Logger

	// Form state
	doc    *document.Document
	fields []*combobox.Model
	tops   []int // first page row of each field
	focus  int   // index into fields, -1 when nothing is focused

	// UI state
	keys   keyMap
	help   help.Model
	page   viewport.Model
	theme  Theme
	width  int
	height int
	ready  bool

	status  string
	inspect bool
	modal   Modal
}

// New creates the model and mounts every field on a fresh document.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	m := Model{
		prefsPath: prefsPath,
		logger:    logger,
		doc:       document.New(),
		focus:     -1,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		page:      viewport.New(0, 0),
		theme:     GetTheme(themeName),
	}

	styles := m.theme.Combobox()
	for _, f := range cfg.Fields {
		box := combobox.New(combobox.Props{
			ID:            f.ID,
			Label:         f.Label,
			Options:       f.Options,
			Value:         f.Value,
			MaxVisible:    cfg.MaxVisible,
			InstantScroll: !cfg.SmoothScroll,
			Styles:        &styles,
			Logger:        logger,
		})
		if err := box.Mount(m.doc); err != nil {
			m.Close()
			return Model{}, fmt.Errorf("build form: %w", err)
		}
		m.fields = append(m.fields, box)
	}
	if len(m.fields) > 0 {
		m.focus = 0
		m.fields[0].Focus()
	}

	m.sync()
	return m, nil
}

// Close unmounts every field, releasing listeners and scroll locks.
func (m Model) Close() {
	for _, f := range m.fields {
		f.Unmount()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("combo")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			modal, cmd, done := m.modal.Update(msg, m.keys)
			m.modal = modal
			if done {
				m.modal = nil
			}
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.page.Width = msg.Width
		m.page.Height = max(1, msg.Height-headerHeight-footerHeight)
		m.resizeFields()
		m.sync()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.sync()
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		m.sync()
		return m, cmd

	case combobox.FocusMsg:
		m.focusField(msg.ID)
		m.sync()
		return m, nil

	case combobox.ChangeMsg:
		m.applyChange(msg)
		m.sync()
		return m, nil
	}

	// Placement measurement and scroll animation frames.
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for _, f := range m.fields {
		cmds = append(cmds, f.Update(msg))
	}
	m.sync()
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	screen := strings.Join([]string{
		m.renderHeader(),
		m.page.View(),
		m.renderFooter(),
	}, "\n")

	// Open panels float over everything, including header and footer.
	for _, f := range m.fields {
		if content, x, y, ok := f.Overlay(); ok {
			screen = overlay.Place(screen, content, x, y)
		}
	}
	return screen
}

// handleKey runs host bindings first and hands everything else to the
// focused field through the document.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modal = helpModal{keys: m.keys}
		return nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return nil

	case key.Matches(msg, m.keys.Inspect):
		m.inspect = !m.inspect
		return nil

	case key.Matches(msg, m.keys.Tab):
		m.moveFocus(1)
		return nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.moveFocus(-1)
		return nil

	case key.Matches(msg, m.keys.PageUp):
		m.scrollPage(-m.page.Height)
		return nil

	case key.Matches(msg, m.keys.PageDown):
		m.scrollPage(m.page.Height)
		return nil
	}

	if m.focus < 0 {
		return nil
	}
	return m.doc.DispatchKey(document.KeyEvent{
		Target: m.fields[m.focus].ID(),
		Key:    msg,
	})
}

// handleMouse routes pointer input to the topmost field under the pointer.
// A click blurs every other field.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	target := m.fieldAt(msg.X, msg.Y)

	if mouse.IsClick(msg) {
		for i, f := range m.fields {
			if i != target && (f.Focused() || f.State().Open) {
				f.Blur()
			}
		}
		if target < 0 {
			m.focus = -1
			return nil
		}
		return m.fields[target].Update(msg)
	}

	if d := mouse.WheelDelta(msg); d != 0 {
		if target >= 0 && m.fields[target].PanelContains(msg.X, msg.Y) {
			return m.fields[target].Update(msg)
		}
		m.scrollPage(d * 3)
		return nil
	}

	if target >= 0 {
		return m.fields[target].Update(msg)
	}
	return nil
}

// fieldAt returns the index of the field under (x, y), or -1. Open panels
// are checked first because they are drawn over the page. Controls scrolled
// under the header or footer are not hit.
func (m *Model) fieldAt(x, y int) int {
	for i, f := range m.fields {
		if f.PanelContains(x, y) {
			return i
		}
	}
	if y < headerHeight || y >= headerHeight+m.page.Height {
		return -1
	}
	for i, f := range m.fields {
		if f.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m *Model) moveFocus(delta int) {
	n := len(m.fields)
	if n == 0 {
		return
	}

	next := 0
	switch {
	case m.focus >= 0:
		m.fields[m.focus].Blur()
		next = (m.focus + delta + n) % n
	case delta < 0:
		next = n - 1
	}

	m.focus = next
	m.fields[next].Focus()
	m.ensureVisible(next)
}

func (m *Model) focusField(id string) {
	m.focus = -1
	for i, f := range m.fields {
		if f.ID() == id {
			m.focus = i
			f.Focus()
			continue
		}
		f.Blur()
	}
}

func (m *Model) ensureVisible(i int) {
	if i < 0 || i >= len(m.tops) {
		return
	}
	top := m.tops[i]
	bottom := top + m.fields[i].Height()
	switch {
	case top < m.page.YOffset:
		m.page.SetYOffset(top)
	case bottom > m.page.YOffset+m.page.Height:
		m.page.SetYOffset(bottom - m.page.Height)
	}
}

func (m *Model) scrollPage(delta int) {
	if m.doc.ScrollLocked() {
		m.logger.Printf("page scroll ignored: scroll lock held")
		return
	}
	m.page.SetYOffset(m.page.YOffset + delta)
}

func (m *Model) applyChange(msg combobox.ChangeMsg) {
	for _, f := range m.fields {
		if f.ID() != msg.ID {
			continue
		}
		f.SetValue(msg.Option)
		m.status = fmt.Sprintf("%s → %s (%s), option %d of %d",
			f.Label(), msg.Option.Label, msg.Option.ValueString(),
			combobox.IndexOf(f.Options(), msg.Option)+1, len(f.Options()))
		m.logger.Printf("field %s: value %q", f.ID(), msg.Option.ValueString())
		return
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	styles := m.theme.Combobox()
	for _, f := range m.fields {
		f.SetStyles(styles)
	}
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Printf("save prefs: %v", err)
		}
	}
}

func (m *Model) resizeFields() {
	w := min(max(m.width-2*fieldIndent, minFieldWidth), maxFieldWidth)
	for _, f := range m.fields {
		f.SetWidth(w)
		f.SetViewport(headerHeight + m.page.Height)
	}
}

// sync rebuilds the page from the fields' current views and tells each
// field where it now sits on screen.
func (m *Model) sync() {
	styles := m.theme.Styles()
	indent := strings.Repeat(" ", fieldIndent)

	lines := []string{
		indent + styles.Text.Render("Choose one option per field. Tab moves between fields."),
		indent + styles.MutedText.Render("A panel opened from the keyboard holds the page scroll lock until it closes."),
	}
	tops := make([]int, 0, len(m.fields))
	for _, f := range m.fields {
		for g := 0; g < fieldGap; g++ {
			lines = append(lines, "")
		}
		tops = append(tops, len(lines))
		for _, l := range strings.Split(f.View(), "\n") {
			lines = append(lines, indent+l)
		}
	}
	lines = append(lines, "")
	for i := 0; i < pageTrailerLines; i++ {
		lines = append(lines, indent+styles.FaintText.Render("·"))
	}

	m.tops = tops
	m.page.SetContent(strings.Join(lines, "\n"))
	for i, f := range m.fields {
		f.SetOrigin(fieldIndent, headerHeight+tops[i]-m.page.YOffset)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err = tea.NewProgram(m, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
