package combobox

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/combo/internal/document"
	"github.com/five82/combo/internal/state"
)

const (
	defaultWidth      = 32
	defaultMaxVisible = 6
)

// Props configure a combobox. Options, Value, OnChange, Label and ID are the
// caller-facing contract; the rest tune rendering and let tests substitute
// geometry and scrolling.
type Props struct {
	Options  []*Option
	Value    *Option
	OnChange func(*Option)
	Label    string
	ID       string // generated when empty

	Width         int // total cells including border; zero uses 32
	MaxVisible    int // rows shown before the panel scrolls; zero uses 6
	InstantScroll bool
	KeyMap        KeyMap
	Styles        *Styles
	Surface       Surface
	Scroller      Scroller
	Logger        *log.Logger
}

// ChangeMsg reports a committed option that differs from the bound value.
// The host owns the value and is expected to call SetValue in response.
type ChangeMsg struct {
	ID     string
	Option *Option
}

// FocusMsg reports that the control took focus on its own (label click or
// pointer click), so the host can move its focus bookkeeping.
type FocusMsg struct {
	ID string
}

// Model is a single-choice combobox component.
type Model struct {
	id       string
	label    string
	options  []*Option
	value    *Option
	onChange func(*Option)

	store   state.Store
	session int // bumped on every open; stale measurements are dropped

	focused        bool
	originX        int
	originY        int
	width          int
	maxVisible     int
	viewportHeight int
	smooth         bool

	keys     KeyMap
	styles   Styles
	surface  Surface
	scroller Scroller
	logger   *log.Logger

	doc          *document.Document
	scope        *document.Scope
	unlockScroll document.Release
}

// New creates a combobox from props.
func New(p Props) *Model {
	id := p.ID
	if id == "" {
		id = newID()
	}

	m := &Model{
		id:         id,
		label:      p.Label,
		options:    p.Options,
		value:      p.Value,
		onChange:   p.OnChange,
		width:      p.Width,
		maxVisible: p.MaxVisible,
		smooth:     !p.InstantScroll,
		keys:       p.KeyMap,
		surface:    p.Surface,
		scroller:   p.Scroller,
		logger:     p.Logger,
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	if m.maxVisible <= 0 {
		m.maxVisible = defaultMaxVisible
	}
	if m.keys.empty() {
		m.keys = DefaultKeyMap()
	}
	if p.Styles != nil {
		m.styles = *p.Styles
	} else {
		m.styles = DefaultStyles()
	}
	if m.surface == nil {
		m.surface = selfSurface{m}
	}
	if m.scroller == nil {
		m.scroller = NewViewportScroller(id)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	m.scroller.SetRows(len(m.options), m.visibleRows())
	return m
}

func newID() string {
	return "combobox-" + uuid.NewString()
}

// ID returns the control id. It never changes for the life of the instance.
func (m *Model) ID() string { return m.id }

// Label returns the caption.
func (m *Model) Label() string { return m.label }

// Value returns the bound option.
func (m *Model) Value() *Option { return m.value }

// SetValue replaces the bound option. The combobox never calls this itself.
func (m *Model) SetValue(opt *Option) { m.value = opt }

// Options returns the option list.
func (m *Model) Options() []*Option { return m.options }

// SetOptions replaces the option list and pulls the highlight back into range.
func (m *Model) SetOptions(options []*Option) tea.Cmd {
	m.options = options
	m.scroller.SetRows(len(options), m.visibleRows())
	return m.apply(m.store.Clamp(len(options)))
}

// State returns a copy of the interaction state.
func (m *Model) State() state.Snapshot { return m.store.Snapshot() }

// Focused reports whether the control holds focus.
func (m *Model) Focused() bool { return m.focused }

// Focus gives the control focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus and closes the panel.
func (m *Model) Blur() {
	m.focused = false
	m.apply(m.store.Close())
}

// SetStyles replaces the render styles, e.g. after a theme change.
func (m *Model) SetStyles(s Styles) { m.styles = s }

// SetWidth sets the total rendered width in cells.
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// SetOrigin tells the control where its top-left cell is drawn on screen.
// Pointer hit testing and placement measurement depend on it.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetViewport records the terminal height used for placement.
func (m *Model) SetViewport(height int) {
	m.viewportHeight = height
}

// ScrollLocked reports whether this control currently holds the page scroll
// lock.
func (m *Model) ScrollLocked() bool { return m.unlockScroll != nil }

// Mount registers the control's key listener with doc. Unmount releases it.
func (m *Model) Mount(doc *document.Document) error {
	if m.scope != nil && !m.scope.Closed() {
		return nil
	}
	scope := &document.Scope{}
	release, err := doc.Listen(m.id, m.HandleKey)
	if err != nil {
		scope.Close()
		return fmt.Errorf("mount %s: %w", m.id, err)
	}
	scope.Add(release)

	m.doc = doc
	m.scope = scope
	return nil
}

// Unmount releases every document resource the control holds.
func (m *Model) Unmount() {
	m.releaseScroll()
	if m.scope != nil {
		m.scope.Close()
	}
	m.doc = nil
}

// Update handles keys (when focused), pointer events, window size, deferred
// placement measurement and scroll animation frames.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.HandleKey(document.KeyEvent{Target: m.id, Key: msg})

	case document.KeyEvent:
		return m.HandleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.viewportHeight = msg.Height
		return nil

	case measureMsg:
		if msg.id == m.id {
			m.resolvePlacement(msg.session)
		}
		return nil
	}

	if u, ok := m.scroller.(interface{ Update(tea.Msg) tea.Cmd }); ok {
		return u.Update(msg)
	}
	return nil
}

// apply schedules the follow-up work for a state transition.
func (m *Model) apply(eff state.Effects) tea.Cmd {
	if !eff.Changed() {
		return nil
	}
	var cmds []tea.Cmd
	snap := m.store.Snapshot()

	if eff.Opened {
		m.session++
		m.logger.Printf("combobox %s: open (%d options)", m.id, len(m.options))
		if snap.ScrollResetPending {
			m.scroller.ScrollToTop()
			m.store.AckScrollReset()
		}
		cmds = append(cmds, measureCmd(m.id, m.session))
	}
	if eff.Closed {
		m.logger.Printf("combobox %s: close", m.id)
		m.releaseScroll()
	}
	if eff.HighlightChanged && snap.Open {
		cmds = append(cmds, m.scroller.ScrollIntoView(snap.Highlighted, m.smooth))
	}
	return tea.Batch(cmds...)
}

// commit reports opt as the new selection unless it is the bound value itself.
func (m *Model) commit(opt *Option) tea.Cmd {
	if opt == nil {
		return nil
	}
	if opt == m.value {
		m.logger.Printf("combobox %s: commit skipped, option is already bound", m.id)
		return nil
	}
	m.logger.Printf("combobox %s: commit %q", m.id, opt.Label)
	if m.onChange != nil {
		m.onChange(opt)
	}
	id := m.id
	return func() tea.Msg {
		return ChangeMsg{ID: id, Option: opt}
	}
}

func (m *Model) highlightedOption() *Option {
	h := m.store.Highlighted()
	if h < 0 || h >= len(m.options) {
		return nil
	}
	return m.options[h]
}

func (m *Model) lockScroll() {
	if m.unlockScroll != nil {
		return
	}
	if m.doc == nil {
		m.unlockScroll = func() {}
		return
	}
	m.unlockScroll = m.doc.LockScroll(m.id)
}

func (m *Model) releaseScroll() {
	if m.unlockScroll == nil {
		return
	}
	m.unlockScroll()
	m.unlockScroll = nil
}

func (m *Model) visibleRows() int {
	return min(len(m.options), m.maxVisible)
}
