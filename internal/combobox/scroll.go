package combobox

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces smooth scrolling at one row per frame.
const frameInterval = 16 * time.Millisecond

// Scroller keeps the highlighted row visible inside the panel.
type Scroller interface {
	// SetRows sizes the scroll window: count rows, visible at once.
	SetRows(count, visible int)
	// ScrollToTop jumps to the first row and cancels any animation.
	ScrollToTop()
	// ScrollIntoView brings row to the nearest visible position. It returns
	// nil when the row is already visible or when the scroll was instant.
	ScrollIntoView(row int, smooth bool) tea.Cmd
	// ScrollBy moves the window by delta rows.
	ScrollBy(delta int)
	// Offset is the index of the first visible row.
	Offset() int
}

type scrollFrameMsg struct {
	owner string
	gen   int
}

// ViewportScroller is the default Scroller. A bubbles viewport tracks the
// window; rows themselves are drawn by the panel.
type ViewportScroller struct {
	owner  string
	vp     viewport.Model
	target int
	gen    int
}

// NewViewportScroller returns a scroller whose animation frames are tagged
// with owner.
func NewViewportScroller(owner string) *ViewportScroller {
	return &ViewportScroller{owner: owner, vp: viewport.New(1, 0)}
}

func (s *ViewportScroller) SetRows(count, visible int) {
	s.vp.Height = visible
	s.vp.SetContent(strings.Repeat("\n", max(0, count-1)))
	s.vp.SetYOffset(s.vp.YOffset)
}

func (s *ViewportScroller) ScrollToTop() {
	s.gen++
	s.vp.GotoTop()
	s.target = 0
}

func (s *ViewportScroller) ScrollIntoView(row int, smooth bool) tea.Cmd {
	s.gen++
	off, h := s.vp.YOffset, s.vp.Height
	if h <= 0 {
		return nil
	}

	target := off
	switch {
	case row < off:
		target = row
	case row >= off+h:
		target = row - h + 1
	default:
		return nil
	}

	if !smooth {
		s.vp.SetYOffset(target)
		s.target = s.vp.YOffset
		return nil
	}
	s.target = target
	return s.frame()
}

func (s *ViewportScroller) ScrollBy(delta int) {
	s.gen++
	s.vp.SetYOffset(s.vp.YOffset + delta)
	s.target = s.vp.YOffset
}

func (s *ViewportScroller) Offset() int {
	return s.vp.YOffset
}

// animating reports whether a smooth scroll is still moving.
func (s *ViewportScroller) animating() bool {
	return s.vp.YOffset != s.target
}

// Update advances a smooth scroll by one row per frame. Frames from a
// superseded request are dropped.
func (s *ViewportScroller) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(scrollFrameMsg)
	if !ok || f.owner != s.owner || f.gen != s.gen || !s.animating() {
		return nil
	}
	before := s.vp.YOffset
	switch {
	case before < s.target:
		s.vp.SetYOffset(before + 1)
	case before > s.target:
		s.vp.SetYOffset(before - 1)
	}
	if s.vp.YOffset == s.target || s.vp.YOffset == before {
		s.target = s.vp.YOffset
		return nil
	}
	return s.frame()
}

func (s *ViewportScroller) frame() tea.Cmd {
	owner, gen := s.owner, s.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{owner: owner, gen: gen}
	})
}
