package state

// Placement records where the option panel is anchored relative to the control.
type Placement int

const (
	// PlacementBelow anchors the panel under the control, growing downward.
	PlacementBelow Placement = iota
	// PlacementAbove anchors the panel over the control, growing upward.
	PlacementAbove
)

func (p Placement) String() string {
	switch p {
	case PlacementAbove:
		return "above"
	default:
		return "below"
	}
}

// Snapshot is a copy of the interaction state at a point in time.
type Snapshot struct {
	Open               bool
	Highlighted        int
	Placement          Placement
	ScrollResetPending bool
}

// Effects describes what a transition changed so the caller can schedule
// the follow-up work (placement measurement, scroll reset, auto-scroll).
type Effects struct {
	Opened           bool
	Closed           bool
	HighlightChanged bool
}

// Changed reports whether the transition did anything observable.
func (e Effects) Changed() bool {
	return e.Opened || e.Closed || e.HighlightChanged
}

// Store owns the open/closed flag, highlighted row, placement and scroll
// reset request of one combobox instance. The zero value is the initial
// state: closed, row 0 highlighted, panel below.
//
// Store is not safe for concurrent use; it lives inside a single Bubble Tea
// Update loop.
type Store struct {
	snapshot Snapshot
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return s.snapshot
}

// IsOpen reports whether the panel is open.
func (s *Store) IsOpen() bool {
	return s.snapshot.Open
}

// Highlighted returns the highlighted row index.
func (s *Store) Highlighted() int {
	return s.snapshot.Highlighted
}

// Open moves Closed→Open, resetting the highlight to the first row and
// requesting a scroll reset. Opening an open store is a no-op.
func (s *Store) Open() Effects {
	if s.snapshot.Open {
		return Effects{}
	}
	prev := s.snapshot.Highlighted
	s.snapshot.Open = true
	s.snapshot.Highlighted = 0
	s.snapshot.ScrollResetPending = true
	return Effects{Opened: true, HighlightChanged: prev != 0}
}

// Close moves Open→Closed. Closing a closed store is a no-op.
func (s *Store) Close() Effects {
	if !s.snapshot.Open {
		return Effects{}
	}
	s.snapshot.Open = false
	s.snapshot.ScrollResetPending = false
	return Effects{Closed: true}
}

// Toggle opens a closed store and closes an open one.
func (s *Store) Toggle() Effects {
	if s.snapshot.Open {
		return s.Close()
	}
	return s.Open()
}

// Move shifts the highlight by delta rows within [0, count-1] without
// wrapping. It does nothing while closed or when count is zero.
func (s *Store) Move(delta, count int) Effects {
	if !s.snapshot.Open || count <= 0 {
		return Effects{}
	}
	return s.highlight(clamp(s.snapshot.Highlighted+delta, 0, count-1))
}

// Highlight sets the highlighted row directly. Out-of-range rows and calls
// while closed are ignored.
func (s *Store) Highlight(index, count int) Effects {
	if !s.snapshot.Open || index < 0 || index >= count {
		return Effects{}
	}
	return s.highlight(index)
}

// Clamp pulls the highlight back into range after the option list changed.
func (s *Store) Clamp(count int) Effects {
	return s.highlight(clamp(s.snapshot.Highlighted, 0, max(0, count-1)))
}

// SetPlacement records the resolved panel placement.
func (s *Store) SetPlacement(p Placement) {
	s.snapshot.Placement = p
}

// AckScrollReset clears the scroll reset request once the panel has been
// scrolled back to its top.
func (s *Store) AckScrollReset() {
	s.snapshot.ScrollResetPending = false
}

func (s *Store) highlight(index int) Effects {
	if index == s.snapshot.Highlighted {
		return Effects{}
	}
	s.snapshot.Highlighted = index
	return Effects{HighlightChanged: true}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
