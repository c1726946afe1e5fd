// Package mouse maps terminal coordinates to named screen regions.
//
// Components register rectangles while laying themselves out; a click is
// resolved by testing regions from the most recently added backwards, so
// content drawn later (an open dropdown panel) wins over what it covers.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle in cells. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named rectangle with optional payload (e.g. a row index).
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap is an ordered set of regions.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Empty rectangles are dropped.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	r := Rect{X: x, Y: y, W: w, H: height}
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// IsClick reports whether msg is a left-button press.
func IsClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// IsMotion reports whether msg is pointer movement without a pressed button.
func IsMotion(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion
}

// WheelDelta returns -1 for wheel up, +1 for wheel down and 0 otherwise.
func WheelDelta(msg tea.MouseMsg) int {
	if msg.Action != tea.MouseActionPress {
		return 0
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return -1
	case tea.MouseButtonWheelDown:
		return 1
	}
	return 0
}
