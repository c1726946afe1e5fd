package state

import "testing"

func TestStore_ZeroValueIsClosedBelow(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.Open {
		t.Fatal("Open = true, want false")
	}
	if snap.Highlighted != 0 {
		t.Fatalf("Highlighted = %d, want 0", snap.Highlighted)
	}
	if snap.Placement != PlacementBelow {
		t.Fatalf("Placement = %v, want below", snap.Placement)
	}
	if snap.ScrollResetPending {
		t.Fatal("ScrollResetPending = true, want false")
	}
}

func TestStore_OpenResetsHighlightAndRequestsScrollReset(t *testing.T) {
	var s Store
	s.Open()
	s.Move(1, 5)
	s.Move(1, 5)
	s.Close()

	eff := s.Open()
	if !eff.Opened {
		t.Fatal("Opened = false, want true")
	}
	if !eff.HighlightChanged {
		t.Fatal("HighlightChanged = false, want true when reopening from row 2")
	}
	snap := s.Snapshot()
	if snap.Highlighted != 0 {
		t.Fatalf("Highlighted = %d, want 0", snap.Highlighted)
	}
	if !snap.ScrollResetPending {
		t.Fatal("ScrollResetPending = false, want true")
	}

	s.AckScrollReset()
	if s.Snapshot().ScrollResetPending {
		t.Fatal("ScrollResetPending still set after AckScrollReset")
	}
}

func TestStore_OpenWhenOpenIsNoop(t *testing.T) {
	var s Store
	s.Open()
	s.Move(1, 3)

	if eff := s.Open(); eff.Changed() {
		t.Fatalf("Open on open store = %+v, want no effects", eff)
	}
	if got := s.Highlighted(); got != 1 {
		t.Fatalf("Highlighted = %d, want 1", got)
	}
}

func TestStore_MoveClampsWithoutWrapping(t *testing.T) {
	for n := 1; n <= 6; n++ {
		var s Store
		s.Open()
		for i := 0; i < n+3; i++ {
			s.Move(1, n)
			if h := s.Highlighted(); h > n-1 {
				t.Fatalf("n=%d: Highlighted = %d after ArrowDown, exceeds %d", n, h, n-1)
			}
		}
		if h := s.Highlighted(); h != n-1 {
			t.Fatalf("n=%d: Highlighted = %d, want %d", n, h, n-1)
		}
		for i := 0; i < n+3; i++ {
			s.Move(-1, n)
			if h := s.Highlighted(); h < 0 {
				t.Fatalf("n=%d: Highlighted = %d after ArrowUp, below 0", n, h)
			}
		}
		if h := s.Highlighted(); h != 0 {
			t.Fatalf("n=%d: Highlighted = %d, want 0", n, h)
		}
	}
}

func TestStore_MoveIsNoopWhenClosedOrEmpty(t *testing.T) {
	var s Store
	if eff := s.Move(1, 3); eff.Changed() {
		t.Fatalf("Move while closed = %+v, want no effects", eff)
	}

	s.Open()
	if eff := s.Move(1, 0); eff.Changed() {
		t.Fatalf("Move with no options = %+v, want no effects", eff)
	}
	if h := s.Highlighted(); h != 0 {
		t.Fatalf("Highlighted = %d, want 0", h)
	}
}

func TestStore_Toggle(t *testing.T) {
	var s Store
	if eff := s.Toggle(); !eff.Opened {
		t.Fatalf("first Toggle = %+v, want Opened", eff)
	}
	if eff := s.Toggle(); !eff.Closed {
		t.Fatalf("second Toggle = %+v, want Closed", eff)
	}
	if s.IsOpen() {
		t.Fatal("IsOpen = true after two toggles")
	}
}

func TestStore_HighlightIgnoresOutOfRange(t *testing.T) {
	var s Store
	s.Open()

	cases := []struct {
		name  string
		index int
		want  int
	}{
		{"valid", 2, 2},
		{"negative", -1, 2},
		{"past end", 4, 2},
		{"first", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s.Highlight(tc.index, 4)
			if got := s.Highlighted(); got != tc.want {
				t.Fatalf("Highlight(%d) -> %d, want %d", tc.index, got, tc.want)
			}
		})
	}
}

func TestStore_ClampAfterOptionsShrink(t *testing.T) {
	var s Store
	s.Open()
	s.Move(5, 10)

	eff := s.Clamp(3)
	if !eff.HighlightChanged {
		t.Fatal("HighlightChanged = false, want true")
	}
	if got := s.Highlighted(); got != 2 {
		t.Fatalf("Highlighted = %d, want 2", got)
	}

	s.Clamp(0)
	if got := s.Highlighted(); got != 0 {
		t.Fatalf("Highlighted = %d after Clamp(0), want 0", got)
	}
}

func TestStore_PlacementSurvivesClose(t *testing.T) {
	var s Store
	s.Open()
	s.SetPlacement(PlacementAbove)
	s.Close()

	if got := s.Snapshot().Placement; got != PlacementAbove {
		t.Fatalf("Placement = %v, want above", got)
	}
	if got := PlacementAbove.String(); got != "above" {
		t.Fatalf("String() = %q, want above", got)
	}
}
