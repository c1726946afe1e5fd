package combobox

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/combo/internal/mouse"
	"github.com/five82/combo/internal/state"
)

func TestBind_Closed(t *testing.T) {
	got := Bind("c", state.Snapshot{}, abc(), nil)

	want := Accessibility{
		Control: Attributes{
			AttrID:       "c",
			AttrRole:     "combobox",
			AttrHasPopup: "listbox",
			AttrExpanded: "false",
			AttrControls: "c-options",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Bind mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_OpenWithDuplicateValues(t *testing.T) {
	opts := Options("Apple", "apple", "Apple again", "apple")
	got := Bind("c", state.Snapshot{Open: true, Highlighted: 1}, opts, opts[0])

	want := Accessibility{
		Control: Attributes{
			AttrID:               "c",
			AttrRole:             "combobox",
			AttrHasPopup:         "listbox",
			AttrExpanded:         "true",
			AttrControls:         "c-options",
			AttrActiveDescendant: "c-option-1",
		},
		Panel: Attributes{AttrRole: "listbox", AttrID: "c-options"},
		Rows: []Attributes{
			{AttrRole: "option", AttrID: "c-option-0", AttrSelected: "true", AttrHighlighted: "false"},
			{AttrRole: "option", AttrID: "c-option-1", AttrSelected: "false", AttrHighlighted: "true"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Bind mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_OpenEmpty(t *testing.T) {
	got := Bind("c", state.Snapshot{Open: true}, nil, nil)

	if _, ok := got.Control[AttrActiveDescendant]; ok {
		t.Fatal("aria-activedescendant set for an empty list")
	}
	if got.Panel == nil {
		t.Fatal("panel attributes missing while open")
	}
	if len(got.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(got.Rows))
	}
}

func TestAttributes_String(t *testing.T) {
	a := Attributes{AttrRole: "option", AttrID: "x"}
	if got, want := a.String(), `id="x" role="option"`; got != want {
		t.Fatalf("String = %s, want %s", got, want)
	}
}

func TestResolvePlacement(t *testing.T) {
	cases := []struct {
		name     string
		bottom   int
		panel    int
		viewport int
		want     state.Placement
	}{
		{"plenty of room", 5, 8, 40, state.PlacementBelow},
		{"one row short", 33, 8, 40, state.PlacementAbove},
		{"exact fit flips", 32, 8, 40, state.PlacementAbove},
		{"one row spare", 31, 8, 40, state.PlacementBelow},
		{"control below viewport", 50, 3, 40, state.PlacementAbove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			control := mouse.Rect{X: 0, Y: tc.bottom - 3, W: 20, H: 3}
			if got := ResolvePlacement(control, tc.panel, tc.viewport); got != tc.want {
				t.Fatalf("ResolvePlacement = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOptionIdentityHelpers(t *testing.T) {
	opts := Options("One", 1, "Two", 2.5, "Three", "three")
	if got := IndexOf(opts, opts[2]); got != 2 {
		t.Fatalf("IndexOf = %d, want 2", got)
	}
	if got := IndexOf(opts, NewOption("One", 1)); got != -1 {
		t.Fatalf("IndexOf equal-valued copy = %d, want -1", got)
	}
	for i, want := range []string{"1", "2.5", "three"} {
		if got := opts[i].ValueString(); got != want {
			t.Fatalf("ValueString[%d] = %q, want %q", i, got, want)
		}
	}
}
