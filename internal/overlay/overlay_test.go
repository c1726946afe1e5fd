package overlay

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestPlace(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	cases := []struct {
		name string
		fg   string
		x, y int
		want []string
	}{
		{
			name: "middle",
			fg:   "ab\ncd",
			x:    3, y: 1,
			want: []string{"..........", "...ab.....", "...cd....."},
		},
		{
			name: "clipped rows",
			fg:   "ab\ncd\nef",
			x:    0, y: 2,
			want: []string{"..........", "..........", "ab........"},
		},
		{
			name: "ragged fg padded",
			fg:   "abc\nd",
			x:    7, y: 0,
			want: []string{".......abc", ".......d  ", ".........."},
		},
		{
			name: "negative crops",
			fg:   "ab\ncd\nef",
			x:    -1, y: -1,
			want: []string{"d.........", "f.........", ".........."},
		},
		{
			name: "entirely above",
			fg:   "ab",
			x:    0, y: -1,
			want: []string{"..........", "..........", ".........."},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.Split(Place(bg, tc.fg, tc.x, tc.y), "\n")
			if len(got) != len(tc.want) {
				t.Fatalf("Place returned %d lines, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPlace_PadsShortBackground(t *testing.T) {
	got := Place("ab", "XY", 4, 0)
	if got != "ab  XY" {
		t.Fatalf("Place = %q, want %q", got, "ab  XY")
	}
}

func TestPlace_KeepsStyledBackground(t *testing.T) {
	bg := "\x1b[31mredredred\x1b[0m"
	got := Place(bg, "--", 3, 0)
	if w := xansi.StringWidth(got); w != 9 {
		t.Fatalf("width = %d, want 9", w)
	}
	if plain := xansi.Strip(got); plain != "red--dred" {
		t.Fatalf("plain = %q, want %q", plain, "red--dred")
	}
}

func TestPlace_EmptyForeground(t *testing.T) {
	if got := Place("abc", "", 0, 0); got != "abc" {
		t.Fatalf("Place = %q, want abc", got)
	}
}
