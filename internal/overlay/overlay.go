// Package overlay composites one rendered block over another.
//
// Bubble Tea views are plain strings, so drawing a dropdown panel on top of a
// page means splicing the panel's lines into the page's lines at a cell
// offset while keeping the ANSI styling of both intact.
package overlay

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Place draws fg over bg with its top-left corner at cell (x, y). Parts of fg
// that fall outside bg, including above or left of it for negative
// coordinates, are cropped so every drawn cell stays where (x, y) puts it.
// bg lines shorter than x are padded with spaces.
func Place(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := Width(fgLines)

	if y < 0 {
		if -y >= len(fgLines) {
			return bg
		}
		fgLines = fgLines[-y:]
		y = 0
	}
	if x < 0 {
		if -x >= fgW {
			return bg
		}
		for i, ln := range fgLines {
			fgLines[i] = xansi.Cut(ln, -x, fgW)
		}
		fgW += x
		x = 0
	}
	if fgW == 0 {
		return bg
	}

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		bgW := xansi.StringWidth(bgLine)
		if bgW < x {
			bgLine += strings.Repeat(" ", x-bgW)
			bgW = x
		}

		left := xansi.Cut(bgLine, 0, x)
		right := ""
		if bgW > x+fgW {
			right = xansi.Cut(bgLine, x+fgW, bgW)
		}

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		}
		bgLines[y+i] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// Width returns the widest cell width among lines.
func Width(lines []string) int {
	w := 0
	for _, ln := range lines {
		if n := xansi.StringWidth(ln); n > w {
			w = n
		}
	}
	return w
}
