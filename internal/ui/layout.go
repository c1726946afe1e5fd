package ui

// Screen regions, in rows.
const (
	headerHeight = 1
	footerHeight = 2 // status line + key help
)

// Form geometry, in cells.
const (
	fieldIndent   = 2
	fieldGap      = 1
	minFieldWidth = 16
	maxFieldWidth = 40
)

const helpModalWidth = 44

// pageTrailerLines pads the page below the last field so it can scroll on
// ordinary terminal sizes.
const pageTrailerLines = 16
