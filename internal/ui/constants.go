// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the sheet, in terminal cells.
const (
	// BorderHeight is the vertical space of the sheet's top edge. The
	// bottom edge is never drawn.
	BorderHeight = 1

	// BorderWidth is the horizontal space of the left and right edges.
	BorderWidth = 2

	// HandleHeight is the grab handle row under the top edge.
	HandleHeight = 1

	// ChromeHeight is the overhead above the scrollable content.
	// contentHeight = sheetHeight - ChromeHeight
	ChromeHeight = BorderHeight + HandleHeight

	// StatusRow is the screen row holding the status line.
	StatusRow = 0

	// WheelStep is the number of content lines one wheel notch scrolls.
	WheelStep = 3
)
