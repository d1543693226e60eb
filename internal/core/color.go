package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by the renderer. The terminal layer maps them to ANSI codes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorGray
)
