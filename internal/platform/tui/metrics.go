package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/name-jumper/internal/config"
)

// CellMetrics measures glyphs by their terminal cell width, so wide runes
// become wider obstacles. Ascent is the same for every glyph.
type CellMetrics struct {
	CellWidth float64 // World units per terminal cell
	Ascent    float64
}

// NewCellMetrics builds terminal metrics from the configured glyph size.
func NewCellMetrics(cfg config.Obstacles) CellMetrics {
	return CellMetrics{CellWidth: cfg.GlyphWidth, Ascent: cfg.GlyphAscent}
}

// Measure implements jump.GlyphMetrics.
func (m CellMetrics) Measure(r rune) (width, ascent float64) {
	return float64(lipgloss.Width(string(r))) * m.CellWidth, m.Ascent
}
