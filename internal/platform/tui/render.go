package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
	"github.com/vovakirdan/name-jumper/internal/jump"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Projection maps world coordinates onto screen cells. Row 0 is the HUD;
// the playfield fills the remaining rows and the world floor lands on the
// last row, which holds the ground line.
type Projection struct {
	world config.World
	cols  float64
	rows  float64
	top   int
}

// NewProjection fits the world into a screen of the given size.
func NewProjection(world config.World, screenW, screenH int) Projection {
	return Projection{
		world: world,
		cols:  float64(screenW),
		rows:  float64(core.Max(screenH-2, 1)),
		top:   1,
	}
}

// CellX returns the column containing world x.
func (p Projection) CellX(x float64) int {
	if p.world.Width <= 0 {
		return 0
	}
	return int(math.Floor(x * p.cols / p.world.Width))
}

// CellY returns the row containing world y.
func (p Projection) CellY(y float64) int {
	if p.world.Height <= 0 {
		return p.top
	}
	return p.top + int(math.Floor(y*p.rows/p.world.Height))
}

// Rect returns the cells covered by a world box. Non-empty boxes always
// cover at least one cell so small glyphs stay visible.
func (p Projection) Rect(b core.BoundingBox) core.Rect {
	x0, x1 := p.CellX(b.Left), p.CellX(b.Right)
	y0, y1 := p.CellY(b.Top), p.CellY(b.Bottom)
	if b.Width() > 0 && x1 == x0 {
		x1 = x0 + 1
	}
	if b.Height() > 0 && y1 == y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// HUD is the text shown above the playfield.
type HUD struct {
	Name   string
	Paused bool
}

// DrawSnapshot renders one tick of a session into the screen.
func DrawSnapshot(s *core.Screen, snap jump.Snapshot, hud HUD) {
	s.Clear()
	proj := NewProjection(snap.World, s.Width(), s.Height())

	ground := proj.CellY(snap.World.Height)
	s.DrawHLine(0, ground, s.Width(), '▔', core.ColorGray)

	for _, o := range snap.Obstacles {
		s.DrawRect(proj.Rect(o.Box), o.Label, core.ColorYellow)
	}

	playerColor := core.ColorGreen
	if snap.Outcome == jump.OutcomeLost {
		playerColor = core.ColorRed
	}
	s.DrawRect(proj.Rect(snap.Player.Box), '█', playerColor)

	drawHUD(s, snap, hud)
}

func drawHUD(s *core.Screen, snap jump.Snapshot, hud HUD) {
	left := fmt.Sprintf(" %s  tick %d  left %d/%d", hud.Name, snap.Tick, snap.Remaining(), len(snap.Obstacles))
	s.DrawText(0, 0, left)

	switch {
	case snap.Outcome == jump.OutcomeWon:
		drawBanner(s, core.ColorGreen, "YOU CLEARED YOUR NAME!", "r retry • b new name")
	case snap.Outcome == jump.OutcomeLost:
		drawBanner(s, core.ColorRed, "TRIPPED!", "r retry • b new name")
	case hud.Paused:
		status := "PAUSED"
		x := core.Clamp(s.Width()-len([]rune(status))-1, 0, s.Width())
		for i, r := range status {
			s.SetColored(x+i, 0, r, core.ColorCyan)
		}
	}
}

// drawBanner draws a framed message in the middle of the screen. The first
// line takes the given color.
func drawBanner(s *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := core.NewRect((s.Width()-w-4)/2, (s.Height()-len(lines)-2)/2, w+4, len(lines)+2)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l)
	}

	y := box.Y + 1
	for x := box.X + 1; x < box.Right()-1; x++ {
		if cell := s.GetCell(x, y); cell.Rune != ' ' {
			s.SetColored(x, y, cell.Rune, c)
		}
	}
}
