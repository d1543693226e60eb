package jump

import (
	"unicode"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
)

// Obstacle is one glyph of the name. Position is the glyph origin: left edge
// on the baseline, which sits on the world floor.
type Obstacle struct {
	Label    rune
	Position core.Vector2
	Box      core.BoundingBox
}

func (o *Obstacle) moveX(dx float64) {
	o.Position.X += dx
	o.Box.Translate(dx, 0)
}

// GlyphMetrics measures a glyph before it is placed in the world.
type GlyphMetrics interface {
	// Measure returns the glyph's advance width and its height above the baseline.
	Measure(r rune) (width, ascent float64)
}

// FixedMetrics gives every glyph the same size.
type FixedMetrics struct {
	Width  float64
	Ascent float64
}

// Measure implements GlyphMetrics.
func (m FixedMetrics) Measure(rune) (float64, float64) {
	return m.Width, m.Ascent
}

// MetricsFromConfig returns FixedMetrics for the configured glyph size.
func MetricsFromConfig(cfg config.Obstacles) FixedMetrics {
	return FixedMetrics{Width: cfg.GlyphWidth, Ascent: cfg.GlyphAscent}
}

// Labels returns the obstacle glyphs for a name: every rune except whitespace,
// in reading order.
func Labels(name string) []rune {
	labels := make([]rune, 0, len(name))
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		labels = append(labels, r)
	}
	return labels
}

// ObstacleField is the ordered row of obstacles spawned at session start.
// Obstacles are never added, removed or reordered afterwards.
type ObstacleField struct {
	obstacles []Obstacle
}

// NewObstacleField spawns one obstacle per label, starting at the right edge
// of the world and spaced by the configured increment.
func NewObstacleField(labels []rune, cfg config.JumpConfig, metrics GlyphMetrics) ObstacleField {
	obstacles := make([]Obstacle, 0, len(labels))
	for i, r := range labels {
		width, ascent := metrics.Measure(r)
		pos := core.Vec(cfg.World.Width+float64(i)*cfg.Obstacles.Spacing, cfg.World.Height)
		obstacles = append(obstacles, Obstacle{
			Label:    r,
			Position: pos,
			Box: core.BoundingBox{
				Top:    pos.Y - ascent,
				Right:  pos.X + width,
				Bottom: pos.Y,
				Left:   pos.X,
			},
		})
	}
	return ObstacleField{obstacles: obstacles}
}

// Len returns the number of obstacles.
func (f ObstacleField) Len() int {
	return len(f.obstacles)
}

// At returns a copy of the i-th obstacle.
func (f ObstacleField) At(i int) Obstacle {
	return f.obstacles[i]
}

// Last returns the final obstacle, or false when the field is empty.
func (f ObstacleField) Last() (Obstacle, bool) {
	if len(f.obstacles) == 0 {
		return Obstacle{}, false
	}
	return f.obstacles[len(f.obstacles)-1], true
}

// All returns a copy of the obstacles in spawn order.
func (f ObstacleField) All() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// scroll moves every obstacle horizontally.
func (f *ObstacleField) scroll(dx float64) {
	for i := range f.obstacles {
		f.obstacles[i].moveX(dx)
	}
}

// firstHit returns the index of the first obstacle overlapping box, or -1.
func (f ObstacleField) firstHit(box core.BoundingBox) int {
	for i, o := range f.obstacles {
		if core.IsColliding(box, o.Box) {
			return i
		}
	}
	return -1
}

// passed reports whether the last obstacle's origin has crossed the left edge.
// An empty field counts as passed.
func (f ObstacleField) passed() bool {
	last, ok := f.Last()
	if !ok {
		return true
	}
	return last.Position.X < 0
}
