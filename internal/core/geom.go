// Package core provides fundamental types and utilities shared by the game
// and the terminal host. It has no Bubble Tea dependency so the simulation
// stays pure and testable.
package core

// Vector2 is a point in world units. Y grows downward.
type Vector2 struct {
	X, Y float64
}

// Vec creates a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v translated by (dx, dy).
func (v Vector2) Add(dx, dy float64) Vector2 {
	return Vector2{X: v.X + dx, Y: v.Y + dy}
}

// BoundingBox is an axis-aligned rectangle in world units.
// Invariant: Left <= Right and Top <= Bottom.
type BoundingBox struct {
	Top, Right, Bottom, Left float64
}

// BoxAt builds a box whose top-left corner is at pos.
func BoxAt(pos Vector2, w, h float64) BoundingBox {
	return BoundingBox{
		Top:    pos.Y,
		Right:  pos.X + w,
		Bottom: pos.Y + h,
		Left:   pos.X,
	}
}

// Width returns Right - Left.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Translate moves all four edges by the same delta.
func (b *BoundingBox) Translate(dx, dy float64) {
	b.Left += dx
	b.Right += dx
	b.Top += dy
	b.Bottom += dy
}

// IsColliding reports whether a and b overlap.
// Boxes that only share an edge count as colliding: the test rejects
// strictly separated boxes only.
func IsColliding(a, b BoundingBox) bool {
	if a.Right < b.Left || a.Left > b.Right {
		return false
	}
	if a.Bottom < b.Top || a.Top > b.Bottom {
		return false
	}
	return true
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
