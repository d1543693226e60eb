package core

import "testing"

func TestIsColliding(t *testing.T) {
	base := BoxAt(Vec(0, 0), 10, 10)

	tests := []struct {
		name     string
		a, b     BoundingBox
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        base,
			b:        BoxAt(Vec(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "identical boxes",
			a:        base,
			b:        base,
			expected: true,
		},
		{
			name:     "touching on the right edge",
			a:        base,
			b:        BoxAt(Vec(10, 0), 10, 10),
			expected: true,
		},
		{
			name:     "touching on the bottom edge",
			a:        base,
			b:        BoxAt(Vec(0, 10), 10, 10),
			expected: true,
		},
		{
			name:     "touching at a corner",
			a:        base,
			b:        BoxAt(Vec(10, 10), 5, 5),
			expected: true,
		},
		{
			name:     "gap on x axis",
			a:        base,
			b:        BoxAt(Vec(10.5, 0), 10, 10),
			expected: false,
		},
		{
			name:     "gap on y axis",
			a:        base,
			b:        BoxAt(Vec(0, 10.001), 10, 10),
			expected: false,
		},
		{
			name:     "gap to the left and above",
			a:        base,
			b:        BoxAt(Vec(-20, -20), 5, 5),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(Vec(0, 0), 20, 20),
			b:        BoxAt(Vec(5, 5), 5, 5),
			expected: true,
		},
		{
			name:     "zero-size box on an edge",
			a:        base,
			b:        BoxAt(Vec(10, 5), 0, 0),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsColliding(tc.a, tc.b); got != tc.expected {
				t.Errorf("IsColliding() = %v, expected %v", got, tc.expected)
			}
			if got := IsColliding(tc.b, tc.a); got != tc.expected {
				t.Errorf("IsColliding() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundingBoxTranslate(t *testing.T) {
	b := BoxAt(Vec(100, 250), 50, 50)
	w, h := b.Width(), b.Height()

	b.Translate(-5, 0)
	b.Translate(0, -19)
	b.Translate(2.5, 3)

	want := BoundingBox{Top: 234, Right: 147.5, Bottom: 284, Left: 97.5}
	if b != want {
		t.Errorf("Translate() = %+v, expected %+v", b, want)
	}
	if b.Width() != w || b.Height() != h {
		t.Errorf("Translate changed size: %vx%v, expected %vx%v", b.Width(), b.Height(), w, h)
	}
}

func TestVectorAdd(t *testing.T) {
	v := Vec(1, 2).Add(3, -4)
	if v != (Vector2{X: 4, Y: -2}) {
		t.Errorf("Add() = %+v, expected {4 -2}", v)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
