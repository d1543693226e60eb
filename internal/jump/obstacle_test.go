package jump

import (
	"testing"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
)

func TestLabels(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "AB", "AB"},
		{"inner spaces", "Ada Lovelace", "AdaLovelace"},
		{"tabs and newlines", " a\tb\nc ", "abc"},
		{"empty", "", ""},
		{"only spaces", "    ", ""},
		{"multibyte", "Zoë Ñ", "ZoëÑ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(Labels(tc.in)); got != tc.want {
				t.Errorf("Labels(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestObstacleFieldSpawnLayout(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	field := NewObstacleField([]rune("AB"), cfg, FixedMetrics{Width: 40, Ascent: 60})

	if field.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", field.Len())
	}

	a, b := field.At(0), field.At(1)
	if a.Label != 'A' || b.Label != 'B' {
		t.Errorf("labels = %q %q, expected spawn order A B", a.Label, b.Label)
	}
	if a.Position.X != 1000 || b.Position.X != 1500 {
		t.Errorf("x positions = %v, %v, expected 1000, 1500", a.Position.X, b.Position.X)
	}
	if a.Position.Y != 300 {
		t.Errorf("baseline y = %v, expected world floor 300", a.Position.Y)
	}

	want := core.BoundingBox{Top: 240, Right: 1040, Bottom: 300, Left: 1000}
	if a.Box != want {
		t.Errorf("Box = %+v, expected %+v", a.Box, want)
	}

	last, ok := field.Last()
	if !ok || last.Label != 'B' {
		t.Errorf("Last() = %q, %v, expected B", last.Label, ok)
	}
}

type widthByRune map[rune]float64

func (m widthByRune) Measure(r rune) (float64, float64) {
	return m[r], 10
}

func TestObstacleFieldUsesMetrics(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	field := NewObstacleField([]rune("iW"), cfg, widthByRune{'i': 5, 'W': 80})

	if w := field.At(0).Box.Width(); w != 5 {
		t.Errorf("'i' width = %v, expected 5", w)
	}
	if w := field.At(1).Box.Width(); w != 80 {
		t.Errorf("'W' width = %v, expected 80", w)
	}
	// Spacing is between origins, independent of glyph width
	if x := field.At(1).Position.X; x != 1500 {
		t.Errorf("second origin = %v, expected 1500", x)
	}
}

func TestObstacleFieldEmpty(t *testing.T) {
	field := NewObstacleField(nil, config.DefaultJumpConfig(), FixedMetrics{})

	if field.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", field.Len())
	}
	if _, ok := field.Last(); ok {
		t.Error("Last() on an empty field should report false")
	}
	if !field.passed() {
		t.Error("empty field should count as passed")
	}
}

func TestObstacleFieldScroll(t *testing.T) {
	field := NewObstacleField([]rune("xyz"), config.DefaultJumpConfig(), FixedMetrics{Width: 50, Ascent: 70})
	before := field.All()

	field.scroll(-5)

	for i, o := range field.All() {
		if o.Position.X != before[i].Position.X-5 {
			t.Errorf("obstacle %d x = %v, expected %v", i, o.Position.X, before[i].Position.X-5)
		}
		if o.Position.Y != before[i].Position.Y {
			t.Errorf("obstacle %d moved vertically", i)
		}
		if o.Box.Left != o.Position.X || o.Box.Width() != 50 || o.Box.Height() != 70 {
			t.Errorf("obstacle %d box did not translate rigidly: %+v", i, o.Box)
		}
	}
}

func TestObstacleFieldAllIsCopy(t *testing.T) {
	field := NewObstacleField([]rune("A"), config.DefaultJumpConfig(), FixedMetrics{Width: 1, Ascent: 1})

	all := field.All()
	all[0].Position.X = -999

	if field.At(0).Position.X == -999 {
		t.Error("All() should return a copy")
	}
}

func TestObstacleFieldPassedUsesLastObstacle(t *testing.T) {
	field := NewObstacleField([]rune("ABC"), config.DefaultJumpConfig(), FixedMetrics{Width: 50, Ascent: 70})

	// Last origin starts at 1000 + 2*500 = 2000
	field.scroll(-1500)
	if field.At(0).Position.X >= 0 {
		t.Fatal("first obstacle should be past the left edge")
	}
	if field.passed() {
		t.Error("field should not pass while the last obstacle is on screen")
	}

	field.scroll(-500)
	if field.passed() {
		t.Error("origin exactly at x=0 has not passed yet")
	}

	field.scroll(-0.5)
	if !field.passed() {
		t.Error("field should pass once the last origin is below zero")
	}
}

func TestObstacleFieldFirstHit(t *testing.T) {
	field := NewObstacleField([]rune("AB"), config.DefaultJumpConfig(), FixedMetrics{Width: 50, Ascent: 70})
	player := core.BoxAt(core.Vec(100, 250), 50, 50)

	if i := field.firstHit(player); i != -1 {
		t.Errorf("firstHit() = %d before scrolling, expected -1", i)
	}

	field.scroll(-850) // A spans [150, 200]: touches the player's right edge
	if i := field.firstHit(player); i != 0 {
		t.Errorf("firstHit() = %d, expected 0", i)
	}
}
