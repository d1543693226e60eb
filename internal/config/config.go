// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the jump game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// JumpConfig contains all configuration for a jump session.
// Units are world units; one tick advances every motion by a fixed amount.
type JumpConfig struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
}

// World defines the playfield size. Y grows downward; the floor is at Height.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines per-tick motion constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Added to velocity each airborne tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set on take-off (negative = up)
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // Leftward obstacle motion per tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the clamp
}

// Obstacles defines how the name glyphs are laid out.
type Obstacles struct {
	Spacing     float64 `yaml:"spacing"`      // Horizontal distance between glyph origins
	GlyphWidth  float64 `yaml:"glyph_width"`  // Width of a single-cell glyph
	GlyphAscent float64 `yaml:"glyph_ascent"` // Height of a glyph above the baseline
}

// Player defines the avatar start position and fixed size.
type Player struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FloorY returns the y position of the player's top edge when grounded.
func (c JumpConfig) FloorY() float64 {
	return c.World.Height - c.Player.Height
}

// Validate checks the invariants the simulation relies on.
func (c JumpConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive, got %vx%v", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Player.Height > c.World.Height:
		return fmt.Errorf("%w: player height %v exceeds world height %v", ErrInvalidConfig, c.Player.Height, c.World.Height)
	case c.Player.X < 0 || c.Player.X+c.Player.Width > c.World.Width:
		return fmt.Errorf("%w: player x %v is outside the world", ErrInvalidConfig, c.Player.X)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump impulse must be negative, got %v", ErrInvalidConfig, c.Physics.JumpImpulse)
	case c.Physics.ScrollSpeed <= 0:
		return fmt.Errorf("%w: scroll speed must be positive, got %v", ErrInvalidConfig, c.Physics.ScrollSpeed)
	case c.Physics.MaxFallSpeed < 0:
		return fmt.Errorf("%w: max fall speed must not be negative, got %v", ErrInvalidConfig, c.Physics.MaxFallSpeed)
	case c.Obstacles.Spacing <= 0:
		return fmt.Errorf("%w: obstacle spacing must be positive, got %v", ErrInvalidConfig, c.Obstacles.Spacing)
	case c.Obstacles.GlyphWidth < 0 || c.Obstacles.GlyphAscent < 0:
		return fmt.Errorf("%w: glyph metrics must not be negative", ErrInvalidConfig)
	}
	return nil
}
