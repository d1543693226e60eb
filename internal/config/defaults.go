package config

import (
	_ "embed"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the built-in configuration: a 1000x300 world,
// a 50x50 player resting on the floor at x=100, and glyphs every 500 units.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		World: World{
			Width:  1000,
			Height: 300,
		},
		Physics: Physics{
			Gravity:      1,
			JumpImpulse:  -20,
			ScrollSpeed:  5,
			MaxFallSpeed: 0,
		},
		Obstacles: Obstacles{
			Spacing:     500,
			GlyphWidth:  50,
			GlyphAscent: 70,
		},
		Player: Player{
			X:      100,
			Y:      250,
			Width:  50,
			Height: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumpYAML
}
