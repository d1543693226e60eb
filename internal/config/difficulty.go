package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets are applied once when a session is created; speeds stay constant
// for the whole session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *JumpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.ScrollSpeed = 4
		cfg.Physics.Gravity = 1
	case DifficultyHard:
		cfg.Physics.ScrollSpeed = 7
		cfg.Obstacles.Spacing = cfg.Obstacles.Spacing * 4 / 5
	}
}
