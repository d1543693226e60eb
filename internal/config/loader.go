package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked after the user file.
const LocalConfigPath = "configs/jump.yaml"

// Load loads the jump game configuration.
// Search order: customPath -> ~/.jumpgame/config.yaml -> ./configs/jump.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An explicit customPath must exist and parse; the implicit locations are skipped
// when missing or broken.
func Load(customPath string) (JumpConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultJumpYAML)
	if err != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultJumpConfig and validates the result.
func Parse(data []byte) (JumpConfig, error) {
	cfg := DefaultJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumpConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JumpConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg JumpConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumpgame", "config.yaml")
}
