package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGame loads the game configuration and validates it.
// Search order: customPath -> ~/.floppy/configs/floppy.yaml -> ./configs/floppy.yaml -> embedded default
func LoadGame(customPath string) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := load(customPath, "floppy.yaml", defaultGameYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSprites loads the sprite sheet definition and validates it.
// Search order: customPath -> ~/.floppy/configs/sprites.yaml -> ./configs/sprites.yaml -> embedded default
func LoadSprites(customPath string) (SpriteSheet, error) {
	var sheet SpriteSheet
	if err := load(customPath, "sprites.yaml", defaultSpritesYAML, &sheet); err != nil {
		return sheet, err
	}
	if err := sheet.Validate(); err != nil {
		return sheet, err
	}
	return sheet, nil
}

// load decodes the first readable source into out. A custom path that cannot
// be read or parsed is an error; the user and local files are optional.
func load(customPath, filename string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: embedded %s is corrupt: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floppy", "configs", filename)
}

// Marshal renders a config back to YAML, for the config command.
func Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
