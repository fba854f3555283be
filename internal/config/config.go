// Package config provides YAML-based configuration loading for the game and
// its sprite sheet.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/floppy/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Display  DisplayConfig `yaml:"display"`
	Physics  PhysicsConfig `yaml:"physics"`
	Scroll   ScrollConfig  `yaml:"scroll"`
	Bindings core.Bindings `yaml:"bindings"`
}

// DisplayConfig defines the logical playfield and timing.
type DisplayConfig struct {
	Title    string  `yaml:"title"`
	Width    float64 `yaml:"width"`     // World units, also window pixels
	Height   float64 `yaml:"height"`    // World units, also window pixels
	TickRate int     `yaml:"tick_rate"` // Ticks per second
	MaxDelta float64 `yaml:"max_delta"` // Upper clamp for a single tick's dt, seconds
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Downward acceleration, units/s²
	FlapSpeed float64 `yaml:"flap_speed"` // Vertical speed set while flap is held
}

// ScrollConfig defines the tiled lanes.
type ScrollConfig struct {
	BackgroundSpeed float64 `yaml:"background_speed"` // Negative, units/s
	GroundSpeed     float64 `yaml:"ground_speed"`     // Negative, units/s
	ResetFactor     float64 `yaml:"reset_factor"`     // Wrapped tiles jump to width/2*factor
	SpriteScale     float64 `yaml:"sprite_scale"`     // Sprite pixels to world units
}

// SpriteSheet describes the regions of the sprite atlas.
type SpriteSheet struct {
	Image   string                  `yaml:"image"`
	Sprites map[string]SpriteRegion `yaml:"sprites"`
}

// SpriteRegion is one named region of the atlas.
type SpriteRegion struct {
	Index  int     `yaml:"index"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"` // Cell renderers fill the region with this rune
	Color  string  `yaml:"color"` // core color name
}

// Validate reports every missing or out-of-range setting in one error.
func (c GameConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Display.Width > 0, "display.width must be positive")
	check(c.Display.Height > 0, "display.height must be positive")
	check(c.Display.TickRate > 0, "display.tick_rate must be positive")
	check(c.Display.MaxDelta > 0, "display.max_delta must be positive")
	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.FlapSpeed > 0, "physics.flap_speed must be positive")
	check(c.Scroll.BackgroundSpeed < 0, "scroll.background_speed must be negative")
	check(c.Scroll.GroundSpeed < 0, "scroll.ground_speed must be negative")
	check(c.Scroll.ResetFactor >= 1, "scroll.reset_factor must be at least 1")
	check(c.Scroll.SpriteScale > 0, "scroll.sprite_scale must be positive")
	if err := c.Bindings.Validate(core.RequiredActions...); err != nil {
		problems = append(problems, "bindings: "+strings.TrimPrefix(err.Error(), core.ErrMissingAction.Error()+": ")+" unbound")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Validate reports sprites with non-positive sizes.
func (s SpriteSheet) Validate() error {
	var problems []string
	for name, r := range s.Sprites {
		if r.Width <= 0 || r.Height <= 0 {
			problems = append(problems, fmt.Sprintf("sprites.%s has no size", name))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
