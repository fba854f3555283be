package config

import (
	_ "embed"

	"github.com/vovakirdan/floppy/internal/core"
)

//go:embed defaults/floppy.yaml
var defaultGameYAML []byte

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// DefaultGameConfig returns the default game configuration.
// The constants mirror defaults/floppy.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			Title:    "Floppy",
			Width:    144 * 3,
			Height:   256 * 3,
			TickRate: 60,
			MaxDelta: 0.25,
		},
		Physics: PhysicsConfig{
			Gravity:   1500,
			FlapSpeed: 600,
		},
		Scroll: ScrollConfig{
			BackgroundSpeed: -75,
			GroundSpeed:     -100,
			ResetFactor:     3,
			SpriteScale:     3,
		},
		Bindings: core.Bindings{
			core.ActionFlap:    {"space", "up", "w", "mouse-left"},
			core.ActionConfirm: {"enter"},
			core.ActionPause:   {"p"},
			core.ActionResume:  {"p"},
			core.ActionQuit:    {"escape", "q", "ctrl+c"},
		},
	}
}
