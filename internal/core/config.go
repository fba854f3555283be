package core

// RuntimeConfig contains the per-run settings front-ends pass to the game.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in cells, or window width in pixels
	ScreenH  int // Terminal height in cells, or window height in pixels
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the nominal duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
