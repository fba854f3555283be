package systems

import (
	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/ecs"
)

// GravitySystem integrates the player's vertical motion.
//
// Each tick: a held flap sets (not adds to) the vertical speed, gravity is
// applied to the speed, then the speed moves the entity. Velocity is updated
// before position.
type GravitySystem struct {
	Gravity   float64
	FlapSpeed float64
}

// NewGravitySystem creates a gravity system.
func NewGravitySystem(gravity, flapSpeed float64) *GravitySystem {
	return &GravitySystem{Gravity: gravity, FlapSpeed: flapSpeed}
}

// Name returns the system identifier.
func (s *GravitySystem) Name() string { return "gravity" }

// Access declares that gravity writes both Transform and Gravity.
func (s *GravitySystem) Access() Access {
	return Access{
		Writes: []ecs.ComponentType{
			components.TransformComponent,
			components.GravityComponent,
		},
	}
}

// Run applies a flap if one is held, then integrates speed and height.
func (s *GravitySystem) Run(w *ecs.World, f Frame) {
	flap := f.Input.Has(core.ActionFlap)
	q := ecs.NewQuery2(w, components.TransformComponent, components.GravityComponent)
	for q.Next() {
		t, g := q.Get()
		if flap {
			g.VerticalSpeed = s.FlapSpeed
		}
		g.VerticalSpeed -= s.Gravity * f.DT
		t.Y += g.VerticalSpeed * f.DT
	}
}
