package systems

import (
	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/ecs"
)

// ScrollSystem advances scrolling tiles leftward and wraps them.
// A tile whose right edge passes x=0 jumps to Width/2*ResetFactor; with two
// tiles per lane and the default factor of 3 that is the slot right after
// the other tile.
type ScrollSystem struct {
	ResetFactor float64
}

// NewScrollSystem creates a scroll system with the given reset factor.
func NewScrollSystem(resetFactor float64) *ScrollSystem {
	return &ScrollSystem{ResetFactor: resetFactor}
}

// Name returns the system identifier.
func (s *ScrollSystem) Name() string { return "scroll" }

// Access declares that scrolling reads Scroller and writes Transform.
func (s *ScrollSystem) Access() Access {
	return Access{
		Reads:  []ecs.ComponentType{components.ScrollerComponent},
		Writes: []ecs.ComponentType{components.TransformComponent},
	}
}

// Run moves every scrolling tile by one tick and wraps those that left the screen.
func (s *ScrollSystem) Run(w *ecs.World, f Frame) {
	q := ecs.NewQuery2(w, components.TransformComponent, components.ScrollerComponent)
	for q.Next() {
		t, sc := q.Get()
		t.X = Scroll(t.X, sc.Speed, sc.Width, f.DT, s.ResetFactor)
	}
}

// Scroll returns the next x of a tile. It depends only on its arguments.
func Scroll(x, speed, width, dt, resetFactor float64) float64 {
	x += speed * dt
	if x+width/2 < 0 {
		x = width / 2 * resetFactor
	}
	return x
}
