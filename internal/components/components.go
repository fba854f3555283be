// Package components defines the plain data attached to entities.
// Components carry no behavior; systems in package systems mutate them.
package components

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/floppy/internal/assets"
)

// Component types registered with the entity store.
var (
	TransformComponent = donburi.NewComponentType[Transform]()
	ScrollerComponent  = donburi.NewComponentType[Scroller]()
	GravityComponent   = donburi.NewComponentType[Gravity]()
	SpriteComponent    = donburi.NewComponentType[Sprite]()
)

// Transform places an entity in world units. Y points up, origin bottom-left.
// Z orders drawing: higher values are drawn later.
type Transform struct {
	X, Y  float64
	Z     float64
	Scale float64
}

// Scroller moves an entity leftward and wraps it to tile a lane.
type Scroller struct {
	Speed  float64 // world units per second, negative scrolls left
	Width  float64 // on-screen width of one tile
	Height float64
	Lane   int // tile slot within the lane, informational
}

// Valid reports whether the scroller can wrap correctly.
func (s Scroller) Valid() bool {
	return s.Speed < 0 && s.Width > 0 && s.Height > 0
}

// Gravity marks the player entity driven by gravity and flaps.
type Gravity struct {
	VerticalSpeed float64
}

// Sprite is the renderable handle resolved from the sprite table.
type Sprite struct {
	Handle assets.Handle
}
