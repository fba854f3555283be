package game

import (
	"fmt"

	"github.com/vovakirdan/floppy/internal/assets"
	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/ecs"
)

// Draw layers.
const (
	zBackground = 0.0
	zGround     = 0.1
	zPlayer     = 0.2
	zUI         = 0.5
	zOverlay    = 0.9
)

// tilesPerLane is how many tiles cover a lane. With a reset factor of 3 a
// wrapped tile lands right behind the other one.
const tilesPerLane = 2

// spawnLanes creates the background and ground lanes owned by the machine.
// A lane whose tile would have no width is a startup error.
func (m *Machine) spawnLanes() error {
	lanes := []struct {
		sprite string
		speed  float64
		z      float64
	}{
		{assets.DayBackground, m.cfg.Scroll.BackgroundSpeed, zBackground},
		{assets.Ground, m.cfg.Scroll.GroundSpeed, zGround},
	}

	scale := m.cfg.Scroll.SpriteScale
	for _, lane := range lanes {
		h := m.sprites.Get(lane.sprite)
		w, ht := h.Size()
		sc := components.Scroller{Speed: lane.speed, Width: w * scale, Height: ht * scale}
		if !sc.Valid() {
			return fmt.Errorf("game: lane %q: invalid scroller %+v", lane.sprite, sc)
		}
		for i := 0; i < tilesPerLane; i++ {
			sc.Lane = i
			e := m.world.Create(
				ecs.With(components.TransformComponent, components.Transform{
					X:     sc.Width/2 + float64(i)*sc.Width,
					Y:     sc.Height / 2,
					Z:     lane.z,
					Scale: scale,
				}),
				ecs.With(components.ScrollerComponent, sc),
				ecs.With(components.SpriteComponent, components.Sprite{Handle: h}),
			)
			m.root = append(m.root, e)
		}
	}
	m.logger.Debug("lanes spawned", "tiles", m.world.Count(components.ScrollerComponent))
	return nil
}

// spawnFor creates the entities a state owns while it is on top.
func (m *Machine) spawnFor(kind StateKind) []ecs.Entity {
	w, h := m.cfg.Display.Width, m.cfg.Display.Height
	switch kind {
	case Splash:
		return []ecs.Entity{
			m.spawnSprite(assets.FlappyBirdText, w/2, h*0.8, zUI),
			m.spawnSprite(assets.PlayButton, w*0.3, h*0.3, zUI),
			m.spawnSprite(assets.LeaderboardButton, w*0.7, h*0.3, zUI),
		}
	case Ready:
		return []ecs.Entity{
			m.spawnSprite(assets.GetReadyText, w/2, h*0.8, zUI),
			m.spawnSprite(assets.TapTapDialogue, w/2, h/2, zUI),
		}
	case Play:
		return []ecs.Entity{m.spawnPlayer(w/2, h/2)}
	case Paused:
		return []ecs.Entity{m.spawnSprite(assets.TapTapDialogue, w/2, h/2, zOverlay)}
	}
	return nil
}

func (m *Machine) spawnSprite(name string, x, y, z float64) ecs.Entity {
	return m.world.Create(
		ecs.With(components.TransformComponent, components.Transform{X: x, Y: y, Z: z, Scale: m.cfg.Scroll.SpriteScale}),
		ecs.With(components.SpriteComponent, components.Sprite{Handle: m.sprites.Get(name)}),
	)
}

func (m *Machine) spawnPlayer(x, y float64) ecs.Entity {
	return m.world.Create(
		ecs.With(components.TransformComponent, components.Transform{X: x, Y: y, Z: zPlayer, Scale: m.cfg.Scroll.SpriteScale}),
		ecs.With(components.GravityComponent, components.Gravity{}),
		ecs.With(components.SpriteComponent, components.Sprite{Handle: m.sprites.Get(assets.Floppy)}),
	)
}
