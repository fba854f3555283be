package game

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy/internal/assets"
	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/ecs"
	"github.com/vovakirdan/floppy/internal/systems"
)

// ErrNotStarted is returned by operations that need Start to have run.
var ErrNotStarted = errors.New("game: machine not started")

// frame is one entry of the state stack together with the entities it owns.
type frame struct {
	kind  StateKind
	owned []ecs.Entity
}

// StepResult describes what one call to Step did.
type StepResult struct {
	State     StateKind // top state after the step
	Event     Event
	Trans     Trans
	Simulated bool // systems ran this tick
	Running   bool
}

// Drawable is one entity the renderer should draw.
type Drawable struct {
	Entity    ecs.Entity
	Transform components.Transform
	Handle    assets.Handle
}

// Machine drives the game flow and owns the World.
// It is not safe for concurrent use; one goroutine steps it.
type Machine struct {
	cfg     config.GameConfig
	catalog assets.Catalog
	logger  *log.Logger

	world   *ecs.World
	sprites *assets.Table
	stack   []frame
	root    []ecs.Entity // scrolling lanes, outlive every state

	schedulers map[StateKind]*systems.Scheduler
	prev       core.InputFrame
	running    bool
	ticks      int
}

// NewMachine validates cfg and builds the per-state system sets.
// A nil logger discards output.
func NewMachine(cfg config.GameConfig, catalog assets.Catalog, logger *log.Logger) (*Machine, error) {
	if catalog == nil {
		return nil, errors.New("game: nil sprite catalog")
	}
	if err := cfg.Bindings.Validate(core.RequiredActions...); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Machine{
		cfg:        cfg,
		catalog:    catalog,
		logger:     logger,
		world:      ecs.NewWorld(),
		schedulers: make(map[StateKind]*systems.Scheduler),
		prev:       core.NewInputFrame(),
	}

	scroll := systems.NewScrollSystem(cfg.Scroll.ResetFactor)
	gravity := systems.NewGravitySystem(cfg.Physics.Gravity, cfg.Physics.FlapSpeed)
	for _, kind := range []StateKind{Splash, Ready, Play, Paused} {
		sched, err := systems.NewScheduler(cfg.Display.MaxDelta, systemsFor(kind, scroll, gravity)...)
		if err != nil {
			return nil, fmt.Errorf("game: %s systems: %w", kind, err)
		}
		m.schedulers[kind] = sched
	}
	return m, nil
}

// systemsFor is the static system set of each state.
func systemsFor(kind StateKind, scroll, gravity systems.System) []systems.System {
	switch kind {
	case Splash, Ready:
		return []systems.System{scroll}
	case Play:
		return []systems.System{scroll, gravity}
	}
	return nil
}

// Start enters Splash. The sprite table is loaded here, once, and a missing
// sprite name is returned as an error before any entity exists.
func (m *Machine) Start() error {
	if m.running {
		return errors.New("game: machine already started")
	}
	if m.sprites == nil {
		table, err := assets.Load(m.catalog, assets.RequiredSprites)
		if err != nil {
			return fmt.Errorf("game: load sprites: %w", err)
		}
		m.sprites = table
		m.logger.Info("sprites loaded", "count", table.Len())
	}
	if err := m.spawnLanes(); err != nil {
		return err
	}

	m.running = true
	m.push(Splash)
	return nil
}

// Step advances the machine by one tick.
//
// dt is the time since the previous tick and in is the set of actions held
// now. A tick either performs one transition or runs the top state's systems,
// never both.
func (m *Machine) Step(dt float64, in core.InputFrame) StepResult {
	if !m.running || len(m.stack) == 0 {
		return StepResult{Running: false}
	}

	top := m.top().kind
	ev := EventFor(top, m.prev, in)
	m.prev = in.Clone()
	m.ticks++

	tr := Transition(top, ev)
	if tr.Op != OpNone {
		m.apply(tr)
		m.logger.Debug("transition", "tick", m.ticks, "from", top, "event", ev, "op", tr.Op, "to", m.stateOrNone())
		return StepResult{State: m.stateOrNone(), Event: ev, Trans: tr, Running: m.running}
	}

	sched := m.schedulers[top]
	simulated := sched.Len() > 0
	if simulated {
		sched.Run(m.world, systems.Frame{DT: dt, Input: in})
	}
	return StepResult{State: top, Event: ev, Simulated: simulated, Running: true}
}

func (m *Machine) apply(tr Trans) {
	switch tr.Op {
	case OpPush:
		m.suspend(m.top())
		m.push(tr.Next)
	case OpPop:
		m.pop()
		if len(m.stack) == 0 {
			m.shutdown()
			return
		}
		m.resume(m.top())
	case OpSwitch:
		m.pop()
		m.push(tr.Next)
	case OpQuit:
		m.shutdown()
	}
}

func (m *Machine) push(kind StateKind) {
	m.stack = append(m.stack, frame{kind: kind})
	f := m.top()
	f.owned = append(f.owned, m.spawnFor(kind)...)
	m.logger.Debug("enter state", "state", kind, "entities", len(f.owned), "depth", len(m.stack))
}

func (m *Machine) pop() {
	f := m.top()
	n := m.world.DestroyAll(f.owned)
	m.logger.Debug("leave state", "state", f.kind, "destroyed", n)
	m.stack = m.stack[:len(m.stack)-1]
}

// suspend runs when a state gets covered by a pushed one.
// Ready hides its prompt; Play keeps everything so resuming is exact.
func (m *Machine) suspend(f *frame) {
	if f.kind == Ready {
		m.world.DestroyAll(f.owned)
		f.owned = f.owned[:0]
	}
}

// resume runs when the state above f was popped.
func (m *Machine) resume(f *frame) {
	if f.kind == Ready && len(f.owned) == 0 {
		f.owned = append(f.owned, m.spawnFor(Ready)...)
	}
	m.logger.Debug("resume state", "state", f.kind, "depth", len(m.stack))
}

// shutdown leaves every state, top first, then drops the lanes.
func (m *Machine) shutdown() {
	for len(m.stack) > 0 {
		m.pop()
	}
	m.world.DestroyAll(m.root)
	m.root = nil
	m.running = false
	m.logger.Info("game stopped", "ticks", m.ticks)
}

func (m *Machine) top() *frame {
	return &m.stack[len(m.stack)-1]
}

func (m *Machine) stateOrNone() StateKind {
	if len(m.stack) == 0 {
		return Splash
	}
	return m.top().kind
}

// State returns the top state. It is Splash before Start.
func (m *Machine) State() StateKind {
	return m.stateOrNone()
}

// Stack returns the state kinds from bottom to top.
func (m *Machine) Stack() []StateKind {
	out := make([]StateKind, len(m.stack))
	for i, f := range m.stack {
		out[i] = f.kind
	}
	return out
}

// Depth returns the number of states on the stack.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Running reports whether the machine has been started and not quit.
func (m *Machine) Running() bool {
	return m.running
}

// Ticks returns how many times Step has been called while running.
func (m *Machine) Ticks() int {
	return m.ticks
}

// World exposes the entity store for renderers and tests.
func (m *Machine) World() *ecs.World {
	return m.world
}

// Sprites returns the loaded sprite table, or ErrNotStarted.
func (m *Machine) Sprites() (*assets.Table, error) {
	if m.sprites == nil {
		return nil, ErrNotStarted
	}
	return m.sprites, nil
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.GameConfig {
	return m.cfg
}

// Drawables returns every sprite entity ordered by Z, then by entity id.
func (m *Machine) Drawables() []Drawable {
	var out []Drawable
	q := ecs.NewQuery2(m.world, components.TransformComponent, components.SpriteComponent)
	for q.Next() {
		t, s := q.Get()
		out = append(out, Drawable{Entity: q.Entity(), Transform: *t, Handle: s.Handle})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Transform.Z < out[j].Transform.Z
	})
	return out
}

// Player returns the player's transform and gravity state, if it exists.
func (m *Machine) Player() (components.Transform, components.Gravity, bool) {
	q := ecs.NewQuery2(m.world, components.TransformComponent, components.GravityComponent)
	if !q.Next() {
		return components.Transform{}, components.Gravity{}, false
	}
	t, g := q.Get()
	return *t, *g, true
}
