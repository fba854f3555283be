package game

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/floppy/internal/assets"
	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/ecs"
)

const tick = 1.0 / 60

func defaultCatalog(t *testing.T) *assets.Sheet {
	t.Helper()
	sheet, err := config.LoadSprites("")
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}
	cat, err := assets.NewSheet(sheet)
	if err != nil {
		t.Fatalf("NewSheet() failed: %v", err)
	}
	return cat
}

func startedMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewMachine(config.DefaultGameConfig(), defaultCatalog(t), nil)
	if err != nil {
		t.Fatalf("NewMachine() failed: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return m
}

// stepTo drives a started machine from Splash to the requested state.
func stepTo(t *testing.T, m *Machine, target StateKind) {
	t.Helper()
	path := map[StateKind][]core.Action{
		Splash: nil,
		Ready:  {core.ActionConfirm},
		Play:   {core.ActionConfirm, core.ActionConfirm},
		Paused: {core.ActionConfirm, core.ActionConfirm, core.ActionPause},
	}
	for _, a := range path[target] {
		m.Step(tick, frameOf(a))
		m.Step(tick, frameOf()) // release
	}
	if m.State() != target {
		t.Fatalf("expected state %s, got %s (stack %v)", target, m.State(), m.Stack())
	}
}

func transforms(m *Machine) map[ecs.Entity]components.Transform {
	out := make(map[ecs.Entity]components.Transform)
	for _, d := range m.Drawables() {
		out[d.Entity] = d.Transform
	}
	return out
}

func TestStartSpawnsLanesAndTitle(t *testing.T) {
	m := startedMachine(t)

	if m.State() != Splash || m.Depth() != 1 {
		t.Fatalf("after Start: state %s depth %d", m.State(), m.Depth())
	}
	if got := m.World().Count(components.ScrollerComponent); got != 4 {
		t.Errorf("expected 4 lane tiles, got %d", got)
	}
	if got := m.World().Len(); got != 7 {
		t.Errorf("expected 4 lanes + 3 title sprites, got %d entities", got)
	}

	var bg, ground []float64
	for _, d := range m.Drawables() {
		switch d.Handle.Name() {
		case assets.DayBackground:
			bg = append(bg, d.Transform.X)
		case assets.Ground:
			ground = append(ground, d.Transform.X)
		}
	}
	if fmt.Sprint(bg) != "[216 648]" {
		t.Errorf("background tiles at %v, expected [216 648]", bg)
	}
	if fmt.Sprint(ground) != "[252 756]" {
		t.Errorf("ground tiles at %v, expected [252 756]", ground)
	}
}

func TestDrawablesOrderedByZ(t *testing.T) {
	m := startedMachine(t)
	stepTo(t, m, Play)

	ds := m.Drawables()
	for i := 1; i < len(ds); i++ {
		if ds[i].Transform.Z < ds[i-1].Transform.Z {
			t.Fatalf("drawables out of order at %d: %v after %v", i, ds[i].Transform.Z, ds[i-1].Transform.Z)
		}
	}
	if ds[len(ds)-1].Handle.Name() != assets.Floppy {
		t.Errorf("player should be drawn last in Play, got %s", ds[len(ds)-1].Handle.Name())
	}
}

func TestFullPathPreservesStateAcrossPause(t *testing.T) {
	m := startedMachine(t)

	res := m.Step(tick, frameOf(core.ActionConfirm))
	if res.Trans.Op != OpSwitch || res.State != Ready || res.Simulated {
		t.Fatalf("splash confirm: %+v", res)
	}
	if got := m.World().Len(); got != 6 {
		t.Errorf("Ready should hold 4 lanes + 2 prompt sprites, got %d", got)
	}

	if res := m.Step(tick, frameOf()); !res.Simulated {
		t.Error("Ready should scroll the lanes")
	}

	res = m.Step(tick, frameOf(core.ActionConfirm))
	if res.Trans.Op != OpPush || res.State != Play || m.Depth() != 2 {
		t.Fatalf("ready confirm: %+v depth %d", res, m.Depth())
	}
	if got := m.World().Len(); got != 5 {
		t.Errorf("Play should hold 4 lanes + player, got %d", got)
	}

	for i := 0; i < 30; i++ {
		in := frameOf()
		if i%10 == 0 {
			in.Set(core.ActionFlap)
		}
		if res := m.Step(tick, in); !res.Simulated {
			t.Fatalf("tick %d in Play did not simulate", i)
		}
	}

	before := transforms(m)
	_, gBefore, ok := m.Player()
	if !ok {
		t.Fatal("no player in Play")
	}

	res = m.Step(tick, frameOf(core.ActionPause))
	if res.Trans.Op != OpPush || res.State != Paused || m.Depth() != 3 {
		t.Fatalf("pause: %+v depth %d", res, m.Depth())
	}

	// Long stall with flap held while paused.
	for i := 0; i < 10; i++ {
		if res := m.Step(5.0, frameOf(core.ActionFlap)); res.Simulated {
			t.Fatal("Paused must not run systems")
		}
	}

	res = m.Step(tick, frameOf(core.ActionResume))
	if res.Trans.Op != OpPop || res.State != Play {
		t.Fatalf("resume: %+v", res)
	}

	after := transforms(m)
	for e, tr := range before {
		if after[e] != tr {
			t.Errorf("entity %v moved across pause: %+v -> %+v", e, tr, after[e])
		}
	}
	_, gAfter, _ := m.Player()
	if gAfter != gBefore {
		t.Errorf("vertical speed changed across pause: %v -> %v", gBefore.VerticalSpeed, gAfter.VerticalSpeed)
	}

	m.Step(tick, frameOf())
	_, gNext, _ := m.Player()
	want := gBefore.VerticalSpeed - 1500*tick
	if !almostEqual(gNext.VerticalSpeed, want) {
		t.Errorf("first tick after resume: speed %f, expected %f", gNext.VerticalSpeed, want)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestLeavingPlayReturnsToReady(t *testing.T) {
	m := startedMachine(t)
	stepTo(t, m, Play)

	res := m.Step(tick, frameOf(core.ActionConfirm))
	if res.Trans.Op != OpPop || res.State != Ready || m.Depth() != 1 {
		t.Fatalf("play confirm: %+v depth %d", res, m.Depth())
	}
	if _, _, ok := m.Player(); ok {
		t.Error("player should be destroyed when Play is left")
	}
	if got := m.World().Count(components.GravityComponent); got != 0 {
		t.Errorf("gravity components left behind: %d", got)
	}
	if got := m.World().Len(); got != 6 {
		t.Errorf("Ready prompt should be back, expected 6 entities, got %d", got)
	}
}

func TestHeldConfirmAdvancesOnce(t *testing.T) {
	m := startedMachine(t)
	confirm := frameOf(core.ActionConfirm)

	m.Step(tick, confirm)
	res := m.Step(tick, confirm)
	if m.State() != Ready || res.Trans.Op != OpNone {
		t.Errorf("held confirm should stop at Ready, got %s (%+v)", m.State(), res)
	}
}

func TestQuitFromAnyStateEmptiesWorld(t *testing.T) {
	for _, target := range []StateKind{Splash, Ready, Play, Paused} {
		for _, a := range []core.Action{core.ActionQuit, core.ActionClose} {
			t.Run(target.String()+"/"+string(a), func(t *testing.T) {
				m := startedMachine(t)
				stepTo(t, m, target)

				res := m.Step(tick, frameOf(a))
				if res.Running || m.Running() {
					t.Fatal("machine should stop")
				}
				if res.Trans.Op != OpQuit {
					t.Errorf("expected quit op, got %s", res.Trans.Op)
				}
				if m.World().Len() != 0 || m.Depth() != 0 {
					t.Errorf("after quit: %d entities, depth %d", m.World().Len(), m.Depth())
				}
				q := ecs.NewQuery2(m.World(), components.TransformComponent, components.SpriteComponent)
				if q.Next() {
					t.Error("queries should be empty after teardown")
				}
				if res := m.Step(tick, frameOf()); res.Running {
					t.Error("Step after quit should report not running")
				}
			})
		}
	}
}

func TestStallIsClampedInPlay(t *testing.T) {
	m := startedMachine(t)
	stepTo(t, m, Play)
	_, g0, _ := m.Player()

	m.Step(10, frameOf())

	cfg := config.DefaultGameConfig()
	_, g1, _ := m.Player()
	want := g0.VerticalSpeed - cfg.Physics.Gravity*cfg.Display.MaxDelta
	if !almostEqual(g1.VerticalSpeed, want) {
		t.Errorf("stalled tick speed %f, expected %f", g1.VerticalSpeed, want)
	}
}

type mapCatalog map[string]assets.Handle

func (c mapCatalog) Resolve(name string) (assets.Handle, error) {
	h, ok := c[name]
	if !ok {
		return assets.Handle{}, fmt.Errorf("%w %q", assets.ErrUnknownSprite, name)
	}
	return h, nil
}

func TestMissingSpriteIsFatal(t *testing.T) {
	full := defaultCatalog(t)
	cat := mapCatalog{}
	for _, n := range assets.RequiredSprites {
		if n == assets.Floppy {
			continue
		}
		h, _ := full.Resolve(n)
		cat[n] = h
	}

	m, err := NewMachine(config.DefaultGameConfig(), cat, nil)
	if err != nil {
		t.Fatalf("NewMachine() failed: %v", err)
	}
	err = m.Start()
	if !errors.Is(err, assets.ErrUnknownSprite) {
		t.Fatalf("Start() error = %v, expected ErrUnknownSprite", err)
	}
	if !strings.Contains(err.Error(), assets.Floppy) {
		t.Errorf("error should name the missing sprite: %v", err)
	}
	if m.Running() || m.World().Len() != 0 {
		t.Error("nothing should start when a sprite is missing")
	}
	if _, err := m.Sprites(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Sprites() error = %v, expected ErrNotStarted", err)
	}
}

func TestMissingActionIsFatal(t *testing.T) {
	cfg := config.DefaultGameConfig()
	delete(cfg.Bindings, core.ActionFlap)

	_, err := NewMachine(cfg, defaultCatalog(t), nil)
	if !errors.Is(err, core.ErrMissingAction) {
		t.Fatalf("NewMachine() error = %v, expected ErrMissingAction", err)
	}
	if !strings.Contains(err.Error(), "flap") {
		t.Errorf("error should name the missing action: %v", err)
	}
}

func TestStartTwice(t *testing.T) {
	m := startedMachine(t)
	if err := m.Start(); err == nil {
		t.Error("second Start should fail")
	}
}
