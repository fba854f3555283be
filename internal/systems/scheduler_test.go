package systems

import (
	"strings"
	"testing"

	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/ecs"
)

type countingSystem struct {
	name   string
	access Access
	runs   int
	lastDT float64
}

func (c *countingSystem) Name() string   { return c.name }
func (c *countingSystem) Access() Access { return c.access }
func (c *countingSystem) Run(_ *ecs.World, f Frame) {
	c.runs++
	c.lastDT = f.DT
}

func TestSchedulerRunsEachSystemOnce(t *testing.T) {
	a := &countingSystem{name: "a"}
	b := &countingSystem{name: "b"}
	s, err := NewScheduler(0.25, a, b)
	if err != nil {
		t.Fatalf("NewScheduler() failed: %v", err)
	}

	s.Run(ecs.NewWorld(), Frame{DT: 0.01})

	if a.runs != 1 || b.runs != 1 {
		t.Errorf("runs = %d, %d; expected 1, 1", a.runs, b.runs)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
}

func TestSchedulerClampsDelta(t *testing.T) {
	c := &countingSystem{name: "c"}
	s, _ := NewScheduler(0.25, c)

	s.Run(ecs.NewWorld(), Frame{DT: 5})
	if c.lastDT != 0.25 {
		t.Errorf("stalled dt should clamp to 0.25, got %f", c.lastDT)
	}
	s.Run(ecs.NewWorld(), Frame{DT: -1})
	if c.lastDT != 0 {
		t.Errorf("negative dt should clamp to 0, got %f", c.lastDT)
	}
}

func TestSchedulerRejectsDuplicateNames(t *testing.T) {
	_, err := NewScheduler(0, &countingSystem{name: "x"}, &countingSystem{name: "x"})
	if err == nil {
		t.Error("duplicate system names should be rejected")
	}
	s, _ := NewScheduler(0)
	if err := s.Add(nil); err == nil {
		t.Error("nil system should be rejected")
	}
}

func TestSchedulerStagesConflictingWriters(t *testing.T) {
	s, err := NewScheduler(0.25, NewScrollSystem(3), NewGravitySystem(1500, 600))
	if err != nil {
		t.Fatalf("NewScheduler() failed: %v", err)
	}

	stages := s.Stages()
	if len(stages) != 2 {
		t.Fatalf("scroll and gravity both write Transform, expected 2 stages, got %v", stages)
	}
	if stages[0][0] != "scroll" || stages[1][0] != "gravity" {
		t.Errorf("conflicting systems should keep registration order, got %v", stages)
	}
}

func TestSchedulerSharesStageForDisjointAccess(t *testing.T) {
	pos := components.TransformComponent
	grav := components.GravityComponent
	scr := components.ScrollerComponent

	a := &countingSystem{name: "a", access: Access{Writes: []ecs.ComponentType{pos}}}
	b := &countingSystem{name: "b", access: Access{Writes: []ecs.ComponentType{grav}, Reads: []ecs.ComponentType{scr}}}
	c := &countingSystem{name: "c", access: Access{Reads: []ecs.ComponentType{pos}}}

	s, _ := NewScheduler(0, a, b, c)
	got := s.Stages()
	if len(got) != 2 || strings.Join(got[0], ",") != "a,b" || strings.Join(got[1], ",") != "c" {
		t.Errorf("Stages() = %v, expected [[a b] [c]]", got)
	}
}

func TestSchedulerOrderDoesNotChangeDisjointOutcome(t *testing.T) {
	build := func(order ...System) (*ecs.World, ecs.Entity, ecs.Entity) {
		w := ecs.NewWorld()
		tile := w.Create(
			ecs.With(components.TransformComponent, components.Transform{X: 216}),
			ecs.With(components.ScrollerComponent, components.Scroller{Speed: -75, Width: 432, Height: 768}),
		)
		player := w.Create(
			ecs.With(components.TransformComponent, components.Transform{X: 216, Y: 384}),
			ecs.With(components.GravityComponent, components.Gravity{}),
		)
		s, _ := NewScheduler(0.25, order...)
		in := core.NewInputFrame()
		for i := 0; i < 120; i++ {
			if i%20 == 0 {
				in.Set(core.ActionFlap)
			} else {
				in.Clear()
			}
			s.Run(w, Frame{DT: 1.0 / 60, Input: in})
		}
		return w, tile, player
	}

	w1, t1, p1 := build(NewScrollSystem(3), NewGravitySystem(1500, 600))
	w2, t2, p2 := build(NewGravitySystem(1500, 600), NewScrollSystem(3))

	a, _ := ecs.Get(w1, t1, components.TransformComponent)
	b, _ := ecs.Get(w2, t2, components.TransformComponent)
	if *a != *b {
		t.Errorf("tile differs by order: %+v vs %+v", *a, *b)
	}
	a, _ = ecs.Get(w1, p1, components.TransformComponent)
	b, _ = ecs.Get(w2, p2, components.TransformComponent)
	if *a != *b {
		t.Errorf("player differs by order: %+v vs %+v", *a, *b)
	}
}
