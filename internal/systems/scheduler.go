// Package systems implements the per-tick transformations over the World and
// the scheduler that runs them.
package systems

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/ecs"
)

// Frame is the shared, read-only input of one tick.
type Frame struct {
	DT    float64 // Seconds since the previous tick, already clamped
	Input core.InputFrame
}

// Access declares the component types a system reads and writes.
type Access struct {
	Reads  []ecs.ComponentType
	Writes []ecs.ComponentType
}

// conflicts reports whether two systems may observe each other's writes.
func (a Access) conflicts(b Access) bool {
	for _, w := range a.Writes {
		if contains(b.Writes, w) || contains(b.Reads, w) {
			return true
		}
	}
	for _, w := range b.Writes {
		if contains(a.Reads, w) {
			return true
		}
	}
	return false
}

func contains(list []ecs.ComponentType, t ecs.ComponentType) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

// System is one per-tick transformation over a fixed component signature.
type System interface {
	Name() string
	Access() Access
	Run(w *ecs.World, f Frame)
}

// Scheduler runs a fixed set of systems once per tick.
//
// Systems are grouped into stages: no two systems in a stage write the same
// component type or read one the other writes. A system that conflicts with
// an earlier one lands in a later stage, so conflicting systems always run in
// registration order and non-conflicting ones never see each other's writes.
type Scheduler struct {
	stages   [][]System
	names    map[string]bool
	maxDelta float64
}

// NewScheduler creates a scheduler that clamps dt to [0, maxDelta].
// A maxDelta of zero disables the upper clamp.
func NewScheduler(maxDelta float64, systems ...System) (*Scheduler, error) {
	s := &Scheduler{
		names:    make(map[string]bool),
		maxDelta: maxDelta,
	}
	for _, sys := range systems {
		if err := s.Add(sys); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add registers a system. Names must be unique.
func (s *Scheduler) Add(sys System) error {
	if sys == nil {
		return errors.New("systems: nil system")
	}
	if s.names[sys.Name()] {
		return fmt.Errorf("systems: %q already registered", sys.Name())
	}
	s.names[sys.Name()] = true

	acc := sys.Access()
	stage := 0
	for i, st := range s.stages {
		for _, other := range st {
			if acc.conflicts(other.Access()) {
				stage = i + 1
			}
		}
	}
	if stage == len(s.stages) {
		s.stages = append(s.stages, nil)
	}
	s.stages[stage] = append(s.stages[stage], sys)
	return nil
}

// ClampDelta bounds dt to the scheduler's accepted range.
func (s *Scheduler) ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if s.maxDelta > 0 {
		return core.ClampF(dt, 0, s.maxDelta)
	}
	return dt
}

// Run executes every registered system exactly once.
func (s *Scheduler) Run(w *ecs.World, f Frame) {
	f.DT = s.ClampDelta(f.DT)
	for _, st := range s.stages {
		for _, sys := range st {
			sys.Run(w, f)
		}
	}
}

// Len returns the number of registered systems.
func (s *Scheduler) Len() int {
	return len(s.names)
}

// Stages returns system names grouped by stage, in execution order.
func (s *Scheduler) Stages() [][]string {
	out := make([][]string, len(s.stages))
	for i, st := range s.stages {
		for _, sys := range st {
			out[i] = append(out[i], sys.Name())
		}
	}
	return out
}
