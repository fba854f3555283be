package game

import (
	"github.com/vovakirdan/floppy/internal/components"
	"github.com/vovakirdan/floppy/internal/core"
)

// Script drives a started Machine without a front-end: it confirms through
// Splash and Ready, flaps on a fixed pattern in Play, and can pause once.
type Script struct {
	Ticks     int     // maximum number of Step calls
	DT        float64 // seconds per tick
	FlapEvery int     // flap on every Nth simulated play tick; 0 never flaps
	PauseAt   int     // simulated play tick to pause at; 0 never pauses
	PauseFor  int     // ticks to stay paused
}

// Summary is the outcome of a Script run.
type Summary struct {
	Steps       int
	PlayTicks   int // ticks simulated in Play
	Transitions int
	State       StateKind
	Running     bool
	Player      components.Transform
	Gravity     components.Gravity
	HasPlayer   bool
}

// Run executes the script against m and summarizes the result.
func (s Script) Run(m *Machine) Summary {
	var sum Summary
	paused, pausedTicks := false, 0

	for i := 0; i < s.Ticks && m.Running(); i++ {
		in := core.NewInputFrame()
		switch m.State() {
		case Splash, Ready:
			// Press on even ticks, release on odd ones.
			if i%2 == 0 {
				in.Set(core.ActionConfirm)
			}
		case Play:
			if s.PauseAt > 0 && !paused && sum.PlayTicks == s.PauseAt {
				in.Set(core.ActionPause)
				paused = true
			} else if s.FlapEvery > 0 && sum.PlayTicks%s.FlapEvery == 0 {
				in.Set(core.ActionFlap)
			}
		case Paused:
			pausedTicks++
			if pausedTicks > s.PauseFor {
				in.Set(core.ActionResume)
			}
		}

		res := m.Step(s.DT, in)
		sum.Steps++
		if res.Trans.Op != OpNone {
			sum.Transitions++
		}
		if res.Simulated && res.State == Play {
			sum.PlayTicks++
		}
	}

	sum.State = m.State()
	sum.Running = m.Running()
	sum.Player, sum.Gravity, sum.HasPlayer = m.Player()
	return sum
}
