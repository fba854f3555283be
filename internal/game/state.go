// Package game implements the game-flow state machine that owns the World.
//
// States form a stack. The top state decides which systems run each tick and
// which input events it reacts to. Every transition is a pure function of the
// top state and the event, so the whole flow can be tested without a World.
package game

import "github.com/vovakirdan/floppy/internal/core"

// StateKind identifies one game-flow state.
type StateKind int

const (
	Splash StateKind = iota
	Ready
	Play
	Paused
)

var stateNames = [...]string{
	Splash: "splash",
	Ready:  "ready",
	Play:   "play",
	Paused: "paused",
}

// String returns the lowercase state name.
func (s StateKind) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Event is a discrete game-flow input derived from the InputFrame.
type Event int

const (
	EventNone Event = iota
	EventConfirm
	EventPause
	EventResume
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventConfirm:
		return "confirm"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventQuit:
		return "quit"
	}
	return "none"
}

// Op is a stack operation.
type Op int

const (
	OpNone   Op = iota
	OpPush      // suspend the top state and enter Next above it
	OpPop       // leave the top state and resume the one below
	OpSwitch    // leave the top state and enter Next in its place
	OpQuit      // leave every state and stop
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpSwitch:
		return "switch"
	case OpQuit:
		return "quit"
	}
	return "none"
}

// Trans is the result of Transition.
type Trans struct {
	Op   Op
	Next StateKind // meaningful for OpPush and OpSwitch
}

// Transition returns the stack operation state s performs on event e.
// Events a state does not react to yield OpNone.
func Transition(s StateKind, e Event) Trans {
	if e == EventQuit {
		return Trans{Op: OpQuit}
	}
	switch s {
	case Splash:
		if e == EventConfirm {
			return Trans{Op: OpSwitch, Next: Ready}
		}
	case Ready:
		if e == EventConfirm {
			return Trans{Op: OpPush, Next: Play}
		}
	case Play:
		switch e {
		case EventPause:
			return Trans{Op: OpPush, Next: Paused}
		case EventConfirm:
			return Trans{Op: OpPop}
		}
	case Paused:
		if e == EventResume {
			return Trans{Op: OpPop}
		}
	}
	return Trans{}
}

// EventFor derives the event state s should see this tick.
//
// Quit and window close win over everything. Other events fire on the tick an
// action goes down (held in cur, not in prev), so a key shared by pause and
// resume cannot toggle twice while held.
func EventFor(s StateKind, prev, cur core.InputFrame) Event {
	if cur.Has(core.ActionClose) || cur.Pressed(prev, core.ActionQuit) {
		return EventQuit
	}
	switch s {
	case Splash, Ready:
		if cur.Pressed(prev, core.ActionConfirm) {
			return EventConfirm
		}
	case Play:
		if cur.Pressed(prev, core.ActionPause) {
			return EventPause
		}
		if cur.Pressed(prev, core.ActionConfirm) {
			return EventConfirm
		}
	case Paused:
		if cur.Pressed(prev, core.ActionResume) {
			return EventResume
		}
	}
	return EventNone
}
