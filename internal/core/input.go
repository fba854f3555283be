package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingAction is returned when a required action has no key bound.
var ErrMissingAction = errors.New("core: missing input binding")

// Action is a logical input name. Games query actions, never raw keys.
type Action string

const (
	ActionFlap    Action = "flap"    // held: reset the player's vertical speed
	ActionConfirm Action = "confirm" // advance splash/ready, leave play
	ActionPause   Action = "pause"
	ActionResume  Action = "resume"
	ActionQuit    Action = "quit"

	// ActionClose is raised by front-ends when the window is asked to close.
	// It is never bound to a key.
	ActionClose Action = "close"
)

// RequiredActions must all be bound before the game loop starts.
var RequiredActions = []Action{
	ActionFlap,
	ActionConfirm,
	ActionPause,
	ActionResume,
	ActionQuit,
}

// InputFrame is the snapshot of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action names to whether they are down this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as down for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is down this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Pressed returns true if a is down in f but was not down in prev.
func (f InputFrame) Pressed(prev InputFrame, a Action) bool {
	return f.Has(a) && !prev.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// String lists the held actions in sorted order, e.g. "[flap pause]".
func (f InputFrame) String() string {
	held := make([]string, 0, len(f.Actions))
	for a, down := range f.Actions {
		if down {
			held = append(held, string(a))
		}
	}
	sort.Strings(held)
	return "[" + strings.Join(held, " ") + "]"
}

// Bindings maps each action to the physical key names that trigger it.
// Key names are front-end neutral ("space", "up", "enter", "escape",
// "mouse-left"); each front-end translates them to its own key codes.
type Bindings map[Action][]string

// Validate checks that every required action has at least one key.
// All missing actions are named in a single error.
func (b Bindings) Validate(required ...Action) error {
	var missing []string
	for _, a := range required {
		if len(b[a]) == 0 {
			missing = append(missing, string(a))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAction, strings.Join(missing, ", "))
	}
	return nil
}

// Keys returns the key names bound to a.
func (b Bindings) Keys(a Action) []string {
	return b[a]
}

// ActionsFor returns every action bound to key, sorted by name.
func (b Bindings) ActionsFor(key string) []Action {
	var out []Action
	for a, keys := range b {
		for _, k := range keys {
			if k == key {
				out = append(out, a)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KeyNames returns every distinct key name in the table, sorted.
func (b Bindings) KeyNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, keys := range b {
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	sort.Strings(out)
	return out
}
