package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy/internal/core"
)

// MouseLeft is the key name that binds an action to the left mouse button.
const MouseLeft = "mouse-left"

// ErrUnknownKey is returned when a binding names a key the terminal cannot read.
var ErrUnknownKey = errors.New("tui: unknown key")

// terminalKeys translates neutral key names to Bubble Tea key strings.
// Letters a-z map to themselves and are handled by terminalKey.
var terminalKeys = map[string]string{
	"space":     " ",
	"enter":     "enter",
	"escape":    "esc",
	"tab":       "tab",
	"backspace": "backspace",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
}

// terminalKey resolves a neutral key name, optionally prefixed with ctrl+.
// Terminals only report ctrl with letters.
func terminalKey(name string) (string, bool) {
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		if isLetter(rest) {
			return name, true
		}
		return "", false
	}
	if isLetter(name) {
		return name, true
	}
	t, ok := terminalKeys[name]
	return t, ok
}

func isLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'a' && s[0] <= 'z'
}

// KeyMap translates terminal input to game actions.
// It is built from the bindings table and doubles as the help footer's key map.
type KeyMap struct {
	Flap    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Resume  key.Binding
	Quit    key.Binding

	mouse []core.Action // actions bound to the left mouse button
}

// NewKeyMap builds key bindings for every required action.
// Unknown key names are reported together.
func NewKeyMap(b core.Bindings) (KeyMap, error) {
	if err := b.Validate(core.RequiredActions...); err != nil {
		return KeyMap{}, fmt.Errorf("tui: %w", err)
	}
	var unknown []string
	for a, keys := range b {
		for _, name := range keys {
			if name == MouseLeft {
				continue
			}
			if _, ok := terminalKey(name); !ok {
				unknown = append(unknown, fmt.Sprintf("%s (%s)", name, a))
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return KeyMap{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(unknown, ", "))
	}
	return KeyMap{
		Flap:    binding(b, core.ActionFlap),
		Confirm: binding(b, core.ActionConfirm),
		Pause:   binding(b, core.ActionPause),
		Resume:  binding(b, core.ActionResume),
		Quit:    binding(b, core.ActionQuit),
		mouse:   b.ActionsFor(MouseLeft),
	}, nil
}

func binding(b core.Bindings, a core.Action) key.Binding {
	var keys []string
	for _, k := range b.Keys(a) {
		if k == MouseLeft {
			continue
		}
		t, _ := terminalKey(k)
		keys = append(keys, t)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(b.Keys(a), "/"), string(a)),
	)
}

// Actions returns every action the key message triggers.
// A key shared by several actions (pause and resume) triggers all of them.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	for _, pair := range []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionFlap, k.Flap},
		{core.ActionConfirm, k.Confirm},
		{core.ActionPause, k.Pause},
		{core.ActionResume, k.Resume},
		{core.ActionQuit, k.Quit},
	} {
		if key.Matches(msg, pair.binding) {
			out = append(out, pair.action)
		}
	}
	return out
}

// MouseActions returns the actions a mouse event triggers.
// Only left button presses are bound.
func (k KeyMap) MouseActions(msg tea.MouseMsg) []core.Action {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return nil
	}
	return k.mouse
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Confirm},
		{k.Pause, k.Resume, k.Quit},
	}
}
