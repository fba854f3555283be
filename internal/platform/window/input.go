// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/floppy/internal/core"
)

// ErrUnknownKey is returned when a binding names a key the window cannot read.
var ErrUnknownKey = errors.New("window: unknown key")

var keyCodes = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
}

const mouseLeft = "mouse-left"

// KeyState reports which physical inputs are held right now.
type KeyState interface {
	KeyPressed(k ebiten.Key) bool
	MousePressed(b ebiten.MouseButton) bool
}

// ebitenState reads the live Ebitengine input state.
type ebitenState struct{}

func (ebitenState) KeyPressed(k ebiten.Key) bool            { return ebiten.IsKeyPressed(k) }
func (ebitenState) MousePressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }

// chord is one physical input: a key, optionally with ctrl, or a mouse button.
type chord struct {
	key   ebiten.Key
	ctrl  bool
	mouse bool
}

func (c chord) held(s KeyState) bool {
	if c.mouse {
		return s.MousePressed(ebiten.MouseButtonLeft)
	}
	if c.ctrl && !s.KeyPressed(ebiten.KeyControl) {
		return false
	}
	return s.KeyPressed(c.key)
}

// Input turns held keys into InputFrames using the bindings table.
type Input struct {
	chords map[core.Action][]chord
}

// NewInput resolves every key name in b. Unknown names are reported together.
func NewInput(b core.Bindings) (*Input, error) {
	if err := b.Validate(core.RequiredActions...); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	in := &Input{chords: make(map[core.Action][]chord, len(b))}
	var unknown []string
	for a, keys := range b {
		for _, name := range keys {
			c, ok := parseChord(name)
			if !ok {
				unknown = append(unknown, fmt.Sprintf("%s (%s)", name, a))
				continue
			}
			in.chords[a] = append(in.chords[a], c)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(unknown, ", "))
	}
	return in, nil
}

func parseChord(name string) (chord, bool) {
	if name == mouseLeft {
		return chord{mouse: true}, true
	}
	ctrl := false
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		ctrl, name = true, rest
	}
	k, ok := keyCodes[name]
	return chord{key: k, ctrl: ctrl}, ok
}

// Poll returns the actions held in s.
func (in *Input) Poll(s KeyState) core.InputFrame {
	f := core.NewInputFrame()
	for a, chords := range in.chords {
		for _, c := range chords {
			if c.held(s) {
				f.Set(a)
				break
			}
		}
	}
	return f
}
