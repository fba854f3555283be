// Package assets resolves sprite names to opaque renderable handles.
// The simulation core never inspects a Handle; renderers use the accessors.
package assets

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

// ErrUnknownSprite is returned when a sprite name is not in the sheet.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

// Sprite names the game requires at startup.
const (
	DayBackground     = "day-background"
	NightBackground   = "night-background"
	DownPipe          = "down-pipe"
	UpPipe            = "up-pipe"
	Ground            = "ground"
	Floppy            = "floppy"
	TapTapDialogue    = "tap-tap-dialogue"
	PlayButton        = "play-button"
	LeaderboardButton = "leaderboard-button"
	GetReadyText      = "get-ready-text"
	FlappyBirdText    = "flappy-bird-text"
)

// RequiredSprites is the fixed list loaded when the splash state starts.
var RequiredSprites = []string{
	DayBackground,
	NightBackground,
	DownPipe,
	UpPipe,
	Ground,
	Floppy,
	TapTapDialogue,
	PlayButton,
	LeaderboardButton,
	GetReadyText,
	FlappyBirdText,
}

// Handle references one region of the sprite sheet.
type Handle struct {
	name   string
	index  int
	width  float64
	height float64
	glyph  rune
	color  core.Color
}

// Name returns the sprite name the handle was resolved from.
func (h Handle) Name() string { return h.name }

// Index returns the region index within the sheet.
func (h Handle) Index() int { return h.index }

// Size returns the unscaled region size in pixels.
func (h Handle) Size() (float64, float64) { return h.width, h.height }

// Glyph returns the rune used by cell-based renderers.
func (h Handle) Glyph() rune { return h.glyph }

// Color returns the tint used by renderers without image data.
func (h Handle) Color() core.Color { return h.color }

// IsZero reports whether the handle was never resolved.
func (h Handle) IsZero() bool { return h.name == "" }

// Catalog resolves sprite names.
type Catalog interface {
	Resolve(name string) (Handle, error)
}

// Sheet is a Catalog backed by a sprite sheet definition.
type Sheet struct {
	regions map[string]Handle
}

// NewSheet builds a Sheet from its configuration.
func NewSheet(cfg config.SpriteSheet) (*Sheet, error) {
	s := &Sheet{regions: make(map[string]Handle, len(cfg.Sprites))}
	for name, r := range cfg.Sprites {
		if r.Width <= 0 || r.Height <= 0 {
			return nil, fmt.Errorf("assets: sprite %q has non-positive size %gx%g", name, r.Width, r.Height)
		}
		color, err := core.ParseColor(r.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", name, err)
		}
		glyph := '#'
		if r.Glyph != "" {
			glyph = []rune(r.Glyph)[0]
		}
		s.regions[name] = Handle{
			name:   name,
			index:  r.Index,
			width:  r.Width,
			height: r.Height,
			glyph:  glyph,
			color:  color,
		}
	}
	return s, nil
}

// Resolve returns the handle for name.
func (s *Sheet) Resolve(name string) (Handle, error) {
	h, ok := s.regions[name]
	if !ok {
		return Handle{}, fmt.Errorf("%w %q", ErrUnknownSprite, name)
	}
	return h, nil
}

// Names returns every sprite name in the sheet, sorted.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.regions))
	for n := range s.regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Table is the read-only name to handle map shared by the game states.
type Table struct {
	handles map[string]Handle
}

// Load resolves every name through c. All missing names are reported at once.
func Load(c Catalog, names []string) (*Table, error) {
	t := &Table{handles: make(map[string]Handle, len(names))}
	var missing []string
	for _, n := range names {
		h, err := c.Resolve(n)
		if err != nil {
			missing = append(missing, n)
			continue
		}
		t.handles[n] = h
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSprite, strings.Join(missing, ", "))
	}
	return t, nil
}

// Get returns the handle for a name that was loaded into the table.
// Names outside the loaded set return the zero Handle.
func (t *Table) Get(name string) Handle {
	return t.handles[name]
}

// Len returns the number of loaded handles.
func (t *Table) Len() int {
	return len(t.handles)
}
