package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

func testSheet(t *testing.T, names ...string) *Sheet {
	t.Helper()
	cfg := config.SpriteSheet{Sprites: map[string]config.SpriteRegion{}}
	for i, n := range names {
		cfg.Sprites[n] = config.SpriteRegion{Index: i, Width: 10, Height: 20, Glyph: "x", Color: "red"}
	}
	s, err := NewSheet(cfg)
	if err != nil {
		t.Fatalf("NewSheet() failed: %v", err)
	}
	return s
}

func TestSheetResolve(t *testing.T) {
	s := testSheet(t, Floppy, Ground)

	h, err := s.Resolve(Floppy)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if h.Name() != Floppy || h.Glyph() != 'x' || h.Color() != core.ColorRed {
		t.Errorf("unexpected handle %+v", h)
	}
	if w, hh := h.Size(); w != 10 || hh != 20 {
		t.Errorf("Size() = %gx%g, expected 10x20", w, hh)
	}

	_, err = s.Resolve("missing")
	if !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Resolve(missing) = %v, expected ErrUnknownSprite", err)
	}
}

func TestNewSheetRejectsBadRegions(t *testing.T) {
	_, err := NewSheet(config.SpriteSheet{Sprites: map[string]config.SpriteRegion{
		Ground: {Width: 0, Height: 56},
	}})
	if err == nil {
		t.Error("zero-width region should be rejected")
	}

	_, err = NewSheet(config.SpriteSheet{Sprites: map[string]config.SpriteRegion{
		Ground: {Width: 1, Height: 1, Color: "plaid"},
	}})
	if err == nil {
		t.Error("unknown color should be rejected")
	}
}

func TestLoadReportsAllMissingNames(t *testing.T) {
	s := testSheet(t, Floppy)

	_, err := Load(s, []string{Floppy, Ground, UpPipe})
	if !errors.Is(err, ErrUnknownSprite) {
		t.Fatalf("Load() = %v, expected ErrUnknownSprite", err)
	}
	if !strings.Contains(err.Error(), Ground) || !strings.Contains(err.Error(), UpPipe) {
		t.Errorf("error %q should name every missing sprite", err)
	}
}

func TestLoadRequiredFromDefaultSheet(t *testing.T) {
	cfg, err := config.LoadSprites("")
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}
	sheet, err := NewSheet(cfg)
	if err != nil {
		t.Fatalf("NewSheet() failed: %v", err)
	}

	table, err := Load(sheet, RequiredSprites)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if table.Len() != len(RequiredSprites) {
		t.Errorf("Len() = %d, expected %d", table.Len(), len(RequiredSprites))
	}
	if table.Get(Floppy).IsZero() {
		t.Error("floppy should resolve")
	}
	if !table.Get("not-loaded").IsZero() {
		t.Error("unknown name should give zero handle")
	}
}
