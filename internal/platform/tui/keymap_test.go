package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

func defaultKeys(t *testing.T) KeyMap {
	t.Helper()
	km, err := NewKeyMap(config.DefaultGameConfig().Bindings)
	if err != nil {
		t.Fatalf("NewKeyMap() failed: %v", err)
	}
	return km
}

func TestKeyMapActions(t *testing.T) {
	km := defaultKeys(t)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionFlap}},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionFlap}},
		{"w flaps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, []core.Action{core.ActionFlap}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"p pauses and resumes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, []core.Action{core.ActionPause, core.ActionResume}},
		{"escape quits", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionQuit}},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, []core.Action{core.ActionQuit}},
		{"unbound key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.Actions(tc.msg)
			if len(got) != len(tc.expected) {
				t.Fatalf("Actions(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Actions(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
				}
			}
		})
	}
}

func TestKeyMapMouse(t *testing.T) {
	km := defaultKeys(t)

	press := tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	if got := km.MouseActions(press); len(got) != 1 || got[0] != core.ActionFlap {
		t.Errorf("left click = %v, expected [flap]", got)
	}

	release := tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
	if got := km.MouseActions(release); got != nil {
		t.Errorf("release should not trigger actions, got %v", got)
	}

	right := tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}
	if got := km.MouseActions(right); got != nil {
		t.Errorf("right click should not trigger actions, got %v", got)
	}
}

func TestKeyMapRequiresEveryAction(t *testing.T) {
	b := config.DefaultGameConfig().Bindings
	delete(b, core.ActionResume)

	if _, err := NewKeyMap(b); !errors.Is(err, core.ErrMissingAction) {
		t.Errorf("NewKeyMap() error = %v, expected ErrMissingAction", err)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := defaultKeys(t)
	if got := km.Flap.Help().Key; got != "space/up/w/mouse-left" {
		t.Errorf("flap help key = %q", got)
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp() should have 2 columns")
	}
}

func TestKeyMapRejectsUnknownKeys(t *testing.T) {
	b := config.DefaultGameConfig().Bindings
	b[core.ActionFlap] = []string{"spacebar"}
	b[core.ActionPause] = []string{"p", "ctrl+space", "f13"}

	_, err := NewKeyMap(b)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("NewKeyMap() error = %v, expected ErrUnknownKey", err)
	}
	for _, name := range []string{"spacebar (flap)", "ctrl+space (pause)", "f13 (pause)"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %q", err, name)
		}
	}
	if strings.Contains(err.Error(), "p (pause)") {
		t.Errorf("error %q names a valid key", err)
	}
}

func TestKeyMapAcceptsEveryTerminalKey(t *testing.T) {
	b := config.DefaultGameConfig().Bindings
	b[core.ActionFlap] = []string{"tab", "backspace", "down", "left", "right", "ctrl+f", MouseLeft}

	km, err := NewKeyMap(b)
	if err != nil {
		t.Fatalf("NewKeyMap() failed: %v", err)
	}
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyLeft},
		{Type: tea.KeyCtrlF},
	} {
		got := km.Actions(msg)
		if len(got) != 1 || got[0] != core.ActionFlap {
			t.Errorf("Actions(%q) = %v, expected [flap]", msg.String(), got)
		}
	}
}
