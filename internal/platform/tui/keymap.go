package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmoto/moto2d/internal/input"
)

// KeyMapper translates Bubble Tea key messages to screen actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// KeyFromMsg converts a terminal key press into a binding key, so a
// press captured by the controls editor can be stored and compared
// against existing bindings.
func KeyFromMsg(msg tea.KeyMsg) input.Key {
	s := msg.String()
	if s == " " {
		return input.KeyboardKey("space", input.ModNone)
	}

	mod := input.ModNone
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			mod |= input.ModCtrl
			s = s[len("ctrl+"):]
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			mod |= input.ModAlt
			s = s[len("alt+"):]
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			mod |= input.ModShift
			s = s[len("shift+"):]
		default:
			return input.KeyboardKey(s, mod)
		}
	}
}
