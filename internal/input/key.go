package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Mod is a bitmask of keyboard modifiers held together with a key.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
	ModMeta

	ModNone Mod = 0
)

// String returns the modifier prefix in "ctrl+alt" form, empty for ModNone.
func (m Mod) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModMeta != 0 {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}

// DeviceKind identifies the physical source of a key descriptor.
type DeviceKind int

const (
	KindNone DeviceKind = iota
	KindKeyboard
	KindJoyButton
	KindJoyAxis
)

// Key describes a physical input: a keyboard key with modifiers, a
// joystick button, or a joystick axis direction. The zero value is the
// undefined key, used for unbound actions.
type Key struct {
	Kind   DeviceKind
	Sym    string // keyboard key name ("up", "a", "f9", ...)
	Mod    Mod
	Joy    int // joystick index
	Button int
	Axis   int
	Dir    int // axis direction: +1 or -1
}

// KeyboardKey builds a keyboard key descriptor.
func KeyboardKey(sym string, mod Mod) Key {
	return Key{Kind: KindKeyboard, Sym: sym, Mod: mod}
}

// JoyButtonKey builds a joystick button descriptor.
func JoyButtonKey(joy, button int) Key {
	return Key{Kind: KindJoyButton, Joy: joy, Button: button}
}

// JoyAxisKey builds a joystick axis direction descriptor.
func JoyAxisKey(joy, axis, dir int) Key {
	return Key{Kind: KindJoyAxis, Joy: joy, Axis: axis, Dir: dir}
}

// IsDefined reports whether the key is bound to a physical input.
func (k Key) IsDefined() bool {
	return k.Kind != KindNone
}

// String serializes the key to its stable configuration form:
//
//	""                 undefined
//	"K<sym>:<mod>"     keyboard key with modifier mask
//	"J<joy>:<button>"  joystick button
//	"A<joy>:<axis>:<dir>"  joystick axis direction
func (k Key) String() string {
	switch k.Kind {
	case KindKeyboard:
		return fmt.Sprintf("K%s:%d", k.Sym, k.Mod)
	case KindJoyButton:
		return fmt.Sprintf("J%d:%d", k.Joy, k.Button)
	case KindJoyAxis:
		return fmt.Sprintf("A%d:%d:%d", k.Joy, k.Axis, k.Dir)
	default:
		return ""
	}
}

// Label returns the human-readable form shown in the controls UI.
func (k Key) Label() string {
	switch k.Kind {
	case KindKeyboard:
		if mod := k.Mod.String(); mod != "" {
			return mod + "+" + k.Sym
		}
		return k.Sym
	case KindJoyButton:
		return fmt.Sprintf("joystick %d button %d", k.Joy, k.Button)
	case KindJoyAxis:
		sign := "+"
		if k.Dir < 0 {
			sign = "-"
		}
		return fmt.Sprintf("joystick %d axis %d%s", k.Joy, k.Axis, sign)
	default:
		return "(unbound)"
	}
}

// ParseKey parses the stable configuration form produced by String.
// An empty string parses to the undefined key. Any other malformed
// input is an error; callers are expected to fall back to the
// undefined key rather than keep a half-parsed binding.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, nil
	}

	body := s[1:]
	switch s[0] {
	case 'K':
		i := strings.LastIndexByte(body, ':')
		if i <= 0 {
			return Key{}, fmt.Errorf("input: malformed keyboard key %q", s)
		}
		sym := body[:i]
		mod, err := strconv.Atoi(body[i+1:])
		if err != nil || mod < 0 || mod > int(ModCtrl|ModAlt|ModShift|ModMeta) {
			return Key{}, fmt.Errorf("input: malformed modifier in %q", s)
		}
		return KeyboardKey(sym, Mod(mod)), nil

	case 'J':
		parts := strings.Split(body, ":")
		if len(parts) != 2 {
			return Key{}, fmt.Errorf("input: malformed joystick button %q", s)
		}
		joy, err1 := strconv.Atoi(parts[0])
		button, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || joy < 0 || button < 0 {
			return Key{}, fmt.Errorf("input: malformed joystick button %q", s)
		}
		return JoyButtonKey(joy, button), nil

	case 'A':
		parts := strings.Split(body, ":")
		if len(parts) != 3 {
			return Key{}, fmt.Errorf("input: malformed joystick axis %q", s)
		}
		joy, err1 := strconv.Atoi(parts[0])
		axis, err2 := strconv.Atoi(parts[1])
		dir, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || joy < 0 || axis < 0 {
			return Key{}, fmt.Errorf("input: malformed joystick axis %q", s)
		}
		if dir != 1 && dir != -1 {
			return Key{}, fmt.Errorf("input: axis direction must be 1 or -1 in %q", s)
		}
		return JoyAxisKey(joy, axis, dir), nil

	default:
		return Key{}, fmt.Errorf("input: unknown key form %q", s)
	}
}
