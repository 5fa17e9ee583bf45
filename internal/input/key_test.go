package input

import "testing"

func TestKeyStringForms(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{Key{}, ""},
		{KeyboardKey("up", ModNone), "Kup:0"},
		{KeyboardKey("b", ModCtrl), "Kb:1"},
		{KeyboardKey("s", ModCtrl | ModAlt), "Ks:3"},
		{JoyButtonKey(0, 3), "J0:3"},
		{JoyAxisKey(1, 0, -1), "A1:0:-1"},
	}

	for _, c := range cases {
		if got := c.key.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}

		parsed, err := ParseKey(c.want)
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", c.want, err)
			continue
		}
		if parsed != c.key {
			t.Errorf("ParseKey(%q) = %+v, want %+v", c.want, parsed, c.key)
		}
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	bad := []string{
		"X1:2",    // unknown device tag
		"K",       // no symbol
		"Kup",     // no modifier
		"K:1",     // empty symbol
		"Kup:x",   // non-numeric modifier
		"Kup:99",  // modifier out of range
		"J1",      // missing button
		"J1:2:3",  // too many fields
		"J-1:0",   // negative joystick
		"A0:1",    // missing direction
		"A0:1:0",  // direction must be +-1
		"A0:1:2",  // direction must be +-1
		"Aa:b:c",  // non-numeric
		"garbage", // not a key at all
	}

	for _, s := range bad {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("ParseKey(%q) succeeded, expected error", s)
		}
	}
}

func TestParseKeyEmptyIsUndefined(t *testing.T) {
	key, err := ParseKey("")
	if err != nil {
		t.Fatalf("ParseKey(\"\") failed: %v", err)
	}
	if key.IsDefined() {
		t.Error("Expected empty string to parse to the undefined key")
	}
}

func TestKeyLabel(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{Key{}, "(unbound)"},
		{KeyboardKey("up", ModNone), "up"},
		{KeyboardKey("b", ModCtrl), "ctrl+b"},
		{KeyboardKey("s", ModCtrl | ModAlt), "ctrl+alt+s"},
		{JoyButtonKey(0, 3), "joystick 0 button 3"},
		{JoyAxisKey(1, 0, -1), "joystick 1 axis 0-"},
		{JoyAxisKey(1, 0, 1), "joystick 1 axis 0+"},
	}

	for _, c := range cases {
		if got := c.key.Label(); got != c.want {
			t.Errorf("Label() = %q, want %q", got, c.want)
		}
	}
}

func TestKeyboardSymbolWithColon(t *testing.T) {
	// The last colon separates the modifier so symbols containing a
	// colon still round-trip.
	key := KeyboardKey(":", ModNone)
	parsed, err := ParseKey(key.String())
	if err != nil {
		t.Fatalf("ParseKey(%q) failed: %v", key.String(), err)
	}
	if parsed != key {
		t.Errorf("Round trip changed key: %+v != %+v", parsed, key)
	}
}
