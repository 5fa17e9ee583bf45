package input

import (
	"path/filepath"
	"testing"

	"github.com/openmoto/moto2d/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHandlerDefaults(t *testing.T) {
	h := NewHandler()

	if got := h.PlayerKey(ActionDrive, 0); got != KeyboardKey("up", ModNone) {
		t.Errorf("Player 1 drive default = %v, want up", got)
	}
	if got := h.PlayerKey(ActionDrive, 1); got != KeyboardKey("a", ModNone) {
		t.Errorf("Player 2 drive default = %v, want a", got)
	}
	if got := h.PlayerKey(ActionChangeDir, 3); got != KeyboardKey("k", ModNone) {
		t.Errorf("Player 4 change-dir default = %v, want k", got)
	}

	if got := h.GlobalKey(GlobalScreenshot); got != KeyboardKey("f12", ModNone) {
		t.Errorf("Screenshot default = %v, want f12", got)
	}
	if h.GlobalKey(GlobalLevelInfo).IsDefined() {
		t.Error("Level info should default to unbound")
	}

	// Script keys start unbound.
	for p := 0; p < NumPlayers; p++ {
		for k := 0; k < MaxScriptKeys; k++ {
			if h.ScriptKey(p, k).IsDefined() {
				t.Fatalf("Script key %d/%d should default to unbound", p, k)
			}
		}
	}
}

func TestHandlerCustomizableFlags(t *testing.T) {
	h := NewHandler()

	if !h.GlobalKeyCustomizable(GlobalScreenshot) {
		t.Error("Screenshot should be customizable")
	}
	if h.GlobalKeyCustomizable(GlobalHelp) {
		t.Error("Help should not be customizable")
	}
	if h.GlobalKeyCustomizable(GlobalPlayingPause) {
		t.Error("Pause should not be customizable")
	}
}

func TestHandlerSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	h := NewHandler()
	h.SetPlayerKey(ActionDrive, 0, KeyboardKey("w", ModNone))
	h.SetPlayerKey(ActionBrake, 2, JoyButtonKey(0, 5))
	h.SetGlobalKey(GlobalScreenshot, KeyboardKey("s", ModCtrl))
	h.SetScriptKey(1, 3, KeyboardKey("x", ModNone))

	if err := h.Save(store, "rider"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded := NewHandler()
	if err := loaded.Load(store, "rider"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := loaded.PlayerKey(ActionDrive, 0); got != KeyboardKey("w", ModNone) {
		t.Errorf("Loaded drive key = %v, want w", got)
	}
	if got := loaded.PlayerKey(ActionBrake, 2); got != JoyButtonKey(0, 5) {
		t.Errorf("Loaded brake key = %v, want joystick button", got)
	}
	if got := loaded.GlobalKey(GlobalScreenshot); got != KeyboardKey("s", ModCtrl) {
		t.Errorf("Loaded screenshot key = %v, want ctrl+s", got)
	}
	if got := loaded.ScriptKey(1, 3); got != KeyboardKey("x", ModNone) {
		t.Errorf("Loaded script key = %v, want x", got)
	}

	// Untouched bindings stay at their defaults.
	if got := loaded.PlayerKey(ActionBrake, 0); got != KeyboardKey("down", ModNone) {
		t.Errorf("Loaded brake key = %v, want default down", got)
	}
}

func TestHandlerLoadUsesDefaultsForOtherProfile(t *testing.T) {
	store := openTestStore(t)

	h := NewHandler()
	h.SetPlayerKey(ActionDrive, 0, KeyboardKey("w", ModNone))
	if err := h.Save(store, "rider"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	other := NewHandler()
	if err := other.Load(store, "someone-else"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := other.PlayerKey(ActionDrive, 0); got != KeyboardKey("up", ModNone) {
		t.Errorf("Other profile drive key = %v, want default up", got)
	}
}

func TestHandlerLoadMalformedValueUnbinds(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetConfigString("rider", "KeyDrive1", "not-a-key"); err != nil {
		t.Fatalf("SetConfigString() failed: %v", err)
	}

	h := NewHandler()
	if err := h.Load(store, "rider"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// The malformed value must not abort the load, and must not leave
	// the default in place either: the binding reads as unbound.
	if h.PlayerKey(ActionDrive, 0).IsDefined() {
		t.Error("Expected malformed stored key to load as unbound")
	}
	if got := h.PlayerKey(ActionBrake, 0); got != KeyboardKey("down", ModNone) {
		t.Errorf("Sibling binding = %v, want default down", got)
	}
}

func TestHandlerSaveSkipsUndefinedPlayerKeys(t *testing.T) {
	store := openTestStore(t)

	h := NewHandler()
	h.SetPlayerKey(ActionDrive, 0, Key{})
	if err := h.Save(store, "rider"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// No row written: a later load with the key plugged back in sees
	// the default, not an explicit unbind.
	v, err := store.ConfigString("rider", "KeyDrive1", "absent")
	if err != nil {
		t.Fatalf("ConfigString() failed: %v", err)
	}
	if v != "absent" {
		t.Errorf("Expected no stored row for undefined key, got %q", v)
	}
}

func TestHandlerIsFreeKey(t *testing.T) {
	h := NewHandler()

	if h.IsFreeKey(KeyboardKey("up", ModNone)) {
		t.Error("up is bound to player 1 drive, should not be free")
	}
	if h.IsFreeKey(KeyboardKey("k", ModNone)) {
		t.Error("k is bound to player 4 change-dir, should not be free")
	}
	if !h.IsFreeKey(KeyboardKey("m", ModNone)) {
		t.Error("m is unbound, should be free")
	}

	// Global bindings do not reserve keys.
	if !h.IsFreeKey(KeyboardKey("f12", ModNone)) {
		t.Error("f12 is only a global binding, should be free")
	}

	// Script keys do reserve keys.
	h.SetScriptKey(0, 0, KeyboardKey("m", ModNone))
	if h.IsFreeKey(KeyboardKey("m", ModNone)) {
		t.Error("m is now a script key, should not be free")
	}
}

func TestKeyByActionLabel(t *testing.T) {
	h := NewHandler()

	if got := h.KeyByActionLabel("Drive", false); got != "up" {
		t.Errorf("KeyByActionLabel(Drive) = %q, want up", got)
	}
	if got := h.KeyByActionLabel("Drive", true); got != "Kup:0" {
		t.Errorf("KeyByActionLabel(Drive, technical) = %q, want Kup:0", got)
	}
	if got := h.KeyByActionLabel("Brake 2", false); got != "q" {
		t.Errorf("KeyByActionLabel(Brake 2) = %q, want q", got)
	}
	if got := h.KeyByActionLabel("PullBack 3", false); got != "t" {
		t.Errorf("KeyByActionLabel(PullBack 3) = %q, want t", got)
	}
	if got := h.KeyByActionLabel("Fly", false); got != "?" {
		t.Errorf("KeyByActionLabel(Fly) = %q, want ?", got)
	}
	// Player 1 never takes a suffix.
	if got := h.KeyByActionLabel("Drive 1", false); got != "?" {
		t.Errorf("KeyByActionLabel(Drive 1) = %q, want ?", got)
	}
}
