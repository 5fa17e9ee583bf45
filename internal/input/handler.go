package input

import (
	"fmt"
	"strconv"

	"github.com/openmoto/moto2d/internal/storage"
)

// Binding ties a logical action to a physical key.
type Binding struct {
	Name         string // stable configuration name (without player suffix)
	Key          Key    // current key, may be undefined
	Default      Key
	Help         string
	Customizable bool
}

type playerControls struct {
	actions [NumPlayerActions]Binding
	script  [MaxScriptKeys]Binding
}

// Handler holds the full binding table: per-player action keys, script
// hook keys and the global action keys. Constructed with defaults,
// overwritten by profile load, mutated by user rebinding and written
// back on save.
type Handler struct {
	players [NumPlayers]playerControls
	globals [NumGlobalActions]Binding
}

// NewHandler creates a handler with the default binding table installed.
func NewHandler() *Handler {
	h := &Handler{}
	h.SetDefaults()
	return h
}

// playerDefaults is the default keyboard layout per player slot.
var playerDefaults = [NumPlayers][NumPlayerActions]Key{
	{
		KeyboardKey("up", ModNone),
		KeyboardKey("down", ModNone),
		KeyboardKey("left", ModNone),
		KeyboardKey("right", ModNone),
		KeyboardKey("space", ModNone),
	},
	{
		KeyboardKey("a", ModNone),
		KeyboardKey("q", ModNone),
		KeyboardKey("z", ModNone),
		KeyboardKey("e", ModNone),
		KeyboardKey("w", ModNone),
	},
	{
		KeyboardKey("r", ModNone),
		KeyboardKey("f", ModNone),
		KeyboardKey("t", ModNone),
		KeyboardKey("y", ModNone),
		KeyboardKey("v", ModNone),
	},
	{
		KeyboardKey("u", ModNone),
		KeyboardKey("j", ModNone),
		KeyboardKey("i", ModNone),
		KeyboardKey("o", ModNone),
		KeyboardKey("k", ModNone),
	},
}

type globalDefault struct {
	name         string
	key          Key
	help         string
	customizable bool
}

var globalDefaults = [NumGlobalActions]globalDefault{
	GlobalSwitchUglyMode:             {"KeySwitchUglyMode", KeyboardKey("f9", ModNone), "Switch ugly mode", true},
	GlobalSwitchBlacklist:            {"KeySwitchBlacklist", KeyboardKey("b", ModCtrl), "Switch blacklist", true},
	GlobalSwitchFavorite:             {"KeySwitchFavorite", KeyboardKey("f3", ModNone), "Switch favorite", true},
	GlobalRestartLevel:               {"KeyRestartLevel", KeyboardKey("enter", ModNone), "Restart level", true},
	GlobalShowConsole:                {"KeyShowConsole", KeyboardKey("`", ModNone), "Show console", true},
	GlobalConsoleHistoryPlus:         {"KeyConsoleHistoryPlus", KeyboardKey("+", ModCtrl), "Console history next", true},
	GlobalConsoleHistoryMinus:        {"KeyConsoleHistoryMinus", KeyboardKey("-", ModCtrl), "Console history previous", true},
	GlobalRestartCheckpoint:          {"KeyRestartCheckpoint", KeyboardKey("backspace", ModNone), "Restart from checkpoint", true},
	GlobalChat:                       {"KeyChat", KeyboardKey("c", ModCtrl), "Open chat", true},
	GlobalChatPrivate:                {"KeyChatPrivate", KeyboardKey("p", ModCtrl), "Open private chat", true},
	GlobalLevelWatching:              {"KeyLevelWatching", KeyboardKey("tab", ModNone), "Level watching", true},
	GlobalSwitchPlayer:               {"KeySwitchPlayer", KeyboardKey("f2", ModNone), "Switch player", true},
	GlobalSwitchTrackingShotMode:     {"KeySwitchTrackingshotMode", KeyboardKey("f4", ModNone), "Switch tracking shot mode", true},
	GlobalNextLevel:                  {"KeyNextLevel", KeyboardKey("pgup", ModNone), "Next level", true},
	GlobalPreviousLevel:              {"KeyPreviousLevel", KeyboardKey("pgdown", ModNone), "Previous level", true},
	GlobalSwitchRenderGhostTrail:     {"KeySwitchRenderGhosttrail", KeyboardKey("g", ModCtrl), "Switch ghost trail rendering", true},
	GlobalScreenshot:                 {"KeyScreenshot", KeyboardKey("f12", ModNone), "Take a screenshot", true},
	GlobalLevelInfo:                  {"KeyLevelInfo", Key{}, "Show level info", true},
	GlobalSwitchWWWAccess:            {"KeySwitchWWWAccess", KeyboardKey("f8", ModNone), "Switch web access", true},
	GlobalSwitchFPS:                  {"KeySwitchFPS", KeyboardKey("f7", ModNone), "Switch FPS display", true},
	GlobalSwitchGFXQualityMode:       {"KeySwitchGFXQualityMode", KeyboardKey("f10", ModNone), "Switch graphics quality", true},
	GlobalSwitchGFXMode:              {"KeySwitchGFXMode", KeyboardKey("f11", ModNone), "Switch graphics mode", true},
	GlobalSwitchNetMode:              {"KeySwitchNetMode", KeyboardKey("n", ModCtrl), "Switch network mode", true},
	GlobalSwitchHighscoreInformation: {"KeySwitchHighscoreInformation", KeyboardKey("w", ModCtrl), "Switch highscore information", true},
	GlobalNetworkAdminConsole:        {"KeyNetworkAdminConsole", KeyboardKey("s", ModCtrl | ModAlt), "Network admin console", true},
	GlobalSwitchSafeMode:             {"KeySafeMode", KeyboardKey("f6", ModNone), "Switch safe mode", true},

	GlobalHelp:                {"KeyHelp", KeyboardKey("f1", ModNone), "Help", false},
	GlobalReloadFilesToDB:     {"KeyReloadFilesToDb", KeyboardKey("f5", ModNone), "Reload files to the database", false},
	GlobalPlayingPause:        {"KeyPlayingPause", KeyboardKey("esc", ModNone), "Pause", false},
	GlobalKillProcess:         {"KeyKillProcess", KeyboardKey("k", ModCtrl), "Kill process", false},
	GlobalReplayingRewind:     {"KeyReplayingRewind", KeyboardKey("left", ModNone), "Rewind replay", false},
	GlobalReplayingForward:    {"KeyReplayingForward", KeyboardKey("right", ModNone), "Forward replay", false},
	GlobalReplayingPause:      {"KeyReplayingPause", KeyboardKey("space", ModNone), "Pause replay", false},
	GlobalReplayingStop:       {"KeyReplayingStop", KeyboardKey("esc", ModNone), "Stop replay", false},
	GlobalReplayingFaster:     {"KeyReplayingFaster", KeyboardKey("up", ModNone), "Replay faster", false},
	GlobalReplayingABitFaster: {"KeyReplayingABitFaster", KeyboardKey("up", ModCtrl), "Replay a bit faster", false},
	GlobalReplayingSlower:     {"KeyReplayingSlower", KeyboardKey("down", ModNone), "Replay slower", false},
	GlobalReplayingABitSlower: {"KeyReplayingABitSlower", KeyboardKey("down", ModCtrl), "Replay a bit slower", false},
}

// SetDefaults installs the full default configuration, useful when
// something goes wrong with a stored profile.
func (h *Handler) SetDefaults() {
	for p := 0; p < NumPlayers; p++ {
		for a := PlayerAction(0); a < NumPlayerActions; a++ {
			h.players[p].actions[a] = Binding{
				Name:         a.ConfigName(),
				Key:          playerDefaults[p][a],
				Default:      playerDefaults[p][a],
				Help:         a.Help(),
				Customizable: true,
			}
		}
		for k := 0; k < MaxScriptKeys; k++ {
			h.players[p].script[k] = Binding{
				Name:         scriptKeyName(p, k),
				Help:         fmt.Sprintf("Script action %d", k),
				Customizable: true,
			}
		}
	}

	for g := GlobalAction(0); g < NumGlobalActions; g++ {
		d := globalDefaults[g]
		h.globals[g] = Binding{
			Name:         d.name,
			Key:          d.key,
			Default:      d.key,
			Help:         d.help,
			Customizable: d.customizable,
		}
	}
}

// scriptKeyName builds the configuration name of a script hook key.
// Player and slot numbers are part of the name, matching the stored form
// "KeyActionScript<player>_<slot>".
func scriptKeyName(player, slot int) string {
	return "KeyActionScript" + strconv.Itoa(player+1) + "_" + strconv.Itoa(slot)
}

// Load resets the table to defaults and overlays the values stored
// under the given profile. A stored value that fails to parse loads as
// the undefined key so a stale binding (an unplugged joystick, say)
// never wedges the rest of the table.
func (h *Handler) Load(store *storage.Store, profile string) error {
	h.SetDefaults()

	for p := 0; p < NumPlayers; p++ {
		suffix := strconv.Itoa(p + 1)

		for a := range h.players[p].actions {
			b := &h.players[p].actions[a]
			stored, err := store.ConfigString(profile, b.Name+suffix, b.Key.String())
			if err != nil {
				return fmt.Errorf("input: loading %s for player %d: %w", b.Name, p+1, err)
			}
			key, perr := ParseKey(stored)
			if perr != nil {
				b.Key = Key{}
				continue
			}
			b.Key = key
		}

		for k := range h.players[p].script {
			b := &h.players[p].script[k]
			stored, err := store.ConfigString(profile, b.Name, "")
			if err != nil {
				return fmt.Errorf("input: loading script key %d for player %d: %w", k, p+1, err)
			}
			if stored == "" {
				// Nothing stored: keep the default rather than unbinding.
				continue
			}
			key, perr := ParseKey(stored)
			if perr != nil {
				b.Key = Key{}
				continue
			}
			b.Key = key
		}
	}

	for g := range h.globals {
		b := &h.globals[g]
		stored, err := store.ConfigString(profile, b.Name, b.Key.String())
		if err != nil {
			return fmt.Errorf("input: loading %s: %w", b.Name, err)
		}
		key, perr := ParseKey(stored)
		if perr != nil {
			b.Key = Key{}
			continue
		}
		b.Key = key
	}

	return nil
}

// Save writes the binding table under the given profile in one batch.
// Undefined player and script keys are skipped so that a binding lost
// to an unplugged device does not overwrite the stored one; global keys
// are always written.
func (h *Handler) Save(store *storage.Store, profile string) error {
	batch, err := store.BeginConfig()
	if err != nil {
		return fmt.Errorf("input: saving bindings: %w", err)
	}

	for p := 0; p < NumPlayers; p++ {
		suffix := strconv.Itoa(p + 1)

		for a := range h.players[p].actions {
			b := h.players[p].actions[a]
			if !b.Key.IsDefined() {
				continue
			}
			if err := batch.Set(profile, b.Name+suffix, b.Key.String()); err != nil {
				batch.Rollback()
				return fmt.Errorf("input: saving %s for player %d: %w", b.Name, p+1, err)
			}
		}

		for k := range h.players[p].script {
			b := h.players[p].script[k]
			if !b.Key.IsDefined() {
				continue
			}
			if err := batch.Set(profile, b.Name, b.Key.String()); err != nil {
				batch.Rollback()
				return fmt.Errorf("input: saving script key %d for player %d: %w", k, p+1, err)
			}
		}
	}

	for g := range h.globals {
		b := h.globals[g]
		if err := batch.Set(profile, b.Name, b.Key.String()); err != nil {
			batch.Rollback()
			return fmt.Errorf("input: saving %s: %w", b.Name, err)
		}
	}

	if err := batch.Commit(); err != nil {
		return fmt.Errorf("input: saving bindings: %w", err)
	}
	return nil
}

// PlayerKey returns the key bound to an action for a player slot.
func (h *Handler) PlayerKey(a PlayerAction, player int) Key {
	return h.players[player].actions[a].Key
}

// SetPlayerKey rebinds an action for a player slot.
func (h *Handler) SetPlayerKey(a PlayerAction, player int, key Key) {
	h.players[player].actions[a].Key = key
}

// PlayerKeyHelp returns the help text of a player action binding.
func (h *Handler) PlayerKeyHelp(a PlayerAction, player int) string {
	return h.players[player].actions[a].Help
}

// GlobalKey returns the key bound to a global action.
func (h *Handler) GlobalKey(g GlobalAction) Key {
	return h.globals[g].Key
}

// SetGlobalKey rebinds a global action.
func (h *Handler) SetGlobalKey(g GlobalAction, key Key) {
	h.globals[g].Key = key
}

// GlobalKeyHelp returns the help text of a global action binding.
func (h *Handler) GlobalKeyHelp(g GlobalAction) string {
	return h.globals[g].Help
}

// GlobalKeyCustomizable reports whether a global action may be rebound.
func (h *Handler) GlobalKeyCustomizable(g GlobalAction) bool {
	return h.globals[g].Customizable
}

// ScriptKey returns the script hook key of a player slot.
func (h *Handler) ScriptKey(player, slot int) Key {
	return h.players[player].script[slot].Key
}

// SetScriptKey binds a script hook key of a player slot.
func (h *Handler) SetScriptKey(player, slot int, key Key) {
	h.players[player].script[slot].Key = key
}

// IsFreeKey reports whether the key is used by no player action or
// script binding. Global bindings do not block a key: in-game actions
// shadow them.
func (h *Handler) IsFreeKey(key Key) bool {
	for p := 0; p < NumPlayers; p++ {
		for a := range h.players[p].actions {
			if h.players[p].actions[a].Key == key {
				return false
			}
		}
		for k := range h.players[p].script {
			if h.players[p].script[k].Key == key {
				return false
			}
		}
	}
	return true
}

// actionLabels pairs the user-facing action label with its table index.
var actionLabels = [NumPlayerActions]string{
	ActionDrive:     "Drive",
	ActionBrake:     "Brake",
	ActionFlipLeft:  "PullBack",
	ActionFlipRight: "PushForward",
	ActionChangeDir: "ChangeDir",
}

// KeyByActionLabel resolves an action label like "Drive" or "Brake 2"
// (player suffix absent for player 1) to the bound key. The technical
// form is the serialized key; otherwise the human-readable label.
// Returns "?" for unknown labels.
func (h *Handler) KeyByActionLabel(label string, technical bool) string {
	for p := 0; p < NumPlayers; p++ {
		suffix := ""
		if p != 0 {
			suffix = " " + strconv.Itoa(p+1)
		}

		for a := PlayerAction(0); a < NumPlayerActions; a++ {
			if label != actionLabels[a]+suffix {
				continue
			}
			key := h.players[p].actions[a].Key
			if technical {
				return key.String()
			}
			return key.Label()
		}
	}
	return "?"
}
