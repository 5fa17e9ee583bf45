// Package input maps physical device events (keys, joystick buttons and
// axes) to logical game actions per player slot, and persists bindings
// through the profile-keyed configuration store.
package input

// PlayerAction is a logical bike control, abstracted from physical keys.
type PlayerAction int

const (
	ActionDrive PlayerAction = iota
	ActionBrake
	ActionFlipLeft
	ActionFlipRight
	ActionChangeDir

	NumPlayerActions
)

// NumPlayers is the number of simultaneous player slots.
const NumPlayers = 4

// MaxScriptKeys is the number of script hook key slots per player.
// Level scripts may bind custom actions to these.
const MaxScriptKeys = 16

// ConfigName returns the stable name under which the action is stored.
// The player number is appended by the handler on save.
func (a PlayerAction) ConfigName() string {
	switch a {
	case ActionDrive:
		return "KeyDrive"
	case ActionBrake:
		return "KeyBrake"
	case ActionFlipLeft:
		return "KeyFlipLeft"
	case ActionFlipRight:
		return "KeyFlipRight"
	case ActionChangeDir:
		return "KeyChangeDir"
	default:
		return "KeyUnknown"
	}
}

// Help returns the human-readable description shown in the controls UI.
func (a PlayerAction) Help() string {
	switch a {
	case ActionDrive:
		return "Drive"
	case ActionBrake:
		return "Brake"
	case ActionFlipLeft:
		return "Flip left"
	case ActionFlipRight:
		return "Flip right"
	case ActionChangeDir:
		return "Change direction"
	default:
		return "Unknown"
	}
}

// GlobalAction is a logical action that is not tied to a player slot.
// The set is fixed; some entries are not customizable by the user.
type GlobalAction int

const (
	GlobalSwitchUglyMode GlobalAction = iota
	GlobalSwitchBlacklist
	GlobalSwitchFavorite
	GlobalRestartLevel
	GlobalShowConsole
	GlobalConsoleHistoryPlus
	GlobalConsoleHistoryMinus
	GlobalRestartCheckpoint
	GlobalChat
	GlobalChatPrivate
	GlobalLevelWatching
	GlobalSwitchPlayer
	GlobalSwitchTrackingShotMode
	GlobalNextLevel
	GlobalPreviousLevel
	GlobalSwitchRenderGhostTrail
	GlobalScreenshot
	GlobalLevelInfo
	GlobalSwitchWWWAccess
	GlobalSwitchFPS
	GlobalSwitchGFXQualityMode
	GlobalSwitchGFXMode
	GlobalSwitchNetMode
	GlobalSwitchHighscoreInformation
	GlobalNetworkAdminConsole
	GlobalSwitchSafeMode

	// Not customizable from here on.
	GlobalHelp
	GlobalReloadFilesToDB
	GlobalPlayingPause
	GlobalKillProcess
	GlobalReplayingRewind
	GlobalReplayingForward
	GlobalReplayingPause
	GlobalReplayingStop
	GlobalReplayingFaster
	GlobalReplayingABitFaster
	GlobalReplayingSlower
	GlobalReplayingABitSlower

	NumGlobalActions
)
