package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held)
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// One-shot
	ActionConfirm    // Start / continue (Enter, Space, gamepad A)
	ActionQuit       // Leave the game
	ActionResetLevel // Regenerate the current level from its seed
	ActionToggleMute
	ActionVolumeUp
	ActionVolumeDown
)

// IsMovement reports whether the action is one of the four held movement actions
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// Axis returns the (dx, dy) unit step of a movement action, or (0, 0)
func (a Action) Axis() (dx, dy int) {
	switch a {
	case ActionMoveUp:
		return 0, -1
	case ActionMoveDown:
		return 0, 1
	case ActionMoveLeft:
		return -1, 0
	case ActionMoveRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Intent is what the player wants this tick: a directional step plus at most
// one one-shot action.
type Intent struct {
	DX     int
	DY     int
	Action Action
}

// Moving reports whether the intent carries a directional step
func (i Intent) Moving() bool {
	return i.DX != 0 || i.DY != 0
}

// IsZero reports whether the intent asks for nothing
func (i Intent) IsZero() bool {
	return !i.Moving() && i.Action == ActionNone
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,

	// Confirm
	"enter": ActionConfirm,
	"space": ActionConfirm,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Level reset
	"r":  ActionResetLevel,
	"f5": ActionResetLevel,

	// Audio
	"m":               ActionToggleMute,
	"=":               ActionVolumeUp,
	"+":               ActionVolumeUp,
	"numpad_add":      ActionVolumeUp,
	"-":               ActionVolumeDown,
	"numpad_subtract": ActionVolumeDown,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_a":          ActionConfirm,
	"gamepad_b":          ActionQuit,
	"gamepad_start":      ActionConfirm,
}

// MapToAction applies the bindings to a raw code
func MapToAction(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// MapRaw maps a raw device event to its action
func MapRaw(ev RawInput) Action {
	return MapToAction(ev.Code)
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionResetLevel:
		return "Reset Level"
	case ActionToggleMute:
		return "Toggle Mute"
	case ActionVolumeUp:
		return "Volume Up"
	case ActionVolumeDown:
		return "Volume Down"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
