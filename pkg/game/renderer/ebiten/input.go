package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// movementKeys lists the keys held for each movement code
var movementKeys = []struct {
	code string
	keys []ebiten.Key
}{
	{"arrow_up", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{"arrow_down", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{"arrow_left", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{"arrow_right", []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// actionKeys maps one-shot keys to their binding codes
var actionKeys = map[ebiten.Key]string{
	ebiten.KeyEnter:          "enter",
	ebiten.KeyNumpadEnter:    "enter",
	ebiten.KeySpace:          "space",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyR:              "r",
	ebiten.KeyF5:             "f5",
	ebiten.KeyM:              "m",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// gamepadButtons maps standard-layout buttons to binding codes
var gamepadButtons = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
}

// pollKeyboard records held movement keys and queues one-shot actions
func (e *EbitenRenderer) pollKeyboard() {
	for _, m := range movementKeys {
		held := false
		for _, k := range m.keys {
			if ebiten.IsKeyPressed(k) {
				held = true
				break
			}
		}
		e.keys.Set(m.code, held)
	}

	now := time.Now()
	for key, code := range actionKeys {
		if inpututil.IsKeyJustPressed(key) {
			e.keys.Press(code, now)
		}
	}
}

// pollGamepads merges the D-pad and left stick of standard-layout controllers
// into the held movement state. Keyboard keys already held stay held.
func (e *EbitenRenderer) pollGamepads() {
	const deadZone = 0.5

	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)
	now := time.Now()

	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		stickX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		stickY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		held := map[string]bool{
			"gamepad_dpad_up":    stickY < -deadZone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop),
			"gamepad_dpad_down":  stickY > deadZone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom),
			"gamepad_dpad_left":  stickX < -deadZone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft),
			"gamepad_dpad_right": stickX > deadZone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight),
		}
		for code, down := range held {
			if down {
				e.keys.Set(code, true)
			}
		}

		for _, b := range gamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				e.keys.Press(b.code, now)
			}
		}
	}
}
