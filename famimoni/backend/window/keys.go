//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/input/action"
)

// ebitenKeyNameMap converts ebiten keys to key names used in default mappings
var ebitenKeyNameMap = map[ebiten.Key]string{
	ebiten.KeyZ:          "z",
	ebiten.KeyX:          "x",
	ebiten.KeyEnter:      "Enter",
	ebiten.KeyShiftLeft:  "Shift",
	ebiten.KeyShiftRight: "Shift",
	ebiten.KeyTab:        "Tab",
	ebiten.KeyArrowUp:    "Up",
	ebiten.KeyArrowDown:  "Down",
	ebiten.KeyArrowLeft:  "Left",
	ebiten.KeyArrowRight: "Right",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyF9:         "F9",
	ebiten.KeyEscape:     "Escape",
	ebiten.KeyQ:          "q",
	ebiten.KeyEqual:      "=",
	ebiten.KeyMinus:      "-",
}

// gamepadButtons maps the standard gamepad layout to the pad, face buttons
// in the console's positions.
var gamepadButtons = map[ebiten.StandardGamepadButton]input.Button{
	ebiten.StandardGamepadButtonRightRight:  input.ButtonA,
	ebiten.StandardGamepadButtonRightBottom: input.ButtonB,
	ebiten.StandardGamepadButtonCenterLeft:  input.ButtonSelect,
	ebiten.StandardGamepadButtonCenterRight: input.ButtonStart,
	ebiten.StandardGamepadButtonLeftTop:     input.ButtonUp,
	ebiten.StandardGamepadButtonLeftBottom:  input.ButtonDown,
	ebiten.StandardGamepadButtonLeftLeft:    input.ButtonLeft,
	ebiten.StandardGamepadButtonLeftRight:   input.ButtonRight,
}

// padKeys and hostKeys split the default mappings by consumer.
var padKeys, hostKeys = buildKeyMappings()

func buildKeyMappings() (map[ebiten.Key]input.Button, map[ebiten.Key]action.Action) {
	pad := make(map[ebiten.Key]input.Button)
	host := make(map[ebiten.Key]action.Action)
	for key, keyName := range ebitenKeyNameMap {
		act, ok := input.GetDefaultMapping(keyName)
		if !ok {
			continue
		}
		if action.IsPad(act) {
			pad[key] = input.Button(act - action.PadA)
		} else {
			host[key] = act
		}
	}
	return pad, host
}

// padLines samples the pad from key and gamepad levels.
func padLines(keyDown func(ebiten.Key) bool, buttonDown func(ebiten.StandardGamepadButton) bool) input.State {
	var lines input.State
	for key, b := range padKeys {
		if keyDown(key) {
			lines = lines.With(b)
		}
	}
	for gb, b := range gamepadButtons {
		if buttonDown(gb) {
			lines = lines.With(b)
		}
	}
	return lines
}

// hostActions returns the host actions whose key went down this tick.
func hostActions(justPressed func(ebiten.Key) bool) []action.Action {
	var acts []action.Action
	for key, act := range hostKeys {
		if justPressed(key) {
			acts = append(acts, act)
		}
	}
	return acts
}
