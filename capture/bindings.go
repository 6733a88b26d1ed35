package capture

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/inputkit/input"
)

// DefaultBindings is the fixed key-to-action table the poller ships
// with. Keybinding configuration is out of scope; callers that need a
// different table can pass their own to NewPollerWithBindings.
func DefaultBindings() map[input.Key]input.Action {
	return map[input.Key]input.Action{
		input.KeyW:                input.ActionMoveForward,
		input.KeyS:                input.ActionMoveBack,
		input.KeyA:                input.ActionStrafeLeft,
		input.KeyD:                input.ActionStrafeRight,
		input.KeyShiftLeft:        input.ActionSprint,
		input.KeySpace:            input.ActionJump,
		input.KeyE:                input.ActionInteract,
		input.KeyGraveAccent:      input.ActionToggleConsole,
		input.KeyGamepadSouth:     input.ActionJump,
		input.KeyGamepadWest:      input.ActionInteract,
		input.KeyGamepadLeftStick: input.ActionSprint,
		input.KeyGamepadDpadUp:    input.ActionMoveForward,
		input.KeyGamepadDpadDown:  input.ActionMoveBack,
		input.KeyGamepadDpadLeft:  input.ActionStrafeLeft,
		input.KeyGamepadDpadRight: input.ActionStrafeRight,
	}
}

var specialEbitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyShiftLeft:    input.KeyShiftLeft,
	ebiten.KeyShiftRight:   input.KeyShiftRight,
	ebiten.KeyControlLeft:  input.KeyControlLeft,
	ebiten.KeyControlRight: input.KeyControlRight,
	ebiten.KeyAltLeft:      input.KeyAltLeft,
	ebiten.KeyAltRight:     input.KeyAltRight,
	ebiten.KeyArrowUp:      input.KeyArrowUp,
	ebiten.KeyArrowDown:    input.KeyArrowDown,
	ebiten.KeyArrowLeft:    input.KeyArrowLeft,
	ebiten.KeyArrowRight:   input.KeyArrowRight,
	ebiten.KeyBackquote:    input.KeyGraveAccent,
}

// translateKey maps an ebiten key code into the tracker's key space.
// Keys outside the table (function keys, numpad, etc.) are dropped by
// the poller; text they type still arrives through AppendInputChars.
func translateKey(k ebiten.Key) (input.Key, bool) {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return input.KeyA + input.Key(k-ebiten.KeyA), true
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return input.Key0 + input.Key(k-ebiten.KeyDigit0), true
	}
	mapped, ok := specialEbitenKeys[k]
	return mapped, ok
}

// gamepadButtons pairs standard-layout buttons with tracker keys in a
// stable polling order.
var gamepadButtons = []struct {
	button ebiten.StandardGamepadButton
	key    input.Key
}{
	{ebiten.StandardGamepadButtonRightBottom, input.KeyGamepadSouth},
	{ebiten.StandardGamepadButtonRightRight, input.KeyGamepadEast},
	{ebiten.StandardGamepadButtonRightLeft, input.KeyGamepadWest},
	{ebiten.StandardGamepadButtonRightTop, input.KeyGamepadNorth},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.KeyGamepadL1},
	{ebiten.StandardGamepadButtonFrontTopRight, input.KeyGamepadR1},
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.KeyGamepadL2},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.KeyGamepadR2},
	{ebiten.StandardGamepadButtonCenterLeft, input.KeyGamepadSelect},
	{ebiten.StandardGamepadButtonCenterRight, input.KeyGamepadStart},
	{ebiten.StandardGamepadButtonLeftStick, input.KeyGamepadLeftStick},
	{ebiten.StandardGamepadButtonRightStick, input.KeyGamepadRightStick},
	{ebiten.StandardGamepadButtonLeftTop, input.KeyGamepadDpadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.KeyGamepadDpadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.KeyGamepadDpadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.KeyGamepadDpadRight},
}

// applyDeadzone zeroes a stick vector whose magnitude is inside the
// deadzone and passes it through otherwise.
func applyDeadzone(x, y, deadzone float64) (float64, float64) {
	if math.Hypot(x, y) <= deadzone {
		return 0, 0
	}
	return x, y
}
