package input

import "fmt"

// Key identifies a physical key or button on an input device. The
// capture layer translates platform key codes into these; the tracker
// itself only needs equality and map membership.
type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyGraveAccent
	KeyGamepadSouth
	KeyGamepadEast
	KeyGamepadWest
	KeyGamepadNorth
	KeyGamepadL1
	KeyGamepadR1
	KeyGamepadL2
	KeyGamepadR2
	KeyGamepadSelect
	KeyGamepadStart
	KeyGamepadLeftStick
	KeyGamepadRightStick
	KeyGamepadDpadUp
	KeyGamepadDpadDown
	KeyGamepadDpadLeft
	KeyGamepadDpadRight
)

var specialKeyNames = map[Key]string{
	KeySpace:             "space",
	KeyEnter:             "enter",
	KeyEscape:            "escape",
	KeyTab:               "tab",
	KeyBackspace:         "backspace",
	KeyShiftLeft:         "shift_left",
	KeyShiftRight:        "shift_right",
	KeyControlLeft:       "control_left",
	KeyControlRight:      "control_right",
	KeyAltLeft:           "alt_left",
	KeyAltRight:          "alt_right",
	KeyArrowUp:           "arrow_up",
	KeyArrowDown:         "arrow_down",
	KeyArrowLeft:         "arrow_left",
	KeyArrowRight:        "arrow_right",
	KeyGraveAccent:       "grave_accent",
	KeyGamepadSouth:      "gamepad_south",
	KeyGamepadEast:       "gamepad_east",
	KeyGamepadWest:       "gamepad_west",
	KeyGamepadNorth:      "gamepad_north",
	KeyGamepadL1:         "gamepad_l1",
	KeyGamepadR1:         "gamepad_r1",
	KeyGamepadL2:         "gamepad_l2",
	KeyGamepadR2:         "gamepad_r2",
	KeyGamepadSelect:     "gamepad_select",
	KeyGamepadStart:      "gamepad_start",
	KeyGamepadLeftStick:  "gamepad_left_stick",
	KeyGamepadRightStick: "gamepad_right_stick",
	KeyGamepadDpadUp:     "gamepad_dpad_up",
	KeyGamepadDpadDown:   "gamepad_dpad_down",
	KeyGamepadDpadLeft:   "gamepad_dpad_left",
	KeyGamepadDpadRight:  "gamepad_dpad_right",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	}
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(specialKeyNames)+36)
	for k := KeyA; k <= Key9; k++ {
		m[k.String()] = k
	}
	for k, name := range specialKeyNames {
		m[name] = k
	}
	return m
}()

// ParseKey resolves a key by its String name. Used by the script driver
// so input scripts can name keys symbolically.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}
