package input

import "fmt"

// Action is a logical game action decoupled from the physical key that
// triggered it. ActionSprint may be entered synthetically by the
// double-tap rule in Tick without any sprint key being held.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionSprint
	ActionJump
	ActionInteract
	ActionToggleConsole
)

var actionNames = map[Action]string{
	ActionMoveForward:   "move_forward",
	ActionMoveBack:      "move_back",
	ActionStrafeLeft:    "strafe_left",
	ActionStrafeRight:   "strafe_right",
	ActionSprint:        "sprint",
	ActionJump:          "jump",
	ActionInteract:      "interact",
	ActionToggleConsole: "toggle_console",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = a
	}
	return m
}()

// ParseAction resolves an action by its String name.
func ParseAction(name string) (Action, bool) {
	a, ok := actionsByName[name]
	return a, ok
}
