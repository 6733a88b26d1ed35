package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/inputkit/event"
	"github.com/milk9111/inputkit/input"
)

// Driver runs tengo input scripts against a tracker. Scripts produce
// deterministic press/release/tick sequences, which makes them useful
// as replayable demos and integration fixtures:
//
//	press("w", "move_forward")
//	tick()
//	release("w", "move_forward")
//	tick()
//	press("w", "move_forward")
//	tick()
//	// sprint via double tap is now active
//
// Scripted presses are never suppressed; Tick always receives an
// all-false suppression slice.
type Driver struct {
	state *input.State
	bus   event.Bus
}

func NewDriver(state *input.State, bus event.Bus) *Driver {
	return &Driver{state: state, bus: bus}
}

// Run compiles and executes one script. Script runtime errors come back
// as errors, never panics.
func (d *Driver) Run(src []byte) error {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	for name, fn := range d.builtins() {
		if err := s.Add(name, fn); err != nil {
			return fmt.Errorf("script: add %s: %w", name, err)
		}
	}

	if _, err := s.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func (d *Driver) builtins() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"press": {Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
			key, action, err := keyActionArgs("press", args)
			if err != nil {
				return nil, err
			}
			d.state.Press(key, action, nil)
			return tengo.UndefinedValue, nil
		}},
		"release": {Name: "release", Value: func(args ...tengo.Object) (tengo.Object, error) {
			key, action, err := keyActionArgs("release", args)
			if err != nil {
				return nil, err
			}
			d.state.Release(key, action)
			return tengo.UndefinedValue, nil
		}},
		"text": {Name: "text", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("text wants 1 argument, got %d", len(args))
			}
			s := objectAsString(args[0])
			if s != "" {
				d.state.Press(nil, nil, []rune(s))
			}
			return tengo.UndefinedValue, nil
		}},
		"move_mouse": {Name: "move_mouse", Value: func(args ...tengo.Object) (tengo.Object, error) {
			dx, dy, err := vectorArgs("move_mouse", args)
			if err != nil {
				return nil, err
			}
			d.state.MoveMouse(dx, dy)
			return tengo.UndefinedValue, nil
		}},
		"left_stick": {Name: "left_stick", Value: func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := vectorArgs("left_stick", args)
			if err != nil {
				return nil, err
			}
			d.state.MoveLeftThumbstick(x, y)
			return tengo.UndefinedValue, nil
		}},
		"right_stick": {Name: "right_stick", Value: func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := vectorArgs("right_stick", args)
			if err != nil {
				return nil, err
			}
			d.state.MoveRightThumbstick(x, y)
			return tengo.UndefinedValue, nil
		}},
		"tick": {Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
			d.state.Tick(make([]bool, len(d.state.Pending())), d.bus)
			return &tengo.Int{Value: int64(d.state.TickCount())}, nil
		}},
		"tick_count": {Name: "tick_count", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(d.state.TickCount())}, nil
		}},
		"is_active": {Name: "is_active", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("is_active wants 1 argument, got %d", len(args))
			}
			action, ok := input.ParseAction(objectAsString(args[0]))
			if !ok {
				return nil, fmt.Errorf("is_active: unknown action %q", objectAsString(args[0]))
			}
			return boolObject(d.state.IsActive(action)), nil
		}},
		"is_key_held": {Name: "is_key_held", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("is_key_held wants 1 argument, got %d", len(args))
			}
			key, ok := input.ParseKey(objectAsString(args[0]))
			if !ok {
				return nil, fmt.Errorf("is_key_held: unknown key %q", objectAsString(args[0]))
			}
			return boolObject(d.state.IsKeyHeld(key)), nil
		}},
		"sprint_from_double_tap": {Name: "sprint_from_double_tap", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return boolObject(d.state.SprintFromDoubleTap()), nil
		}},
	}
}

// keyActionArgs parses ("key_name", "action_name") where either may be
// "" for absent.
func keyActionArgs(fn string, args []tengo.Object) (*input.Key, *input.Action, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s wants 2 arguments, got %d", fn, len(args))
	}

	var key *input.Key
	if name := objectAsString(args[0]); name != "" {
		k, ok := input.ParseKey(name)
		if !ok {
			return nil, nil, fmt.Errorf("%s: unknown key %q", fn, name)
		}
		key = &k
	}

	var action *input.Action
	if name := objectAsString(args[1]); name != "" {
		a, ok := input.ParseAction(name)
		if !ok {
			return nil, nil, fmt.Errorf("%s: unknown action %q", fn, name)
		}
		action = &a
	}

	return key, action, nil
}

func vectorArgs(fn string, args []tengo.Object) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%s wants 2 arguments, got %d", fn, len(args))
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return 0, 0, fmt.Errorf("%s: argument 1 is not a number", fn)
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return 0, 0, fmt.Errorf("%s: argument 2 is not a number", fn)
	}
	return x, y, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
