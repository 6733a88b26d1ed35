package script

import (
	"strings"
	"testing"

	"github.com/milk9111/inputkit/event"
	"github.com/milk9111/inputkit/input"
)

func TestRunDoubleTapScript(t *testing.T) {
	state := input.NewState()
	bus := &event.Queue{}
	d := NewDriver(state, bus)

	src := `
press("w", "move_forward")
tick()
release("w", "move_forward")
tick()
press("w", "move_forward")
tick()
`
	if err := d.Run([]byte(src)); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if !state.IsActive(input.ActionSprint) {
		t.Fatalf("double-tap script should end with sprint active")
	}
	if !state.SprintFromDoubleTap() {
		t.Fatalf("sprint should be double-tap derived")
	}
	if state.TickCount() != 3 {
		t.Fatalf("expected 3 ticks, got %d", state.TickCount())
	}
	// two presses, one release
	if got := len(bus.Drain()); got != 3 {
		t.Fatalf("expected 3 dispatched events, got %d", got)
	}
}

func TestTextAndAnalogBuiltins(t *testing.T) {
	state := input.NewState()
	bus := &event.Queue{}
	d := NewDriver(state, bus)

	src := `
text("hello")
move_mouse(3, -1)
move_mouse(2, 5)
left_stick(0.5, -0.25)
right_stick(-1, 0)
tick()
`
	if err := d.Run([]byte(src)); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	events := bus.Drain()
	if len(events) != 1 {
		t.Fatalf("expected one press event, got %d", len(events))
	}
	pe, ok := events[0].Data.(input.PressEvent)
	if !ok || string(pe.Chars) != "hello" {
		t.Fatalf("text builtin should queue a chars-only press, got %#v", events[0].Data)
	}
	if pe.Key != nil || pe.Action != nil {
		t.Fatalf("text press should carry no key or action")
	}

	if delta := state.MouseDelta(); delta.X != 5 || delta.Y != 4 {
		t.Fatalf("mouse delta should accumulate across calls, got %v", delta)
	}
	if v := state.LeftThumbstick(); v.X != 0.5 || v.Y != -0.25 {
		t.Fatalf("left stick not applied, got %v", v)
	}
	if v := state.RightThumbstick(); v.X != -1 || v.Y != 0 {
		t.Fatalf("right stick not applied, got %v", v)
	}
}

func TestScriptQueries(t *testing.T) {
	state := input.NewState()
	d := NewDriver(state, &event.Queue{})

	// Script asserts its own view through the query builtins and
	// signals failure by querying an unknown name, which errors.
	src := `
press("space", "jump")
tick()
if !is_active("jump") { is_active("__fail__") }
if !is_key_held("space") { is_key_held("__fail__") }
if tick_count() != 1 { is_active("__fail__") }
`
	if err := d.Run([]byte(src)); err != nil {
		t.Fatalf("script queries disagreed with tracker state: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantSub string
	}{
		{"unknown_key", `press("warp_core", "jump")`, "unknown key"},
		{"unknown_action", `press("w", "warp_speed")`, "unknown action"},
		{"bad_arity", `press("w")`, "2 arguments"},
		{"non_numeric_vector", `move_mouse("a", 1)`, "not a number"},
		{"compile_error", `press(`, "script"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDriver(input.NewState(), &event.Queue{})
			err := d.Run([]byte(c.src))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.wantSub) {
				t.Fatalf("error %q should mention %q", err, c.wantSub)
			}
		})
	}
}
