package input

import (
	"testing"

	"github.com/milk9111/inputkit/event"
)

type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Dispatch(evt event.Event) {
	b.events = append(b.events, evt)
}

func keyPtr(k Key) *Key {
	return &k
}

func actionPtr(a Action) *Action {
	return &a
}

// pressAndTick queues a single bound press and ticks it in.
func pressAndTick(s *State, bus event.Bus, k Key, a Action) {
	s.Press(keyPtr(k), actionPtr(a), nil)
	s.Tick([]bool{false}, bus)
}

func releaseAndTick(s *State, bus event.Bus, k Key, a Action) {
	s.Release(keyPtr(k), actionPtr(a))
	s.Tick(nil, bus)
}

// idleTicks runs n ticks with empty queues.
func idleTicks(s *State, bus event.Bus, n int) {
	for i := 0; i < n; i++ {
		s.Tick(nil, bus)
	}
}

func TestPressAndReleaseLifecycle(t *testing.T) {
	cases := []struct {
		name   string
		key    *Key
		action *Action
		chars  []rune
	}{
		{"key_and_action", keyPtr(KeyW), actionPtr(ActionMoveForward), nil},
		{"key_only", keyPtr(KeyQ), nil, nil},
		{"action_only", nil, actionPtr(ActionJump), nil},
		{"chars_only", nil, nil, []rune("hi")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState()
			bus := &recordingBus{}

			s.Press(c.key, c.action, c.chars)
			if got := len(s.Pending()); got != 1 {
				t.Fatalf("expected 1 pending press, got %d", got)
			}
			s.Tick([]bool{false}, bus)

			if len(s.Pending()) != 0 {
				t.Fatalf("pending presses should be cleared by Tick")
			}
			if c.key != nil && !s.IsKeyHeld(*c.key) {
				t.Fatalf("key %v should be held after press tick", *c.key)
			}
			if c.action != nil && !s.IsActive(*c.action) {
				t.Fatalf("action %v should be active after press tick", *c.action)
			}
			if len(bus.events) != 1 || bus.events[0].Type != event.TypeKeyPressed {
				t.Fatalf("expected one key_pressed event, got %v", bus.events)
			}
			pe, ok := bus.events[0].Data.(PressEvent)
			if !ok {
				t.Fatalf("press event payload should be PressEvent, got %T", bus.events[0].Data)
			}
			if string(pe.Chars) != string(c.chars) {
				t.Fatalf("chars should pass through unmodified, got %q", string(pe.Chars))
			}

			s.Release(c.key, c.action)
			s.Tick(nil, bus)

			if c.key != nil && s.IsKeyHeld(*c.key) {
				t.Fatalf("key %v should not be held after release tick", *c.key)
			}
			if c.action != nil && s.IsActive(*c.action) {
				t.Fatalf("action %v should not be active after release tick", *c.action)
			}
			if len(bus.events) != 2 || bus.events[1].Type != event.TypeKeyReleased {
				t.Fatalf("expected key_released event, got %v", bus.events)
			}
		})
	}
}

func TestDoubleTapSprintWindow(t *testing.T) {
	// Gap is measured in ticks between the tick that processed the
	// first forwards press and the tick that processes the second.
	cases := []struct {
		name       string
		gap        int
		wantSprint bool
	}{
		{"immediate_retap", 2, true},
		{"inside_window", 4, true},
		{"boundary_exactly_six", 6, true},
		{"just_outside_window", 7, false},
		{"long_gap", 20, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState()
			bus := &recordingBus{}

			pressAndTick(s, bus, KeyW, ActionMoveForward) // tick 1
			releaseAndTick(s, bus, KeyW, ActionMoveForward)

			// second press lands on tick 1+gap
			idleTicks(s, bus, c.gap-2)
			pressAndTick(s, bus, KeyW, ActionMoveForward)

			if got := s.IsActive(ActionSprint); got != c.wantSprint {
				t.Fatalf("sprint active = %v, want %v (gap %d)", got, c.wantSprint, c.gap)
			}
			if c.wantSprint && !s.SprintFromDoubleTap() {
				t.Fatalf("sprint should be flagged as double-tap derived")
			}
		})
	}
}

func TestFirstForwardsPressNeverSprints(t *testing.T) {
	s := NewState()
	bus := &recordingBus{}

	pressAndTick(s, bus, KeyW, ActionMoveForward)

	if s.IsActive(ActionSprint) {
		t.Fatalf("a single forwards press must not start a sprint")
	}
	if !s.SprintFromDoubleTap() {
		t.Fatalf("flag is set on every forwards-press-while-inactive, even without sprint")
	}
}

func TestForwardsRepressWhileHeldDoesNotSprint(t *testing.T) {
	// Without a release, move-forward is still active, so the second
	// press never enters the double-tap branch.
	s := NewState()
	bus := &recordingBus{}

	pressAndTick(s, bus, KeyW, ActionMoveForward)
	pressAndTick(s, bus, KeyW, ActionMoveForward)

	if s.IsActive(ActionSprint) {
		t.Fatalf("re-press while move-forward is active must not sprint")
	}
}

func TestDoubleTapSprintEndsOnForwardsRelease(t *testing.T) {
	s := NewState()
	bus := &recordingBus{}

	pressAndTick(s, bus, KeyW, ActionMoveForward)
	releaseAndTick(s, bus, KeyW, ActionMoveForward)
	pressAndTick(s, bus, KeyW, ActionMoveForward)
	if !s.IsActive(ActionSprint) {
		t.Fatalf("double tap should have started a sprint")
	}

	releaseAndTick(s, bus, KeyW, ActionMoveForward)

	if s.IsActive(ActionSprint) {
		t.Fatalf("releasing forwards must end a double-tap sprint")
	}
}

func TestExplicitSprintSurvivesForwardsRelease(t *testing.T) {
	s := NewState()
	bus := &recordingBus{}

	pressAndTick(s, bus, KeyW, ActionMoveForward)
	pressAndTick(s, bus, KeyShiftLeft, ActionSprint)
	if !s.IsActive(ActionSprint) {
		t.Fatalf("explicit sprint press should activate sprint")
	}
	if s.SprintFromDoubleTap() {
		t.Fatalf("explicit sprint press must clear the double-tap flag")
	}

	releaseAndTick(s, bus, KeyW, ActionMoveForward)

	if !s.IsActive(ActionSprint) {
		t.Fatalf("explicit sprint must survive a forwards release")
	}
}

func TestSuppression(t *testing.T) {
	t.Run("suppressed_press_keeps_key_drops_action", func(t *testing.T) {
		s := NewState()
		bus := &recordingBus{}

		s.Press(keyPtr(KeyW), actionPtr(ActionMoveForward), nil)
		s.Tick([]bool{true}, bus)

		if !s.IsKeyHeld(KeyW) {
			t.Fatalf("suppression must still record the physical key")
		}
		if s.IsActive(ActionMoveForward) {
			t.Fatalf("suppressed press must not activate its action")
		}
		pe := bus.events[0].Data.(PressEvent)
		if pe.Action != nil {
			t.Fatalf("dispatched suppressed press should carry no action, got %v", *pe.Action)
		}
	})

	t.Run("mixed_suppression_is_positional", func(t *testing.T) {
		s := NewState()
		bus := &recordingBus{}

		s.Press(keyPtr(KeyW), actionPtr(ActionMoveForward), nil)
		s.Press(keyPtr(KeySpace), actionPtr(ActionJump), nil)
		s.Tick([]bool{true, false}, bus)

		if s.IsActive(ActionMoveForward) {
			t.Fatalf("first press was suppressed")
		}
		if !s.IsActive(ActionJump) {
			t.Fatalf("second press was not suppressed")
		}
	})

	t.Run("release_is_not_suppressed_symmetrically", func(t *testing.T) {
		// The matching release still carries (and deactivates) the
		// original action even though the press was suppressed.
		s := NewState()
		bus := &recordingBus{}

		s.Press(keyPtr(KeyW), actionPtr(ActionMoveForward), nil)
		s.Tick([]bool{true}, bus)
		s.Release(keyPtr(KeyW), actionPtr(ActionMoveForward))
		s.Tick(nil, bus)

		re := bus.events[1].Data.(ReleaseEvent)
		if re.Action == nil || *re.Action != ActionMoveForward {
			t.Fatalf("release should carry its original action, got %v", re.Action)
		}
	})

	t.Run("length_mismatch_panics", func(t *testing.T) {
		s := NewState()
		bus := &recordingBus{}
		s.Press(keyPtr(KeyW), actionPtr(ActionMoveForward), nil)

		defer func() {
			if recover() == nil {
				t.Fatalf("Tick with mismatched suppression length must panic")
			}
		}()
		s.Tick([]bool{false, false}, bus)
	})
}

func TestMouseDeltaAndThumbsticks(t *testing.T) {
	s := NewState()

	s.MoveMouse(3, -1)
	s.MoveMouse(2, 5)
	if d := s.MouseDelta(); d.X != 5 || d.Y != 4 {
		t.Fatalf("mouse delta should accumulate, got %v", d)
	}

	s.ResetMouseDelta()
	if d := s.MouseDelta(); d.X != 0 || d.Y != 0 {
		t.Fatalf("ResetMouseDelta should zero the accumulator, got %v", d)
	}

	s.MoveLeftThumbstick(0.5, -0.5)
	s.MoveLeftThumbstick(0.1, 0.2)
	if v := s.LeftThumbstick(); v.X != 0.1 || v.Y != 0.2 {
		t.Fatalf("thumbstick should overwrite, not accumulate, got %v", v)
	}

	s.MoveRightThumbstick(-1, 0)
	if v := s.RightThumbstick(); v.X != -1 || v.Y != 0 {
		t.Fatalf("right thumbstick should hold last value, got %v", v)
	}
}

func TestTickCountAdvancesOncePerTick(t *testing.T) {
	s := NewState()
	bus := &recordingBus{}

	idleTicks(s, bus, 3)
	if s.TickCount() != 3 {
		t.Fatalf("expected tick count 3, got %d", s.TickCount())
	}

	s.Press(keyPtr(KeyW), actionPtr(ActionMoveForward), nil)
	s.Press(keyPtr(KeyA), actionPtr(ActionStrafeLeft), nil)
	s.Tick([]bool{false, false}, bus)
	if s.TickCount() != 4 {
		t.Fatalf("tick count is per tick, not per event; got %d", s.TickCount())
	}
}

func TestFlushInputsDiscardsPendingOnly(t *testing.T) {
	s := NewState()
	bus := &recordingBus{}

	pressAndTick(s, bus, KeyW, ActionMoveForward)

	s.Press(keyPtr(KeySpace), actionPtr(ActionJump), nil)
	s.Release(keyPtr(KeyW), actionPtr(ActionMoveForward))
	s.FlushInputs()

	s.Tick(nil, bus)

	if !s.IsKeyHeld(KeyW) || !s.IsActive(ActionMoveForward) {
		t.Fatalf("flush must not touch held keys or active actions")
	}
	if s.IsActive(ActionJump) {
		t.Fatalf("flushed press must not apply")
	}
}

func TestDispatchOrder(t *testing.T) {
	s := NewState()
	bus := &recordingBus{}

	s.Press(keyPtr(KeyW), actionPtr(ActionMoveForward), nil)
	s.Press(keyPtr(KeyD), actionPtr(ActionStrafeRight), nil)
	s.Release(keyPtr(KeyA), nil)
	s.Tick([]bool{false, false}, bus)

	want := []string{event.TypeKeyPressed, event.TypeKeyPressed, event.TypeKeyReleased}
	if len(bus.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(bus.events))
	}
	for i, typ := range want {
		if bus.events[i].Type != typ {
			t.Fatalf("event %d: got %s, want %s", i, bus.events[i].Type, typ)
		}
	}
	first := bus.events[0].Data.(PressEvent)
	if first.Key == nil || *first.Key != KeyW {
		t.Fatalf("presses must dispatch in press order, first was %v", first.Key)
	}
}
