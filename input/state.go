package input

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/inputkit/event"
)

// DoubleTapWindow is the number of ticks, inclusive, within which a
// second move-forward press counts as a double tap and starts a sprint.
const DoubleTapWindow = 6

// State tracks all input for one client: pending press/release events,
// currently held keys, active logical actions, mouse delta and
// thumbstick positions, plus the double-tap-to-sprint bookkeeping.
//
// All methods are plain synchronous calls meant for the game's
// simulation goroutine. The capture layer queues presses and releases
// between ticks; the game loop calls Tick once per simulation step to
// drain them. No internal locking; Tick must not run concurrently with
// itself or with the mutators.
type State struct {
	newlyPressed  []PressEvent
	newlyReleased []ReleaseEvent

	keys    map[Key]struct{}
	actions map[Action]struct{}

	mouseDelta cp.Vector
	leftStick  cp.Vector
	rightStick cp.Vector

	// tick index of the most recent processed move-forward press
	forwardsDownTime int
	// true only while the active sprint came from a double tap rather
	// than an explicit sprint press
	sprintFromDoubleTap bool
	tickCount           int
}

func NewState() *State {
	return &State{
		keys:    make(map[Key]struct{}),
		actions: make(map[Action]struct{}),
		// far enough back that the first move-forward press can never
		// land inside the double-tap window
		forwardsDownTime: -(DoubleTapWindow + 1),
	}
}

// Press queues a key-down for the next Tick. Key and action may both be
// nil, e.g. for character-only text input.
func (s *State) Press(key *Key, action *Action, chars []rune) {
	s.newlyPressed = append(s.newlyPressed, PressEvent{Key: key, Action: action, Chars: chars})
}

// Release queues a key-up for the next Tick.
func (s *State) Release(key *Key, action *Action) {
	s.newlyReleased = append(s.newlyReleased, ReleaseEvent{Key: key, Action: action})
}

// FlushInputs discards all pending press/release events without
// touching held keys or active actions. Call on focus loss so stale
// events don't apply to the next tick.
func (s *State) FlushInputs() {
	s.newlyPressed = nil
	s.newlyReleased = nil
}

// MoveMouse accumulates a relative mouse movement. Deltas add up until
// ResetMouseDelta.
func (s *State) MoveMouse(dx, dy float64) {
	s.mouseDelta = s.mouseDelta.Add(cp.Vector{X: dx, Y: dy})
}

// ResetMouseDelta zeroes the accumulated mouse delta. The consumer
// calls this once per frame after reading the delta.
func (s *State) ResetMouseDelta() {
	s.mouseDelta = cp.Vector{}
}

// MoveLeftThumbstick overwrites the left stick position. The caller is
// responsible for deadzone and normalization.
func (s *State) MoveLeftThumbstick(x, y float64) {
	s.leftStick = cp.Vector{X: x, Y: y}
}

// MoveRightThumbstick overwrites the right stick position.
func (s *State) MoveRightThumbstick(x, y float64) {
	s.rightStick = cp.Vector{X: x, Y: y}
}

// Tick processes all queued presses and releases in order, dispatching
// each to bus, and clears the queues. suppressed pairs positionally
// with the pending presses: a true entry nulls that press's Action for
// this tick while still recording the physical key. Releases are
// dispatched unmodified; a release whose press was suppressed still
// carries its original action (known asymmetry, kept deliberately).
//
// Panics if len(suppressed) doesn't match the number of pending
// presses; that is caller misuse, not a runtime condition.
func (s *State) Tick(suppressed []bool, bus event.Bus) {
	if len(suppressed) != len(s.newlyPressed) {
		panic(fmt.Sprintf("input: Tick got %d suppression flags for %d pending presses", len(suppressed), len(s.newlyPressed)))
	}

	s.tickCount++

	for i := range s.newlyPressed {
		evt := s.newlyPressed[i]
		if suppressed[i] {
			evt.Action = nil
		}

		if evt.Action != nil {
			switch *evt.Action {
			case ActionMoveForward:
				if _, active := s.actions[ActionMoveForward]; !active {
					if s.forwardsDownTime+DoubleTapWindow >= s.tickCount {
						s.actions[ActionSprint] = struct{}{}
					}
					s.sprintFromDoubleTap = true
				}
				s.forwardsDownTime = s.tickCount
			case ActionSprint:
				// explicit sprint press overrides double-tap provenance
				s.sprintFromDoubleTap = false
			}
		}

		bus.Dispatch(event.Event{Type: event.TypeKeyPressed, Data: evt})

		if evt.Key != nil {
			s.keys[*evt.Key] = struct{}{}
		}
		if evt.Action != nil {
			s.actions[*evt.Action] = struct{}{}
		}
	}

	for _, evt := range s.newlyReleased {
		if evt.Action != nil && *evt.Action == ActionMoveForward && s.sprintFromDoubleTap {
			delete(s.actions, ActionSprint)
		}

		bus.Dispatch(event.Event{Type: event.TypeKeyReleased, Data: evt})

		if evt.Key != nil {
			delete(s.keys, *evt.Key)
		}
		if evt.Action != nil {
			delete(s.actions, *evt.Action)
		}
	}

	s.newlyPressed = nil
	s.newlyReleased = nil
}

// IsKeyHeld reports whether a ticked-in press for k has no ticked-in
// release yet.
func (s *State) IsKeyHeld(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

// IsActive reports whether the logical action is currently active.
func (s *State) IsActive(a Action) bool {
	_, ok := s.actions[a]
	return ok
}

// Pending returns a copy of the press events queued since the last
// Tick, in press order. Callers use it to build the suppression slice
// for Tick.
func (s *State) Pending() []PressEvent {
	if len(s.newlyPressed) == 0 {
		return nil
	}
	out := make([]PressEvent, len(s.newlyPressed))
	copy(out, s.newlyPressed)
	return out
}

// MouseDelta returns the mouse movement accumulated since the last
// ResetMouseDelta.
func (s *State) MouseDelta() cp.Vector { return s.mouseDelta }

// LeftThumbstick returns the latest left stick position.
func (s *State) LeftThumbstick() cp.Vector { return s.leftStick }

// RightThumbstick returns the latest right stick position.
func (s *State) RightThumbstick() cp.Vector { return s.rightStick }

// TickCount returns the number of completed Tick calls.
func (s *State) TickCount() int { return s.tickCount }

// SprintFromDoubleTap reports whether the current sprint, if any, was
// started by a double tap rather than an explicit sprint press.
func (s *State) SprintFromDoubleTap() bool { return s.sprintFromDoubleTap }
