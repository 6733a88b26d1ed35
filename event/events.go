package event

// Event is a generic event envelope. Data carries the concrete payload
// (input.PressEvent or input.ReleaseEvent for the types this module
// dispatches).
type Event struct {
	Type string
	Data any
}

// Event types dispatched by the input tracker.
const (
	TypeKeyPressed  = "key_pressed"
	TypeKeyReleased = "key_released"
)

// Bus receives events dispatched during a tick. Implementations must
// not retain a reference past Dispatch unless they copy; the tracker
// dispatches synchronously and does not look at the event again.
type Bus interface {
	Dispatch(evt Event)
}

// Queue is a simple FIFO Bus.
type Queue struct {
	items []Event
}

// Dispatch adds an event.
func (q *Queue) Dispatch(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events in dispatch order and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of undrained events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
