package event

import "testing"

func TestQueueDispatchAndDrain(t *testing.T) {
	cases := []struct {
		name  string
		types []string
	}{
		{"empty", nil},
		{"single", []string{TypeKeyPressed}},
		{"ordered", []string{TypeKeyPressed, TypeKeyPressed, TypeKeyReleased}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := &Queue{}
			for _, typ := range c.types {
				q.Dispatch(Event{Type: typ})
			}
			if q.Len() != len(c.types) {
				t.Fatalf("expected %d queued, got %d", len(c.types), q.Len())
			}

			out := q.Drain()
			if len(out) != len(c.types) {
				t.Fatalf("expected %d drained, got %d", len(c.types), len(out))
			}
			for i, typ := range c.types {
				if out[i].Type != typ {
					t.Fatalf("event %d: got %s, want %s", i, out[i].Type, typ)
				}
			}
			if q.Drain() != nil {
				t.Fatalf("second drain should be empty")
			}
		})
	}
}

func TestNilQueueIsSafe(t *testing.T) {
	var q *Queue
	q.Dispatch(Event{Type: TypeKeyPressed})
	if q.Drain() != nil || q.Len() != 0 {
		t.Fatalf("nil queue should drop events")
	}
}
