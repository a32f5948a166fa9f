package hal

import "testing"

func TestEventQueueDrain(t *testing.T) {
	q := NewEventQueue(4)
	q.Push(Event{Kind: EventPaint})
	q.Push(Event{Kind: EventResize, Width: 10, Height: 20})

	got := q.Drain(nil)
	if len(got) != 2 {
		t.Fatalf("drained %d events, want 2", len(got))
	}
	if got[1].Kind != EventResize || got[1].Width != 10 || got[1].Height != 20 {
		t.Fatalf("event 1 = %+v", got[1])
	}
	if q.Len() != 0 {
		t.Fatalf("Len after drain = %d", q.Len())
	}
	if got := q.Drain(nil); len(got) != 0 {
		t.Fatalf("second drain returned %d events", len(got))
	}
}

func TestEventQueueFullKeepsTerminal(t *testing.T) {
	q := NewEventQueue(2)
	q.Push(Event{Kind: EventPaint})
	q.Push(Event{Kind: EventPaint})

	if q.Push(Event{Kind: EventResize, Width: 1, Height: 1}) {
		t.Fatal("expected resize to be dropped on a full queue")
	}
	if !q.Push(Event{Kind: EventClose}) {
		t.Fatal("expected close to be queued on a full queue")
	}
	if q.Dropped() != 2 {
		t.Fatalf("Dropped = %d, want 2", q.Dropped())
	}

	got := q.Drain(nil)
	if len(got) != 2 || got[1].Kind != EventClose {
		t.Fatalf("drained %+v, want close last", got)
	}
}

func TestEventTerminal(t *testing.T) {
	for _, tt := range []struct {
		kind EventKind
		want bool
	}{
		{EventQuit, true},
		{EventClose, true},
		{EventPaint, false},
		{EventResize, false},
		{EventNone, false},
	} {
		if got := (Event{Kind: tt.kind}).Terminal(); got != tt.want {
			t.Fatalf("%v.Terminal() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
