package hal

// DefaultEventQueueSize is the capacity used by the host platforms.
const DefaultEventQueueSize = 64

// EventQueue is a small bounded FIFO between platform callbacks and the
// frame loop. Both sides run on the same goroutine, so it is not locked.
type EventQueue struct {
	buf     []Event
	dropped uint64
}

func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = DefaultEventQueueSize
	}
	return &EventQueue{buf: make([]Event, 0, size)}
}

// Push queues ev. When the queue is full, non-terminal events are dropped;
// a quit or close event replaces the newest entry so it is never lost.
func (q *EventQueue) Push(ev Event) bool {
	if len(q.buf) < cap(q.buf) {
		q.buf = append(q.buf, ev)
		return true
	}
	q.dropped++
	if !ev.Terminal() {
		return false
	}
	q.buf[len(q.buf)-1] = ev
	return true
}

// Drain appends all queued events to dst and empties the queue.
func (q *EventQueue) Drain(dst []Event) []Event {
	dst = append(dst, q.buf...)
	q.buf = q.buf[:0]
	return dst
}

func (q *EventQueue) Len() int        { return len(q.buf) }
func (q *EventQueue) Dropped() uint64 { return q.dropped }
