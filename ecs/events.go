package ecs

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	// CollisionStarted is emitted the first step two shapes touch.
	CollisionStarted CollisionEventKind = "started"
)

// CollisionEvent is emitted by the physics step for an entity that asked for
// contact reports. Other is the entity it touched.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Kind   CollisionEventKind
}

// EventQueue is a simple FIFO queue of collision events produced during one
// tick. It is cleared at the end of every tick.
type EventQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Items returns a copy of the queued events without clearing them.
func (q *EventQueue) Items() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := make([]CollisionEvent, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
