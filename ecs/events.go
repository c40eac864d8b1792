package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventLocomotionChanged = "locomotion_changed"

// LocomotionChanged is pushed when a player switches locomotion state.
type LocomotionChanged struct {
	Entity Entity
	From   string
	To     string
	Tick   uint64
}

// EventQueue is a simple FIFO queue, flushed at the end of every scheduler step.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
