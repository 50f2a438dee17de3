package components

import "github.com/yohamta/donburi"

// Queue is a FIFO of events published during a tick. Consumers drain it;
// anything still queued when the tick ends is a bug.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(ev T) {
	q.items = append(q.items, ev)
}

// Drain returns the queued events in publish order and empties the queue.
// Events pushed while the caller handles the result land in a fresh queue.
func (q *Queue[T]) Drain() []T {
	items := q.items
	q.items = nil
	return items
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

// AddToStack asks for a free parcel to be put on top of the player's stack.
type AddToStack struct {
	Parcel donburi.Entity
}

// PopFromStack asks for a slot to be removed. Despawning parcels are
// dropped from the stack without being thrown.
type PopFromStack struct {
	Slot       donburi.Entity
	Despawning bool
}

// ScoreDelta is a delivery result waiting to be added to the score.
type ScoreDelta struct {
	Delta  int
	Agent  AgentCode
	Zone   donburi.Entity
	Parcel donburi.Entity
}

// CollisionStarted reports a new contact between two footprints.
type CollisionStarted struct {
	A, B donburi.Entity
}

// EventsData holds every per-tick queue.
type EventsData struct {
	Adds       Queue[AddToStack]
	Pops       Queue[PopFromStack]
	Scores     Queue[ScoreDelta]
	Collisions Queue[CollisionStarted]
}

var Events = donburi.NewComponentType[EventsData]()

// Pending is the number of events not yet drained.
func (e *EventsData) Pending() int {
	return e.Adds.Len() + e.Pops.Len() + e.Scores.Len() + e.Collisions.Len()
}
