package sim

import "container/heap"

type queuedEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements a priority queue with deterministic ordering.
// Ordering: timestamp → insertion sequence.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue struct {
	events  []queuedEvent
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make([]queuedEvent, 0)}
	heap.Init(q)
	return q
}

// Len implements heap.Interface
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface.
// Events at the same timestamp pop in the order they were scheduled.
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ti, tj := ei.ev.Timestamp(), ej.ev.Timestamp(); ti != tj {
		return ti < tj
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// Push implements heap.Interface
func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(queuedEvent))
}

// Pop implements heap.Interface
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedEvent{}
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue, stamping it with the next sequence number.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(q, queuedEvent{ev: e, seq: q.nextSeq})
	q.nextSeq++
}

// PopNext removes and returns the next event, or nil if the queue is empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(queuedEvent).ev
}

// Peek returns the next event without removing it.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0].ev
}
