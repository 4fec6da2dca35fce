package event

import "github.com/lixenwraith/ragdoll-sandbox/parameter"

// Queue is a fixed ring buffer of world events
// Producers and the consumer all run on the goroutine that owns the world (the runner),
// so the ring carries no synchronization; other goroutines reach the world through commands
//
// Overflow: oldest events are overwritten and counted in Dropped
type Queue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event, evicting the oldest when full
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
		q.dropped++
	}
}

// Consume returns all pending events in FIFO order, nil when empty
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for ; q.head < q.tail; q.head++ {
		idx := q.head & parameter.EventBufferMask
		result = append(result, q.events[idx])
		// Release payload references held by the slot
		q.events[idx] = GameEvent{}
	}
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Dropped returns how many events were overwritten before being consumed
func (q *Queue) Dropped() uint64 {
	return q.dropped
}

// Emitter pushes into an optional queue; nil queue drops events
type Emitter struct {
	q *Queue
}

func NewEmitter(q *Queue) Emitter {
	return Emitter{q: q}
}

func (e Emitter) Emit(t EventType, payload any, frame uint64) {
	if e.q == nil {
		return
	}
	e.q.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}
