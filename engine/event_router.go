package engine

import "github.com/lixenwraith/ragdoll-sandbox/event"

// EventHandler receives routed world events
type EventHandler interface {
	// HandleEvent is called on the runner goroutine, after the tick that raised ev
	HandleEvent(ev event.GameEvent)

	// EventTypes lists the types the handler subscribes to
	EventTypes() []event.EventType
}

// HandlerFunc adapts a function to EventHandler for the given types
type HandlerFunc struct {
	Types []event.EventType
	Fn    func(ev event.GameEvent)
}

func (h HandlerFunc) HandleEvent(ev event.GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []event.EventType  { return h.Types }

// EventRouter dispatches queued events to registered handlers
// Handlers for one type run in registration order; events run in FIFO order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.Queue
}

// NewEventRouter creates a router draining queue
func NewEventRouter(queue *event.Queue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds handler for each of its declared types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes the queue and routes every event
// Returns the events consumed, handled or not
func (r *EventRouter) DispatchAll() []event.GameEvent {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return events
}
