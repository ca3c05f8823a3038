package game

type EventType int

const (
	EventPowerUpActivated EventType = iota
	EventPowerUpDeactivated
	EventPowerUpWarning
	EventRunStarted
	EventRunEnded
)

type Event struct {
	Type EventType
	Kind PowerUpKind // power-up events; PowerUpKindCount when not applicable
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order, before
// Emit returns. Subscribe hands back an id so handlers (which are not
// comparable) can be removed again.
type EventBus struct {
	handlers map[EventType][]subscription
	nextID   int
}

type subscription struct {
	id int
	fn EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]subscription),
	}
}

// Subscribe registers fn for events of type t and returns its subscription id.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) int {
	eb.nextID++
	eb.handlers[t] = append(eb.handlers[t], subscription{id: eb.nextID, fn: fn})
	return eb.nextID
}

// Unsubscribe removes the subscription with the given id from type t.
// Unknown ids are ignored.
func (eb *EventBus) Unsubscribe(t EventType, id int) {
	subs := eb.handlers[t]
	for i, s := range subs {
		if s.id == id {
			eb.handlers[t] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, s := range eb.handlers[e.Type] {
		s.fn(e)
	}
}
