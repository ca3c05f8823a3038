package game

import "testing"

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int
	bus.Subscribe(EventPowerUpActivated, func(Event) { order = append(order, 1) })
	bus.Subscribe(EventPowerUpActivated, func(Event) { order = append(order, 2) })
	bus.Subscribe(EventPowerUpWarning, func(Event) { order = append(order, 3) })

	bus.Emit(Event{Type: EventPowerUpActivated, Kind: PowerUpMagnet})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("delivery order = %v, want [1 2]", order)
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	id := bus.Subscribe(EventPowerUpWarning, func(Event) { calls++ })
	keep := 0
	bus.Subscribe(EventPowerUpWarning, func(Event) { keep++ })

	bus.Emit(Event{Type: EventPowerUpWarning, Kind: PowerUpShield})
	bus.Unsubscribe(EventPowerUpWarning, id)
	bus.Emit(Event{Type: EventPowerUpWarning, Kind: PowerUpShield})

	if calls != 1 {
		t.Fatalf("unsubscribed handler calls = %d, want 1", calls)
	}
	if keep != 2 {
		t.Fatalf("remaining handler calls = %d, want 2", keep)
	}

	// Unknown ids and types are ignored.
	bus.Unsubscribe(EventPowerUpWarning, 9999)
	bus.Unsubscribe(EventPowerUpActivated, id)
}

func TestEventBusCarriesKind(t *testing.T) {
	bus := NewEventBus()
	var got PowerUpKind = -1
	bus.Subscribe(EventPowerUpDeactivated, func(e Event) { got = e.Kind })

	bus.Emit(Event{Type: EventPowerUpDeactivated, Kind: PowerUpStarPower})

	if got != PowerUpStarPower {
		t.Fatalf("kind = %v, want StarPower", got)
	}
}
