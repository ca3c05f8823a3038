package game

import "testing"

func TestPickupSpawnRandomIsDeterministic(t *testing.T) {
	a := NewPickupSystem(123, MaxPickups)
	b := NewPickupSystem(123, MaxPickups)
	a.SpawnRandom(MaxPickups)
	b.SpawnRandom(MaxPickups)

	if len(a.Boxes) != MaxPickups || len(b.Boxes) != MaxPickups {
		t.Fatalf("spawned %d and %d boxes, want %d", len(a.Boxes), len(b.Boxes), MaxPickups)
	}
	for i := range a.Boxes {
		if a.Boxes[i] != b.Boxes[i] {
			t.Fatalf("box %d differs between equally seeded systems: %+v vs %+v", i, a.Boxes[i], b.Boxes[i])
		}
	}
}

func TestPickupSpawnStaysInsideField(t *testing.T) {
	pk := NewPickupSystem(77, MaxPickups)
	pk.SpawnRandom(MaxPickups)
	for i, b := range pk.Boxes {
		if b.X < PickupSpawnMargin || b.X > FieldWidth-PickupSpawnMargin ||
			b.Y < PickupSpawnMargin || b.Y > FieldHeight-PickupSpawnMargin {
			t.Errorf("box %d spawned outside the field margins: (%v, %v)", i, b.X, b.Y)
		}
		if b.Kind < 0 || b.Kind > PowerUpMystery {
			t.Errorf("box %d carries invalid kind %v", i, b.Kind)
		}
	}
}

func TestPickupCollectForwardsSignal(t *testing.T) {
	player := NewPlayer(0, 0)
	bus := NewEventBus()
	rec := newRecorder(bus)
	ps := NewPowerUpSystem(player, bus, nil, 5)

	pk := NewPickupSystem(9, MaxPickups)
	pk.Boxes = append(pk.Boxes, PickupBox{X: 10, Y: 10, Kind: PowerUpShield, Alive: true})

	pk.Collect(0, ps)
	if !ps.IsActive(PowerUpShield) {
		t.Fatal("collecting a shield box should activate the shield")
	}
	if rec.activated[PowerUpShield] != 1 {
		t.Fatalf("activation events = %d, want 1", rec.activated[PowerUpShield])
	}

	// A consumed box cannot be collected twice.
	pk.Collect(0, ps)
	if rec.activated[PowerUpShield] != 1 {
		t.Fatal("collecting a dead box must not signal again")
	}
	// Out-of-range indexes are ignored.
	pk.Collect(-1, ps)
	pk.Collect(99, ps)
}

func TestPickupCollectAtUsesRadius(t *testing.T) {
	player := NewPlayer(0, 0)
	ps := NewPowerUpSystem(player, NewEventBus(), nil, 5)

	pk := NewPickupSystem(9, MaxPickups)
	pk.Boxes = append(pk.Boxes,
		PickupBox{X: 10, Y: 10, Kind: PowerUpMagnet, Alive: true},
		PickupBox{X: 40, Y: 40, Kind: PowerUpShield, Alive: true},
	)

	if got := pk.CollectAt(10.5, 10.5, ps); got != 1 {
		t.Fatalf("collected %d boxes, want 1", got)
	}
	if !ps.IsActive(PowerUpMagnet) || ps.IsActive(PowerUpShield) {
		t.Fatal("only the nearby magnet box should have been collected")
	}
	if pk.AliveCount() != 1 {
		t.Fatalf("alive boxes = %d, want 1", pk.AliveCount())
	}
}

func TestPickupUpdateRespawns(t *testing.T) {
	pk := NewPickupSystem(31, 2)

	// Run the spawn pacing long enough to fill up to the cap.
	for i := 0; i < 4000; i++ {
		pk.Update(0.1)
	}
	if got := pk.AliveCount(); got != 2 {
		t.Fatalf("alive boxes after long update = %d, want cap of 2", got)
	}

	// Consuming a box frees a slot; pacing refills it.
	pk.Boxes[0].Alive = false
	for i := 0; i < 4000; i++ {
		pk.Update(0.1)
	}
	if got := pk.AliveCount(); got != 2 {
		t.Fatalf("alive boxes after respawn window = %d, want 2", got)
	}
}

func TestPickupResetClearsState(t *testing.T) {
	pk := NewPickupSystem(1, MaxPickups)
	pk.SpawnRandom(3)
	pk.Reset(2)
	if len(pk.Boxes) != 0 {
		t.Fatalf("boxes after reset = %d, want 0", len(pk.Boxes))
	}
	if pk.SpawnTimer < PickupSpawnDelayMin || pk.SpawnTimer > PickupSpawnDelayMax {
		t.Fatalf("spawn timer after reset = %v, want within [%v, %v]", pk.SpawnTimer, PickupSpawnDelayMin, PickupSpawnDelayMax)
	}
}
