package game

import "math"

// PickupBox is one collectible power-up box on the field.
type PickupBox struct {
	X, Y  float64
	Kind  PowerUpKind // may be PowerUpMystery; resolved on collection
	Alive bool
	Timer float64 // idle spin/pulse animation
}

// PickupSystem spawns pickup boxes and reports collections to the
// power-up coordinator. It never decides what a collection does; it
// only forwards the kind signal.
type PickupSystem struct {
	Boxes      []PickupBox
	SpawnTimer float64
	seed       uint64
	spawnSeq   uint64
	lastKind   int
	maxBoxes   int
}

func NewPickupSystem(seed uint64, maxBoxes int) *PickupSystem {
	return &PickupSystem{
		seed:       seed,
		lastKind:   -1,
		maxBoxes:   maxBoxes,
		SpawnTimer: PickupSpawnDelayMin,
	}
}

// Reset clears all boxes and re-seeds spawn pacing for a new run.
func (pk *PickupSystem) Reset(seed uint64) {
	pk.seed = seed
	pk.spawnSeq = 0
	pk.lastKind = -1
	pk.Boxes = pk.Boxes[:0]
	pk.SpawnTimer = NewRand(seed ^ 0x51A3E).RangeF(PickupSpawnDelayMin, PickupSpawnDelayMax)
}

func (pk *PickupSystem) nextSpawnRand(salt uint64) *Rand {
	pk.spawnSeq++
	// Avalanche so consecutive spawn seeds do not correlate.
	return NewRand(splitmix64(pk.seed ^ salt ^ pk.spawnSeq*0x9E3779B185EBCA87))
}

func (pk *PickupSystem) randomSpawnPos(r *Rand) (float64, float64) {
	x := r.RangeF(PickupSpawnMargin, FieldWidth-PickupSpawnMargin)
	y := r.RangeF(PickupSpawnMargin, FieldHeight-PickupSpawnMargin)
	return x, y
}

func (pk *PickupSystem) hasNearbyAliveBox(x, y, minDist float64) bool {
	minD2 := minDist * minDist
	for i := range pk.Boxes {
		b := &pk.Boxes[i]
		if !b.Alive {
			continue
		}
		dx := b.X - x
		dy := b.Y - y
		if dx*dx+dy*dy < minD2 {
			return true
		}
	}
	return false
}

func (pk *PickupSystem) pickSpawnPos(r *Rand) (float64, float64) {
	x, y := pk.randomSpawnPos(r)
	for tries := 0; tries < 14; tries++ {
		if !pk.hasNearbyAliveBox(x, y, PickupMinSpacing) {
			return x, y
		}
		x, y = pk.randomSpawnPos(r)
	}
	return x, y
}

// pickKind chooses what a fresh box carries: sometimes the mystery
// kind, otherwise a concrete one, avoiding obvious same-kind streaks.
func (pk *PickupSystem) pickKind(r *Rand) PowerUpKind {
	if r.Intn(100) < MysteryChance {
		pk.lastKind = int(PowerUpMystery)
		return PowerUpMystery
	}
	kind := PowerUpKind(r.Intn(int(PowerUpMystery)))
	if int(kind) == pk.lastKind {
		off := 1 + r.Intn(int(PowerUpMystery)-1)
		kind = PowerUpKind((int(kind) + off) % int(PowerUpMystery))
	}
	pk.lastKind = int(kind)
	return kind
}

// SpawnRandom places count boxes at random field positions.
func (pk *PickupSystem) SpawnRandom(count int) {
	for i := 0; i < count; i++ {
		r := pk.nextSpawnRand(uint64(i+1) * 0xB0105)
		x, y := pk.pickSpawnPos(r)
		pk.Boxes = append(pk.Boxes, PickupBox{
			X: x, Y: y,
			Kind:  pk.pickKind(r),
			Alive: true,
			Timer: r.RangeF(0, 1),
		})
	}
}

// Update advances animation timers and respawn pacing.
func (pk *PickupSystem) Update(dt float64) {
	for i := range pk.Boxes {
		pk.Boxes[i].Timer += dt
	}

	alive := 0
	for i := range pk.Boxes {
		if pk.Boxes[i].Alive {
			alive++
		}
	}
	if alive >= pk.maxBoxes {
		return
	}

	pk.SpawnTimer -= dt
	if pk.SpawnTimer > 0 {
		return
	}

	r := pk.nextSpawnRand(uint64(len(pk.Boxes)*0xB4D + alive*0x77F))
	pk.SpawnTimer = r.RangeF(PickupSpawnDelayMin, PickupSpawnDelayMax)

	x, y := pk.pickSpawnPos(r)
	kind := pk.pickKind(r)

	// Reuse a dead slot before growing the slice.
	for i := range pk.Boxes {
		if !pk.Boxes[i].Alive {
			pk.Boxes[i] = PickupBox{X: x, Y: y, Kind: kind, Alive: true}
			return
		}
	}
	pk.Boxes = append(pk.Boxes, PickupBox{X: x, Y: y, Kind: kind, Alive: true})
}

// CollectAt reports to powerups every alive box within the collect
// radius of (x, y) and returns how many were collected.
func (pk *PickupSystem) CollectAt(x, y float64, powerups *PowerUpSystem) int {
	collected := 0
	for i := range pk.Boxes {
		b := &pk.Boxes[i]
		if !b.Alive {
			continue
		}
		if math.Hypot(b.X-x, b.Y-y) > PickupCollectRadius {
			continue
		}
		b.Alive = false
		powerups.Activate(b.Kind)
		collected++
	}
	return collected
}

// Collect consumes the box at idx and forwards its kind signal.
func (pk *PickupSystem) Collect(idx int, powerups *PowerUpSystem) {
	if idx < 0 || idx >= len(pk.Boxes) {
		return
	}
	b := &pk.Boxes[idx]
	if !b.Alive {
		return
	}
	b.Alive = false
	powerups.Activate(b.Kind)
}

// AliveCount returns the number of collectible boxes on the field.
func (pk *PickupSystem) AliveCount() int {
	n := 0
	for i := range pk.Boxes {
		if pk.Boxes[i].Alive {
			n++
		}
	}
	return n
}

// RenderData returns sprite rows for alive boxes: x, y, size, r, g, b,
// alpha, rotation.
func (pk *PickupSystem) RenderData() []float32 {
	buf := make([]float32, 0, len(pk.Boxes)*8)
	for i := range pk.Boxes {
		b := &pk.Boxes[i]
		if !b.Alive {
			continue
		}
		cr, cg, cb := powerUpColor(b.Kind)
		rotation := float32(math.Mod(b.Timer*math.Pi, 2*math.Pi))
		// Subtle size pulse so the box breathes slightly.
		size := float32(4.0) + float32(0.4*math.Sin(b.Timer*4.0))
		buf = append(buf, float32(b.X), float32(b.Y), size, cr, cg, cb, 0.95, rotation)
	}
	return buf
}
