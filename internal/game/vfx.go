package game

import "math"

type RGB struct {
	R, G, B uint8
}

type ParticleKind uint8

const (
	ParticleGlow ParticleKind = iota
	ParticleSpark
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem is the VFX collaborator: it reacts to power-up
// signals with short glow bursts and otherwise just integrates and
// ages its particles.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = 4096
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update integrates positions and drops expired particles.
func (ps *ParticleSystem) Update(dt float64) {
	n := 0
	for i := range ps.P {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		ps.P[n] = *p
		n++
	}
	ps.P = ps.P[:n]
	if ps.ovrIdx > n {
		ps.ovrIdx = 0
	}
}

// SpawnBurst emits a radial glow burst in the kind's color at (x, y).
func (ps *ParticleSystem) SpawnBurst(x, y float64, kind PowerUpKind, count int) {
	cr, cg, cb := powerUpColor(kind)
	col := RGB{R: uint8(cr * 255), G: uint8(cg * 255), B: uint8(cb * 255)}
	for i := 0; i < count; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(15, 50)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    ps.rng.RangeF(0.3, 0.6),
			MaxLife: ps.rng.RangeF(0.2, 0.5),
			Col:     col,
			Kind:    ParticleGlow,
		})
	}
}

// AttachVFX subscribes burst spawning to the power-up signals. Bursts
// follow the player because effects are visually anchored there.
// Returns the subscription ids so a caller can detach again.
func AttachVFX(bus *EventBus, player *Player, particles *ParticleSystem) []int {
	ids := make([]int, 0, 3)
	ids = append(ids, bus.Subscribe(EventPowerUpActivated, func(e Event) {
		particles.SpawnBurst(player.X, player.Y, e.Kind, 24)
	}))
	ids = append(ids, bus.Subscribe(EventPowerUpWarning, func(e Event) {
		particles.SpawnBurst(player.X, player.Y, e.Kind, 8)
	}))
	ids = append(ids, bus.Subscribe(EventPowerUpDeactivated, func(e Event) {
		particles.SpawnBurst(player.X, player.Y, e.Kind, 12)
	}))
	return ids
}

// RenderData returns sprite rows for live particles: x, y, size, r, g,
// b, alpha, rotation. Alpha fades linearly with age.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		if p.Life < 0 || p.MaxLife <= 0 {
			continue
		}
		t := clampF(p.Life/p.MaxLife, 0, 1)
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			float32(1-t), 0)
	}
	return buf
}
