package game

// Player is the capability handle effects mutate. The power-up system
// itself never touches these setters; only effect variants do.
type Player struct {
	X, Y  float64
	Alive bool
	HP    Health
	Score int

	// Capability points flipped by power-up effects.
	SpeedMult    float64 // movement speed multiplier, 1.0 when no boost
	Invincible   bool    // collision immunity (shield)
	MagnetRadius float64 // coin attraction radius, 0 when magnet is off
	ScoreMult    int     // score multiplier, 1 when no multiplier active
	StarPower    bool    // obstacle traversal (smash through)
}

func NewPlayer(x, y float64) *Player {
	return &Player{
		X: x, Y: y,
		Alive:     true,
		HP:        NewHealth(PlayerMaxHP),
		SpeedMult: 1.0,
		ScoreMult: 1,
	}
}

func (p *Player) SetSpeedMult(m float64) {
	if m <= 0 {
		m = 1.0
	}
	p.SpeedMult = m
}

func (p *Player) SetInvincible(on bool) { p.Invincible = on }

func (p *Player) SetMagnetRadius(r float64) {
	if r < 0 {
		r = 0
	}
	p.MagnetRadius = r
}

func (p *Player) SetScoreMult(m int) {
	if m < 1 {
		m = 1
	}
	p.ScoreMult = m
}

func (p *Player) SetStarPower(on bool) { p.StarPower = on }

// Speed returns the effective movement speed.
func (p *Player) Speed() float64 {
	return PlayerBaseSpeed * p.SpeedMult
}

// AddScore credits base points through the active score multiplier.
func (p *Player) AddScore(base int) {
	if base <= 0 {
		return
	}
	p.Score += base * p.ScoreMult
}
