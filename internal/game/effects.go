package game

import "fmt"

// Effect is the lifecycle surface of one power-up variant. Variants
// only flip capability setters on the player; the PowerUpSystem never
// inspects what a variant does, it only drives these three calls.
// Tick exists for variants needing per-frame work; none of the current
// five do.
type Effect interface {
	Activate(p *Player)
	Deactivate(p *Player)
	Tick(p *Player, dt float64)
}

// newEffect constructs the variant for a resolved kind. The switch is
// exhaustive over the resolvable kinds on purpose: adding an enum
// member without a variant here must fail loudly, not become a silent
// no-op buff.
func newEffect(kind PowerUpKind) Effect {
	switch kind {
	case PowerUpMagnet:
		return MagnetEffect{}
	case PowerUpShield:
		return ShieldEffect{}
	case PowerUpSpeedBoost:
		return SpeedBoostEffect{}
	case PowerUpStarPower:
		return StarPowerEffect{}
	case PowerUpScoreMultiplier:
		return ScoreMultiplierEffect{}
	}
	panic(fmt.Sprintf("game: no effect variant for kind %v", kind))
}

// MagnetEffect pulls nearby coins toward the player.
type MagnetEffect struct{}

func (MagnetEffect) Activate(p *Player) { p.SetMagnetRadius(MagnetRadius) }
func (MagnetEffect) Deactivate(p *Player) { p.SetMagnetRadius(0) }
func (MagnetEffect) Tick(p *Player, dt float64) {}

// ShieldEffect grants collision immunity.
type ShieldEffect struct{}

func (ShieldEffect) Activate(p *Player) { p.SetInvincible(true) }
func (ShieldEffect) Deactivate(p *Player) { p.SetInvincible(false) }
func (ShieldEffect) Tick(p *Player, dt float64) {}

// SpeedBoostEffect raises the movement speed multiplier.
type SpeedBoostEffect struct{}

func (SpeedBoostEffect) Activate(p *Player) { p.SetSpeedMult(SpeedBoostMultiplier) }
func (SpeedBoostEffect) Deactivate(p *Player) { p.SetSpeedMult(1.0) }
func (SpeedBoostEffect) Tick(p *Player, dt float64) {}

// StarPowerEffect lets the player smash through obstacles.
type StarPowerEffect struct{}

func (StarPowerEffect) Activate(p *Player) { p.SetStarPower(true) }
func (StarPowerEffect) Deactivate(p *Player) { p.SetStarPower(false) }
func (StarPowerEffect) Tick(p *Player, dt float64) {}

// ScoreMultiplierEffect multiplies all score gains.
type ScoreMultiplierEffect struct{}

func (ScoreMultiplierEffect) Activate(p *Player) { p.SetScoreMult(ScoreMultiplierValue) }
func (ScoreMultiplierEffect) Deactivate(p *Player) { p.SetScoreMult(1) }
func (ScoreMultiplierEffect) Tick(p *Player, dt float64) {}
