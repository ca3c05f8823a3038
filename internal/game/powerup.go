package game

import (
	"fmt"

	"github.com/google/uuid"
)

type PowerUpKind int

const (
	PowerUpMagnet PowerUpKind = iota
	PowerUpShield
	PowerUpSpeedBoost
	PowerUpStarPower
	PowerUpScoreMultiplier
	PowerUpMystery // resolved to a concrete kind before activation, never active itself

	PowerUpKindCount // must stay last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMagnet:
		return "Magnet"
	case PowerUpShield:
		return "Shield"
	case PowerUpSpeedBoost:
		return "SpeedBoost"
	case PowerUpStarPower:
		return "StarPower"
	case PowerUpScoreMultiplier:
		return "ScoreMultiplier"
	case PowerUpMystery:
		return "Mystery"
	}
	return fmt.Sprintf("PowerUpKind(%d)", int(k))
}

// DefaultDuration returns the timed duration for a concrete kind.
func DefaultDuration(kind PowerUpKind) float64 {
	switch kind {
	case PowerUpMagnet:
		return DurationMagnet
	case PowerUpShield:
		return DurationShield
	case PowerUpSpeedBoost:
		return DurationSpeedBoost
	case PowerUpStarPower:
		return DurationStarPower
	case PowerUpScoreMultiplier:
		return DurationScoreMultiplier
	}
	return 0
}

// ActivePowerUp is the timer record for one currently active kind.
// Records are owned exclusively by the PowerUpSystem.
type ActivePowerUp struct {
	Kind          PowerUpKind
	TotalDuration float64 // fixed at activation; display fraction only
	Remaining     float64 // seconds left, ticked down each step
	WarningFired  bool    // the near-expiry signal fires at most once
}

// PowerUpSystem coordinates the lifecycle of timed power-up buffs:
// activation and extension, per-step timer decay, the one-shot expiry
// warning, and deactivation with effect teardown. All operations run on
// the main simulation step; nothing here is safe for concurrent use.
type PowerUpSystem struct {
	player     *Player
	bus        *EventBus
	indicators *IndicatorSystem
	rng        *Rand

	// Indexed by kind so iteration order is the declared enum order,
	// independent of activation order.
	active  [PowerUpKindCount]*ActivePowerUp
	effects [PowerUpKindCount]Effect
	handles [PowerUpKindCount]uuid.UUID
}

// NewPowerUpSystem wires the coordinator to its collaborators. A nil
// player is a caller wiring bug: effects have nothing to mutate.
// indicators may be nil (headless runs and most tests).
func NewPowerUpSystem(player *Player, bus *EventBus, indicators *IndicatorSystem, seed uint64) *PowerUpSystem {
	if player == nil {
		panic("game: power-up system requires a player capability handle")
	}
	if bus == nil {
		bus = NewEventBus()
	}
	return &PowerUpSystem{
		player:     player,
		bus:        bus,
		indicators: indicators,
		rng:        NewRand(splitmix64(seed ^ 0xB00575)),
	}
}

// Activate handles a collection signal using the kind's default duration.
func (ps *PowerUpSystem) Activate(signal PowerUpKind) {
	kind := ResolvePowerUp(signal, ps.rng)
	ps.activate(kind, DefaultDuration(kind))
}

// ActivateFor handles a collection signal with an explicit duration
// override. A non-positive duration marks an instant one-shot reward:
// no record, no effect, no signals, only the immediate payout.
func (ps *PowerUpSystem) ActivateFor(signal PowerUpKind, duration float64) {
	kind := ResolvePowerUp(signal, ps.rng)
	ps.activate(kind, duration)
}

func (ps *PowerUpSystem) activate(kind PowerUpKind, duration float64) {
	if duration <= 0 {
		ps.player.AddScore(InstantRewardScore)
		return
	}

	if rec := ps.active[kind]; rec != nil {
		// Extension: refresh upward only, never shorten a running buff.
		if duration > rec.Remaining {
			rec.Remaining = duration
		}
		// Re-arm the warning only if the buff climbed back above the
		// threshold; otherwise it keeps its fired state.
		if rec.WarningFired && rec.Remaining > WarningThreshold {
			rec.WarningFired = false
		}
		// Extension is silent to subscribers; only the indicator refreshes.
		if ps.indicators != nil {
			ps.indicators.Refresh(ps.handles[kind], ps.fraction(rec), rec.WarningFired)
		}
		return
	}

	rec := &ActivePowerUp{Kind: kind, TotalDuration: duration, Remaining: duration}
	ps.active[kind] = rec

	eff := newEffect(kind)
	ps.effects[kind] = eff
	eff.Activate(ps.player)

	if ps.indicators != nil {
		ps.handles[kind] = ps.indicators.Create(kind)
	}
	ps.bus.Emit(Event{Type: EventPowerUpActivated, Kind: kind})
}

// Tick advances all active records by dt. Call exactly once per fixed
// simulation step. Expired records are collected during the scan and
// deactivated afterwards in kind order; removing them mid-iteration
// would skip or double-process kinds.
func (ps *PowerUpSystem) Tick(dt float64) {
	var expired [PowerUpKindCount]bool
	anyExpired := false

	for k := PowerUpKind(0); k < PowerUpKindCount; k++ {
		rec := ps.active[k]
		if rec == nil {
			continue
		}
		rec.Remaining -= dt
		ps.effects[k].Tick(ps.player, dt)

		if !rec.WarningFired && rec.Remaining > 0 && rec.Remaining <= WarningThreshold {
			rec.WarningFired = true
			ps.bus.Emit(Event{Type: EventPowerUpWarning, Kind: k})
			if ps.indicators != nil {
				ps.indicators.SetWarning(ps.handles[k])
			}
		}

		if rec.Remaining <= 0 {
			expired[k] = true
			anyExpired = true
		} else if ps.indicators != nil {
			ps.indicators.Refresh(ps.handles[k], ps.fraction(rec), rec.WarningFired)
		}
	}

	if anyExpired {
		for k := PowerUpKind(0); k < PowerUpKindCount; k++ {
			if expired[k] {
				ps.Deactivate(k)
			}
		}
	}
}

// Deactivate tears down the record for kind: effect off, indicator
// destroyed, record removed, deactivation signal emitted. A no-op when
// the kind is not active; cleanup paths may race each other harmlessly.
func (ps *PowerUpSystem) Deactivate(kind PowerUpKind) {
	if kind < 0 || kind >= PowerUpKindCount {
		return
	}
	rec := ps.active[kind]
	if rec == nil {
		return
	}
	ps.effects[kind].Deactivate(ps.player)
	ps.effects[kind] = nil
	if ps.indicators != nil {
		ps.indicators.Destroy(ps.handles[kind])
		ps.handles[kind] = uuid.Nil
	}
	ps.active[kind] = nil
	ps.bus.Emit(Event{Type: EventPowerUpDeactivated, Kind: kind})
}

// DeactivateAll clears every active power-up. Used at session
// boundaries (run start and game over).
func (ps *PowerUpSystem) DeactivateAll() {
	// Snapshot first: Deactivate mutates the active set.
	for _, k := range ps.ActiveKinds() {
		ps.Deactivate(k)
	}
}

func (ps *PowerUpSystem) IsActive(kind PowerUpKind) bool {
	return kind >= 0 && kind < PowerUpKindCount && ps.active[kind] != nil
}

// Remaining returns the seconds left for kind, 0 when inactive.
func (ps *PowerUpSystem) Remaining(kind PowerUpKind) float64 {
	if !ps.IsActive(kind) {
		return 0
	}
	rem := ps.active[kind].Remaining
	if rem < 0 {
		return 0
	}
	return rem
}

// RemainingFraction returns remaining/total in [0,1] for UI timer bars.
func (ps *PowerUpSystem) RemainingFraction(kind PowerUpKind) float64 {
	if !ps.IsActive(kind) {
		return 0
	}
	return ps.fraction(ps.active[kind])
}

func (ps *PowerUpSystem) fraction(rec *ActivePowerUp) float64 {
	if rec.TotalDuration <= 0 {
		return 0
	}
	// Extension can push Remaining above the original total; the bar
	// just reads full in that case.
	return clampF(rec.Remaining/rec.TotalDuration, 0, 1)
}

// ActiveKinds returns the active kinds in declared enum order.
func (ps *PowerUpSystem) ActiveKinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, PowerUpKindCount)
	for k := PowerUpKind(0); k < PowerUpKindCount; k++ {
		if ps.active[k] != nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
