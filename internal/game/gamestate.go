package game

type GameState int

const (
	StateMenu GameState = iota
	StateRunning
	StateGameOver
)

// GameSession owns the run lifecycle. Both run boundaries guarantee
// zero active power-ups: a fresh run never inherits buffs, and game
// over tears every buff down before the score screen.
type GameSession struct {
	State    GameState
	Run      int
	RunTimer float64
	Score    int

	bus      *EventBus
	powerups *PowerUpSystem
	pickups  *PickupSystem
}

func NewGameSession(bus *EventBus, powerups *PowerUpSystem, pickups *PickupSystem) *GameSession {
	return &GameSession{
		State:    StateMenu,
		bus:      bus,
		powerups: powerups,
		pickups:  pickups,
	}
}

// StartRun resets per-run state and begins a new run.
func (s *GameSession) StartRun(seed uint64) {
	s.Run++
	s.RunTimer = 0
	s.Score = 0
	s.State = StateRunning

	s.powerups.DeactivateAll()
	if s.pickups != nil {
		s.pickups.Reset(splitmix64(seed ^ uint64(s.Run)*0xA11CE5ED))
		s.pickups.SpawnRandom(MaxPickups)
	}
	s.bus.Emit(Event{Type: EventRunStarted, Kind: PowerUpKindCount})
}

// EndRun finishes the current run and clears every active buff.
func (s *GameSession) EndRun(player *Player) {
	if s.State != StateRunning {
		return
	}
	s.State = StateGameOver
	if player != nil {
		s.Score = player.Score
	}
	s.powerups.DeactivateAll()
	s.bus.Emit(Event{Type: EventRunEnded, Kind: PowerUpKindCount})
}

// Update advances the run timer.
func (s *GameSession) Update(dt float64) {
	if s.State == StateRunning {
		s.RunTimer += dt
	}
}
