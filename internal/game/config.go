package game

// Field dimensions (in world units). The runner field is a narrow
// vertical strip; pickups spawn across its width ahead of the player.
const (
	FieldWidth  = 96
	FieldHeight = 512
)

// Power-up timing (time-units = seconds of simulation time).
const (
	// WarningThreshold is the remaining time at or below which the
	// one-shot warning signal fires for an active power-up.
	WarningThreshold = 3.0

	DurationMagnet          = 10.0
	DurationShield          = 8.0
	DurationSpeedBoost      = 6.0
	DurationStarPower       = 5.0
	DurationScoreMultiplier = 10.0
)

// Effect strengths applied to the player while a power-up is active.
const (
	MagnetRadius         = 14.0
	SpeedBoostMultiplier = 1.8
	ScoreMultiplierValue = 2
)

// InstantRewardScore is the payout for a collection that resolves to a
// non-timed, zero-duration reward.
const InstantRewardScore = 50

// Player defaults.
const (
	PlayerBaseSpeed = 28.0
	PlayerMaxHP     = 3.0
)

// Pickup spawning.
const (
	MaxPickups          = 5
	PickupSpawnDelayMin = 4.0
	PickupSpawnDelayMax = 10.0
	PickupMinSpacing    = 8.0
	PickupSpawnMargin   = 2.0
	PickupCollectRadius = 2.5
	// MysteryChance is the per-spawn chance (percent) that a pickup
	// box carries the mystery kind instead of a concrete one.
	MysteryChance = 20
)
