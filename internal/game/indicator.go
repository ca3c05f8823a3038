package game

import (
	"math"

	"github.com/google/uuid"
)

// Indicator is one UI timer bar for an active power-up. The power-up
// system only holds the uuid handle; it never reads indicator state
// back.
type Indicator struct {
	ID       uuid.UUID
	Kind     PowerUpKind
	Fraction float64 // remaining/total, 0..1
	Warning  bool    // flashing near-expiry visual
	Pulse    float64 // animation clock, drives the warning flash
}

// IndicatorSystem owns the live indicators, one per active power-up,
// stacked in creation order for the HUD.
type IndicatorSystem struct {
	items []*Indicator
}

func NewIndicatorSystem() *IndicatorSystem {
	return &IndicatorSystem{}
}

// Create adds a full indicator for kind and returns its opaque handle.
func (is *IndicatorSystem) Create(kind PowerUpKind) uuid.UUID {
	ind := &Indicator{
		ID:       uuid.New(),
		Kind:     kind,
		Fraction: 1.0,
	}
	is.items = append(is.items, ind)
	return ind.ID
}

// Refresh updates the bar fraction and warning state for a handle.
func (is *IndicatorSystem) Refresh(id uuid.UUID, fraction float64, warning bool) {
	if ind := is.find(id); ind != nil {
		ind.Fraction = clampF(fraction, 0, 1)
		ind.Warning = warning
	}
}

// SetWarning switches a handle to the flashing near-expiry visual.
func (is *IndicatorSystem) SetWarning(id uuid.UUID) {
	if ind := is.find(id); ind != nil {
		ind.Warning = true
		ind.Pulse = 0
	}
}

// Destroy removes the indicator for a handle. Unknown handles are
// ignored so teardown paths can overlap.
func (is *IndicatorSystem) Destroy(id uuid.UUID) {
	for i, ind := range is.items {
		if ind.ID == id {
			is.items = append(is.items[:i], is.items[i+1:]...)
			return
		}
	}
}

// Update advances the flash animation clocks.
func (is *IndicatorSystem) Update(dt float64) {
	for _, ind := range is.items {
		ind.Pulse += dt
	}
}

func (is *IndicatorSystem) Count() int {
	return len(is.items)
}

func (is *IndicatorSystem) find(id uuid.UUID) *Indicator {
	if id == uuid.Nil {
		return nil
	}
	for _, ind := range is.items {
		if ind.ID == id {
			return ind
		}
	}
	return nil
}

// powerUpColor returns the display color for a power-up kind.
func powerUpColor(k PowerUpKind) (r, g, b float32) {
	switch k {
	case PowerUpMagnet:
		return 1.0, 0.35, 0.20
	case PowerUpShield:
		return 0.25, 0.60, 1.0
	case PowerUpSpeedBoost:
		return 1.0, 0.96, 0.05
	case PowerUpStarPower:
		return 1.0, 0.85, 0.25
	case PowerUpScoreMultiplier:
		return 0.30, 1.0, 0.40
	case PowerUpMystery:
		return 0.75, 0.35, 1.0
	}
	return 1, 1, 1
}

// RenderData returns HUD bar sprites, one row per indicator:
// x, y, width, r, g, b, alpha, reserved. Warning bars blink by
// modulating alpha with the pulse clock.
func (is *IndicatorSystem) RenderData(originX, originY, barWidth, rowHeight float32) []float32 {
	buf := make([]float32, 0, len(is.items)*8)
	for i, ind := range is.items {
		cr, cg, cb := powerUpColor(ind.Kind)
		alpha := float32(0.9)
		if ind.Warning {
			alpha = float32(0.45 + 0.45*math.Abs(math.Sin(ind.Pulse*6.0)))
		}
		buf = append(buf,
			originX, originY+float32(i)*rowHeight,
			barWidth*float32(ind.Fraction),
			cr, cg, cb, alpha, 0)
	}
	return buf
}
