package game

import "testing"

func TestResolveConcreteKindsPassThrough(t *testing.T) {
	r := NewRand(1)
	for k := PowerUpKind(0); k < PowerUpMystery; k++ {
		if got := ResolvePowerUp(k, r); got != k {
			t.Fatalf("ResolvePowerUp(%v) = %v, want identity", k, got)
		}
	}
}

func TestResolveOutOfRangeFallsBack(t *testing.T) {
	r := NewRand(1)
	for _, signal := range []PowerUpKind{-1, PowerUpKindCount, 99} {
		if got := ResolvePowerUp(signal, r); got != PowerUpMagnet {
			t.Fatalf("ResolvePowerUp(%v) = %v, want first declared kind", signal, got)
		}
	}
}

func TestResolveDrawBoundaries(t *testing.T) {
	tests := []struct {
		draw float64
		want PowerUpKind
	}{
		{0.00, PowerUpMagnet},
		{0.10, PowerUpMagnet},
		{0.25, PowerUpMagnet}, // cumulative 0.25 meets the draw
		{0.26, PowerUpShield},
		{0.45, PowerUpShield},
		{0.46, PowerUpSpeedBoost},
		{0.65, PowerUpSpeedBoost},
		{0.66, PowerUpStarPower},
		{0.80, PowerUpStarPower},
		{0.81, PowerUpScoreMultiplier},
		{0.999, PowerUpScoreMultiplier},
		// Past every cumulative weight: the fallback absorbs it.
		{1.5, PowerUpMagnet},
	}
	for _, tt := range tests {
		if got := resolveDraw(tt.draw); got != tt.want {
			t.Errorf("resolveDraw(%v) = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestResolveMysteryDistribution(t *testing.T) {
	const samples = 100000
	r := NewRand(0xD15781B)
	counts := make(map[PowerUpKind]int)
	for i := 0; i < samples; i++ {
		kind := ResolvePowerUp(PowerUpMystery, r)
		if kind == PowerUpMystery || kind < 0 || kind >= PowerUpMystery {
			t.Fatalf("mystery resolved to non-concrete kind %v", kind)
		}
		counts[kind]++
	}
	for _, e := range mysteryTable {
		got := float64(counts[e.kind]) / samples
		if diff := got - e.weight; diff < -0.01 || diff > 0.01 {
			t.Errorf("kind %v observed frequency %.4f, want %.2f ± 0.01", e.kind, got, e.weight)
		}
	}
}
