package game

// mysteryTable lists the resolvable kinds with their selection weights.
// Declared order matters: it is the accumulation order for the weighted
// draw and the fallback order for out-of-range signals.
var mysteryTable = [...]struct {
	kind   PowerUpKind
	weight float64
}{
	{PowerUpMagnet, 0.25},
	{PowerUpShield, 0.20},
	{PowerUpSpeedBoost, 0.20},
	{PowerUpStarPower, 0.15},
	{PowerUpScoreMultiplier, 0.20},
}

var mysteryWeightTotal = func() float64 {
	total := 0.0
	for _, e := range mysteryTable {
		total += e.weight
	}
	return total
}()

// ResolvePowerUp turns a collection signal into a concrete kind.
// Concrete kinds pass through unchanged; a mystery signal is resolved
// by weighted random draw. The function always succeeds: even an
// out-of-range signal resolves to the first declared kind.
func ResolvePowerUp(signal PowerUpKind, r *Rand) PowerUpKind {
	if signal >= 0 && signal < PowerUpMystery {
		return signal
	}
	if signal != PowerUpMystery {
		return mysteryTable[0].kind
	}
	return resolveDraw(r.Float64() * mysteryWeightTotal)
}

// resolveDraw maps a uniform draw in [0, mysteryWeightTotal) to a kind:
// the first kind whose cumulative weight meets or exceeds the draw. The
// trailing return absorbs any floating-point accumulation shortfall.
func resolveDraw(draw float64) PowerUpKind {
	acc := 0.0
	for _, e := range mysteryTable {
		acc += e.weight
		if acc >= draw {
			return e.kind
		}
	}
	return mysteryTable[0].kind
}
