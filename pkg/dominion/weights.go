package dominion

import "math"

// UpdateWeights recomputes a country's adaptive weight vector from its
// cached stats and threat index. The orchestrator runs this before threat is
// recomputed for the current tick, so weights always see the previous tick's
// cached TI.
func UpdateWeights(c *Country) {
	rTerm := 0.0
	if rStar != 0 {
		rTerm = cR * (rStar - c.Resources) / rStar
	}
	alpha := alpha0 * (1 + rTerm)

	tiTerm := safeDiv(c.TI, 1+c.TI)
	beta := beta0 * (1 + cT*tiTerm)

	gTerm := 0.0
	if gStar != 0 {
		gTerm = cG * (gStar - c.Growth) / gStar
	}
	gamma := gamma0 * (1 + gTerm)

	c.W = Weights{
		Alpha: roundClampWeight(alpha),
		Beta:  roundClampWeight(beta),
		Gamma: roundClampWeight(gamma),
		Delta: roundClampWeight(deltaBaseline),
		Kappa: roundClampWeight(kappaBaseline),
		Rho:   roundClampWeight(rhoBaseline),
	}
}

// roundClampWeight clamps x into [2,16] then rounds to the nearest integer,
// ties to even.
func roundClampWeight(x float64) int {
	x = clamp(x, weightMin, weightMax)
	return int(math.RoundToEven(x))
}
