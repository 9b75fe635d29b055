package dominion

// gPenalty combines terrain, distance, and target fortification into the
// force-ratio penalty applied to an Attack's odds. Higher
// terrain/fortification/distance reduce the attacker's effective force
// ratio.
func gPenalty(e Edge) float64 {
	return 1.0 + e.Terrain*0.25 + float64(e.Fortification)*0.15 + float64(e.Distance)*0.02
}

// territoryValue estimates the value of conquering a target country from
// its cached resources and GDP, normalized to roughly [0,1.5].
func territoryValue(target *Country) float64 {
	if target == nil {
		return 0
	}
	return clamp((target.Resources+target.GDP)/150.0, 0, 1.5)
}

// scoreAttack scores an Attack action: win probability from the log force
// ratio through the sigmoid kernel, territory value on success, expected
// casualties and risk around that probability.
func scoreAttack(c *Country, a Action, g *Graph, k *Kernels) ScoreComponents {
	e := c.Edges[a.EdgeIdx]
	target := g.CountryByID(e.TargetID)

	if target == nil || target.MEff <= 0 {
		// Edge case (spec.md §4.6): a dead or missing target yields ΔRes/ΔSec
		// saturated at +32 outright — conquest is certain and uncontested, so
		// the ordinary per-channel formulas (which scale with the target's
		// own resources/hostility and would otherwise read near zero for a
		// target with nothing left) don't apply.
		casualties := 0.0
		return ScoreComponents{
			DeltaRes:    deltaMax,
			DeltaSec:    deltaMax,
			DeltaGrowth: 0,
			DeltaPos:    clampDelta(attackSPos),
			Cost:        clampCost(attackCCas*casualties + attackCSupply),
			Risk:        0,
		}
	}

	fr := safeDiv(c.MEff, target.MEff*gPenalty(e))
	x := attackLambda * (k.LogRatio(fr) - attackBFort*float64(e.Fortification) - attackBTerr*e.Terrain - attackBDist*float64(e.Distance))
	pWin := k.Sigmoid(x)

	tv := territoryValue(target)
	threatContribution := edgeHostileContribution(e, target, k)
	casualties := (1 - pWin) * safeDiv(1.0, fr)

	return ScoreComponents{
		DeltaRes:    clampDelta(attackSRes*pWin*tv - attackUpkeep),
		DeltaSec:    clampDelta(attackSSec * threatContribution * pWin),
		DeltaGrowth: 0,
		DeltaPos:    clampDelta(attackSPos * pWin),
		Cost:        clampCost(attackCCas*casualties + attackCSupply),
		Risk:        clampCost(attackSRisk * pWin * (1 - pWin)),
	}
}

// scoreInvest scores an Invest action by discounting a sector's marginal
// value over a fixed planning horizon.
func scoreInvest(c *Country, a Action, k *Kernels) ScoreComponents {
	mv := c.MarginalValue(a.Sector)
	sum := 0.0
	for h := 1; h <= investHorizon; h++ {
		sum += k.Discount(h) * mv
	}
	roi := sum / float64(investHorizon)

	return ScoreComponents{
		DeltaRes:    clampDelta(investROIScaleRes * roi * 0.3),
		DeltaSec:    0,
		DeltaGrowth: clampDelta(investROIScaleGrowth * roi),
		DeltaPos:    0,
		Cost:        clampCost(investCost),
		Risk:        clampCost(investRisk),
	}
}

// scoreResearch scores a Research action: zero risk, fixed cost, diminishing
// returns encoded entirely in the country's cached marginal values.
func scoreResearch(c *Country, a Action) ScoreComponents {
	m := techMultiplier[a.Sector]
	growth := 0.0
	for i, mq := range m {
		growth += mq * c.MV[i]
	}
	return ScoreComponents{
		DeltaGrowth: clampDelta(growth * 20.0),
		Cost:        clampCost(researchCost),
	}
}

// diplomacyKindWeight returns the hostility a relation change would leave on
// the edge, used to estimate how much a proposal improves the target's
// position (lower is better for the target).
func diplomacyKindWeight(kind DiplomacyKind, current float64) float64 {
	switch kind {
	case DiplomacyAlly:
		return 0.0
	case DiplomacyPact:
		return current * 0.3
	case DiplomacyTrade:
		return current * 0.6
	default:
		return current
	}
}

// scoreDiplomacy scores a Diplomacy action by estimating the target's
// acceptance probability from the hostility reduction it would see, run
// through the sigmoid kernel.
func scoreDiplomacy(c *Country, a Action, g *Graph, k *Kernels) ScoreComponents {
	target := g.CountryByID(a.TargetID)
	statusQuoHostility := 0.5
	if target != nil {
		if idx := edgeIndex(target, c.ID); idx >= 0 {
			statusQuoHostility = target.Edges[idx].Hostility
		}
	}
	withIHostility := diplomacyKindWeight(a.DipKind, statusQuoHostility)
	scoreDelta := statusQuoHostility - withIHostility
	pAccept := k.Sigmoid(diplomacyTheta * scoreDelta * 4)

	var secGain, posGain, resGain float64
	switch a.DipKind {
	case DiplomacyAlly:
		secGain, posGain, resGain = 14, 4, 2
	case DiplomacyPact:
		secGain, posGain, resGain = 8, 2, 1
	case DiplomacyTrade:
		secGain, posGain, resGain = 2, 1, 4
	}

	return ScoreComponents{
		DeltaRes:    clampDelta(resGain * pAccept),
		DeltaSec:    clampDelta(secGain * pAccept),
		DeltaGrowth: 0,
		DeltaPos:    clampDelta(posGain * pAccept),
		Cost:        clampCost(diplomacyCost),
		Risk:        clampCost(4.0 * pAccept * (1 - pAccept)),
	}
}

// gradFactor normalizes an unbounded |∇TI| into [0,1) for use as a channel
// multiplier.
func gradFactor(grad float64) float64 {
	return grad / (1 + grad)
}

// scoreFortify scores a Fortify action from the magnitude of the local
// threat gradient at the border tile.
func scoreFortify(c *Country, a Action) ScoreComponents {
	tile := c.BorderTiles[a.BorderTileIdx]
	gf := gradFactor(tile.ThreatGrad)
	return ScoreComponents{
		DeltaSec: clampDelta(fortifySSec * gf),
		DeltaPos: clampDelta(fortifySPos),
		Cost:     clampCost(fortifyCost),
		Risk:     clampCost(fortifyRisk),
	}
}

// scoreMove scores a Move action: same shape as Fortify but weighted toward
// mobility (ΔPos) with a slightly higher cost.
func scoreMove(c *Country, a Action) ScoreComponents {
	tile := c.BorderTiles[a.BorderTileIdx]
	gf := gradFactor(tile.ThreatGrad)
	return ScoreComponents{
		DeltaSec: clampDelta(moveSSec * gf * 0.5),
		DeltaPos: clampDelta(moveSPos*gf + 1),
		Cost:     clampCost(moveCost),
		Risk:     clampCost(moveRisk),
	}
}

// Score dispatches to the per-action-kind component computation.
func Score(c *Country, a Action, g *Graph, k *Kernels) ScoreComponents {
	switch a.Kind {
	case ActionAttack:
		return scoreAttack(c, a, g, k)
	case ActionInvest:
		return scoreInvest(c, a, k)
	case ActionResearch:
		return scoreResearch(c, a)
	case ActionDiplomacy:
		return scoreDiplomacy(c, a, g, k)
	case ActionFortify:
		return scoreFortify(c, a)
	case ActionMove:
		return scoreMove(c, a)
	case ActionPass:
		return ScoreComponents{}
	default:
		return ScoreComponents{}
	}
}

// FinalScore combines components with integer weights:
//
//	S = α·ΔRes + β·ΔSec + γ·ΔGrowth + δ·ΔPos − κ·Cost − ρ·Risk
func FinalScore(w Weights, comp ScoreComponents) int32 {
	return int32(w.Alpha)*int32(comp.DeltaRes) +
		int32(w.Beta)*int32(comp.DeltaSec) +
		int32(w.Gamma)*int32(comp.DeltaGrowth) +
		int32(w.Delta)*int32(comp.DeltaPos) -
		int32(w.Kappa)*int32(comp.Cost) -
		int32(w.Rho)*int32(comp.Risk)
}
