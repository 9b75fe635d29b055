package dominion

import "testing"

func TestScoreComponentsStayInBounds(t *testing.T) {
	w := newTestWorld()
	g := w.Graph()
	k := StandardKernels()
	c := g.CountryByID(1)
	UpdateWeights(c)
	UpdateThreatGradients(c, g, k)
	UpdateMarginals(c)

	actions := []Action{
		{Kind: ActionAttack, EdgeIdx: 0},
		{Kind: ActionInvest, Sector: SectorEconomy},
		{Kind: ActionResearch, Sector: SectorTechnology},
		{Kind: ActionDiplomacy, TargetID: 2, DipKind: DiplomacyAlly},
		{Kind: ActionFortify, BorderTileIdx: 0},
		{Kind: ActionMove, BorderTileIdx: 0},
		{Kind: ActionPass},
	}
	for _, a := range actions {
		comp := Score(c, a, g, k)
		for _, v := range []int16{comp.DeltaRes, comp.DeltaSec, comp.DeltaGrowth, comp.DeltaPos} {
			if v < deltaMin || v > deltaMax {
				t.Errorf("%s: delta component %d out of [%d,%d]", a.Kind, v, deltaMin, deltaMax)
			}
		}
		for _, v := range []int16{comp.Cost, comp.Risk} {
			if v < costMin || v > costMax {
				t.Errorf("%s: cost/risk component %d out of [%d,%d]", a.Kind, v, costMin, costMax)
			}
		}
	}
}

func TestScoreAttackAgainstDeadTargetSaturates(t *testing.T) {
	w := newTestWorld()
	g := w.Graph()
	k := StandardKernels()
	c := g.CountryByID(1)
	target := g.CountryByID(2)
	// A genuinely dead country: no force, no resources, no GDP. The ordinary
	// per-channel formulas would read near zero for a target with nothing
	// left to take; the dead-target branch must saturate regardless.
	target.MEff = 0
	target.Resources = 0
	target.GDP = 0

	comp := Score(c, Action{Kind: ActionAttack, EdgeIdx: edgeIndex(c, 2)}, g, k)
	if comp.DeltaRes != deltaMax {
		t.Errorf("expected attack on a dead target to saturate DeltaRes at %d, got %d", deltaMax, comp.DeltaRes)
	}
	if comp.DeltaSec != deltaMax {
		t.Errorf("expected attack on a dead target to saturate DeltaSec at %d, got %d", deltaMax, comp.DeltaSec)
	}
}

func TestScoreAttackAgainstMissingTargetSaturates(t *testing.T) {
	w := newTestWorld()
	g := w.Graph()
	k := StandardKernels()
	c := g.CountryByID(1)

	e := c.Edges[edgeIndex(c, 2)]
	e.TargetID = 999 // no country registered under this id
	c.Edges[edgeIndex(c, 2)] = e

	comp := Score(c, Action{Kind: ActionAttack, EdgeIdx: edgeIndex(c, 999)}, g, k)
	if comp.DeltaRes != deltaMax || comp.DeltaSec != deltaMax {
		t.Fatalf("expected attack against a missing target to saturate, got %+v", comp)
	}
}

func TestScorePassIsAllZero(t *testing.T) {
	c := &Country{ID: 1}
	comp := Score(c, Action{Kind: ActionPass}, NewGraph(), StandardKernels())
	if comp != (ScoreComponents{}) {
		t.Fatalf("expected Pass to score as all-zero components, got %+v", comp)
	}
}

func TestFinalScoreWeightsComponentsLinearly(t *testing.T) {
	w := Weights{Alpha: 2, Beta: 3, Gamma: 1, Delta: 1, Kappa: 4, Rho: 5}
	comp := ScoreComponents{DeltaRes: 10, DeltaSec: 4, Cost: 2, Risk: 1}
	got := FinalScore(w, comp)
	want := int32(2*10 + 3*4 - 4*2 - 5*1)
	if got != want {
		t.Fatalf("FinalScore = %d, want %d", got, want)
	}
}
