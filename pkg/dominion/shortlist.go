package dominion

import "sort"

// candidate pairs a generated action with the cheap upper-bound proxy score
// used only for top-K pruning before the full per-tick scoring in rankActions
// re-evaluates whatever survives. Proxies read only Threat+graph+stats, never
// a country's Weights — the weighted six-channel score is reserved for the
// shortlisted candidates the orchestrator actually ranks.
type candidate struct {
	action Action
	score  float64
}

// GenerateShortlists builds the bounded candidate set for a country: every
// legal action, ranked by a cheap per-type proxy, pruned to a small per-kind
// top-K, with Pass always present regardless of pruning. Caps and tie-break
// rules are fixed and published so replay is reproducible: ties are broken
// by the smaller target id, then by the smaller action-kind code.
func GenerateShortlists(c *Country, g *Graph, k *Kernels) []Action {
	var attack, fortify, invest, research, diplomacy []candidate

	for idx, e := range c.Edges {
		a := Action{Kind: ActionAttack, EdgeIdx: idx}
		attack = append(attack, candidate{a, attackProxy(c, e, g)})
	}

	for _, s := range allSectors {
		a := Action{Kind: ActionInvest, Sector: s}
		invest = append(invest, candidate{a, investProxy(c, s)})

		a = Action{Kind: ActionResearch, Sector: s}
		research = append(research, candidate{a, researchProxy(c, s)})
	}

	for _, e := range c.Edges {
		for _, kind := range []DiplomacyKind{DiplomacyAlly, DiplomacyPact, DiplomacyTrade} {
			a := Action{Kind: ActionDiplomacy, TargetID: e.TargetID, DipKind: kind}
			diplomacy = append(diplomacy, candidate{a, diplomacyProxy(c, g, e.TargetID, kind)})
		}
	}

	// Fortify and Move both draw on the border-tile/|∇TI| proxy and share a
	// single K_fortify budget: each border tile contributes both candidate
	// kinds, and the combined pool is pruned together so the shortlist's
	// total size stays within Σ K_type + 1 regardless of which kind wins.
	for idx, tile := range c.BorderTiles {
		gradProxy := fortifyProxy(tile)
		fortify = append(fortify, candidate{Action{Kind: ActionFortify, BorderTileIdx: idx}, gradProxy})
		fortify = append(fortify, candidate{Action{Kind: ActionMove, BorderTileIdx: idx}, gradProxy})
	}

	out := make([]Action, 0, capAttack+capFortify+capInvest+capResearch+capDiplomacy+1)
	out = append(out, topK(attack, capAttack, c)...)
	out = append(out, topK(fortify, capFortify, c)...)
	out = append(out, topK(invest, capInvest, c)...)
	out = append(out, topK(research, capResearch, c)...)
	out = append(out, topK(diplomacy, capDiplomacy, c)...)

	out = append(out, Action{Kind: ActionPass})
	return out
}

// attackProxy (spec.md §4.5: "upper-bound proxy score combining M_eff ratio
// and distance") is the raw force ratio behind an Attack's win probability,
// without running it through the sigmoid/territory-value machinery of the
// full scorer. gPenalty already folds distance, terrain, and fortification
// into the denominator, so this single ratio carries both factors the spec
// names. A dead or missing target is certain, uncontested conquest and
// proxies to maxProxy so it always survives pruning.
func attackProxy(c *Country, e Edge, g *Graph) float64 {
	target := g.CountryByID(e.TargetID)
	if target == nil || target.MEff <= 0 {
		return maxProxy
	}
	return safeDiv(c.MEff, target.MEff*gPenalty(e))
}

// investProxy (spec.md §4.5: "top crude ROI") ranks sectors by marginal
// value alone: scoreInvest's ROI is mv * (a fixed per-horizon discount sum
// shared by every sector), so ranking by that ROI is equivalent to ranking
// by mv directly, without the horizon loop.
func investProxy(c *Country, s Sector) float64 {
	return c.MarginalValue(s)
}

// researchProxy (spec.md §4.5: "top MV_q") ranks sectors by the same
// tech-multiplier-weighted marginal value scoreResearch turns into ΔGrowth,
// without the clamping/scaling that formula applies for the final score.
func researchProxy(c *Country, s Sector) float64 {
	m := techMultiplier[s]
	growth := 0.0
	for i, mq := range m {
		growth += mq * c.MV[i]
	}
	return growth
}

// diplomacyProxy (spec.md §4.5: "best improving stance") ranks proposals by
// how much hostility they'd remove from the target's view of this country,
// without running that delta through the acceptance-probability sigmoid.
func diplomacyProxy(c *Country, g *Graph, targetID int, kind DiplomacyKind) float64 {
	target := g.CountryByID(targetID)
	statusQuoHostility := 0.5
	if target != nil {
		if idx := edgeIndex(target, c.ID); idx >= 0 {
			statusQuoHostility = target.Edges[idx].Hostility
		}
	}
	return statusQuoHostility - diplomacyKindWeight(kind, statusQuoHostility)
}

// fortifyProxy (spec.md §4.5: "top |∇TI|") is the border tile's threat
// gradient magnitude, shared by both Fortify and Move candidates at that
// tile.
func fortifyProxy(tile BorderTile) float64 {
	g := tile.ThreatGrad
	if g < 0 {
		return -g
	}
	return g
}

// maxProxy sorts ahead of every ordinary proxy value without relying on
// IEEE Inf semantics in comparisons elsewhere in the package.
const maxProxy = 1e18

// topK sorts candidates by proxy score descending, breaking ties by smaller
// target id then smaller action-kind code, and returns at most k of them.
func topK(cands []candidate, k int, c *Country) []Action {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		ti, tj := cands[i].action.targetID(c), cands[j].action.targetID(c)
		if ti != tj {
			return ti < tj
		}
		return cands[i].action.Kind < cands[j].action.Kind
	})
	if len(cands) > k {
		cands = cands[:k]
	}
	out := make([]Action, len(cands))
	for i, cd := range cands {
		out[i] = cd.action
	}
	return out
}
