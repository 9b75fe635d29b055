package dominion

// isEnemy classifies a neighbor edge as hostile for threat purposes:
// relation outside {Ally, Pact, Trade}, or hostility above the threshold
// regardless of relation.
func isEnemy(e Edge) bool {
	if e.Hostility > hostileThreshold {
		return true
	}
	switch e.Relation {
	case RelationAlly, RelationPact, RelationTrade:
		return false
	default:
		return true
	}
}

func isAlly(e Edge) bool {
	return e.Relation == RelationAlly
}

// ComputeThreatIndex recomputes TI_i from first-order neighbors only:
//
//	TI_i = Σ_{j∈enemies} K(d_ij)·(M_j·h_ji) − Σ_{k∈allies} K(d_ik)·M_k
//
// Full recomputation every tick is canonical (see DESIGN.md Open Question
// decision); it uses only the acting country's direct edges and never scans
// the rest of the graph.
func ComputeThreatIndex(c *Country, g *Graph, k *Kernels) float64 {
	ti := 0.0
	for _, e := range c.Edges {
		target := g.CountryByID(e.TargetID)
		if target == nil {
			continue
		}
		kd := k.DistanceKernel(e.Distance)
		switch {
		case isEnemy(e):
			ti += kd * target.MEff * e.Hostility
		case isAlly(e):
			ti -= kd * target.MEff
		}
	}
	return ti
}

// edgeHostileContribution computes the hostile-only contribution along the
// edge whose target the border tile faces; see UpdateThreatGradients for the
// mapping between a border tile index and its facing edge. This is a local
// proxy for a gradient, not a true one.
func edgeHostileContribution(e Edge, target *Country, k *Kernels) float64 {
	if target == nil || !isEnemy(e) {
		return 0
	}
	return k.DistanceKernel(e.Distance) * target.MEff * e.Hostility
}

// UpdateThreatGradients recomputes TI for the country and |∇TI| for every
// border tile. Each border tile is mapped to the
// edge at the same position in canonical (ascending target id) order — when
// a country has fewer edges than border tiles, trailing tiles see a pseudo-TI
// of zero.
func UpdateThreatGradients(c *Country, g *Graph, k *Kernels) {
	c.TI = ComputeThreatIndex(c, g, k)
	for i := range c.BorderTiles {
		pseudo := 0.0
		if i < len(c.Edges) {
			e := c.Edges[i]
			target := g.CountryByID(e.TargetID)
			pseudo = edgeHostileContribution(e, target, k)
		}
		grad := c.TI - pseudo
		if grad < 0 {
			grad = -grad
		}
		c.BorderTiles[i].ThreatGrad = grad
	}
}
