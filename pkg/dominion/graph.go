package dominion

import "sort"

const defaultLogRetention = 1024

// Graph holds all countries and their directed edges. Countries are created
// and edges added only between ticks.
type Graph struct {
	countries    map[int]*Country
	order        []int // ascending country ids; canonicalized after every mutation
	logRetention int    // ring buffer capacity handed to every new country
}

// NewGraph returns an empty graph whose countries use the default decision
// log retention (spec.md §3: last N=1024 entries).
func NewGraph() *Graph {
	return NewGraphWithRetention(defaultLogRetention)
}

// NewGraphWithRetention returns an empty graph whose countries' decision log
// ring buffers hold the given number of entries. retention <= 0 falls back
// to defaultLogRetention. Host-configurable per spec.md §3.
func NewGraphWithRetention(retention int) *Graph {
	if retention <= 0 {
		retention = defaultLogRetention
	}
	return &Graph{countries: make(map[int]*Country), logRetention: retention}
}

// AddCountry registers a new country with default stats. Mutators are only
// legal between ticks; the orchestrator never calls them mid-tick.
func (g *Graph) AddCountry(id int) error {
	if _, exists := g.countries[id]; exists {
		return &InvalidGraphEdit{Reason: "duplicate country id"}
	}
	g.countries[id] = &Country{
		ID:   id,
		logs: newRingBuffer(g.logRetention),
	}
	g.order = append(g.order, id)
	sort.Ints(g.order)
	return nil
}

// CountryByID returns the country with the given id, or nil if absent.
func (g *Graph) CountryByID(id int) *Country {
	return g.countries[id]
}

// Countries returns all countries in ascending id order. Iteration order is
// always this deterministic ascending order of identifier, regardless of
// insertion history.
func (g *Graph) Countries() []*Country {
	out := make([]*Country, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.countries[id])
	}
	return out
}

// AddEdge inserts a directed edge from -> to with the given distance bucket
// and hostility. Self-loops, out-of-range distance, and duplicate
// (from,to) pairs are rejected with InvalidGraphEdit and no state change.
// Hostility is clamped into [0,1] on insertion. Relation defaults to
// RelationNeutral; use SetEdgeRelation and the other setters to refine it.
func (g *Graph) AddEdge(from, to int, distance int, hostility float64) error {
	if from == to {
		return &InvalidGraphEdit{Reason: "self-loop"}
	}
	src, ok := g.countries[from]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown source country"}
	}
	if _, ok := g.countries[to]; !ok {
		return &InvalidGraphEdit{Reason: "unknown target country"}
	}
	if distance < 0 || distance > distanceMaxD {
		return &InvalidGraphEdit{Reason: "distance out of range [0,20]"}
	}
	for _, e := range src.Edges {
		if e.TargetID == to {
			return &InvalidGraphEdit{Reason: "duplicate edge"}
		}
	}
	src.Edges = append(src.Edges, Edge{
		TargetID:  to,
		Distance:  distance,
		Hostility: clamp(hostility, 0, 1),
		Relation:  RelationNeutral,
	})
	canonicalizeEdges(src)
	return nil
}

// canonicalizeEdges sorts a country's edges ascending by target id:
// insertion order is canonicalized to ascending target id immediately, not
// deferred to the first tick.
func canonicalizeEdges(c *Country) {
	sort.Slice(c.Edges, func(i, j int) bool { return c.Edges[i].TargetID < c.Edges[j].TargetID })
}

// edgeIndex finds the edge index for a given target id, or -1.
func edgeIndex(c *Country, to int) int {
	for i, e := range c.Edges {
		if e.TargetID == to {
			return i
		}
	}
	return -1
}

// SetEdgeRelation updates the diplomatic relation of an existing from->to
// edge.
func (g *Graph) SetEdgeRelation(from, to int, rel Relation) error {
	src, ok := g.countries[from]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown source country"}
	}
	idx := edgeIndex(src, to)
	if idx < 0 {
		return &InvalidGraphEdit{Reason: "unknown edge"}
	}
	src.Edges[idx].Relation = rel
	return nil
}

// SetEdgeTerrain updates the terrain coefficient of an existing edge.
func (g *Graph) SetEdgeTerrain(from, to int, terrain float64) error {
	src, ok := g.countries[from]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown source country"}
	}
	idx := edgeIndex(src, to)
	if idx < 0 {
		return &InvalidGraphEdit{Reason: "unknown edge"}
	}
	src.Edges[idx].Terrain = terrain
	return nil
}

// SetEdgeFortification updates the fortification level of the target at an
// existing border.
func (g *Graph) SetEdgeFortification(from, to int, level int) error {
	src, ok := g.countries[from]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown source country"}
	}
	idx := edgeIndex(src, to)
	if idx < 0 {
		return &InvalidGraphEdit{Reason: "unknown edge"}
	}
	src.Edges[idx].Fortification = level
	return nil
}

// SetEdgeBorderStats updates border length and supply differential of an
// existing edge.
func (g *Graph) SetEdgeBorderStats(from, to int, borderLength, supplyDiff float64) error {
	src, ok := g.countries[from]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown source country"}
	}
	idx := edgeIndex(src, to)
	if idx < 0 {
		return &InvalidGraphEdit{Reason: "unknown edge"}
	}
	src.Edges[idx].BorderLength = borderLength
	src.Edges[idx].SupplyDiff = supplyDiff
	return nil
}

// CountryStats bundles the mutable scalar stats a host may set between ticks.
type CountryStats struct {
	MEff      float64
	GDP       float64
	Growth    float64
	Prestige  float64
	Morale    float64
	TechLevel float64
	Resources float64
}

// SetCountryStats overwrites a country's cached stats.
func (g *Graph) SetCountryStats(id int, stats CountryStats) error {
	c, ok := g.countries[id]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown country"}
	}
	c.MEff = stats.MEff
	c.GDP = stats.GDP
	c.Growth = stats.Growth
	c.Prestige = stats.Prestige
	c.Morale = stats.Morale
	c.TechLevel = stats.TechLevel
	c.Resources = stats.Resources
	return nil
}

// AddBorderTile registers a new border tile for a country with the given
// fortification level. The threat gradient is populated on the next threat
// recomputation.
func (g *Graph) AddBorderTile(countryID, tileID, fortification int) error {
	c, ok := g.countries[countryID]
	if !ok {
		return &InvalidGraphEdit{Reason: "unknown country"}
	}
	for _, bt := range c.BorderTiles {
		if bt.ID == tileID {
			return &InvalidGraphEdit{Reason: "duplicate border tile id"}
		}
	}
	c.BorderTiles = append(c.BorderTiles, BorderTile{ID: tileID, Fortification: fortification})
	sort.Slice(c.BorderTiles, func(i, j int) bool { return c.BorderTiles[i].ID < c.BorderTiles[j].ID })
	return nil
}
