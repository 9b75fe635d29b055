package dominion

// newTestWorld builds a small three-country triangle used across tests: 1 is
// hostile to 2, allied with 3.
func newTestWorld() *World {
	w := NewWorld(42)
	for _, id := range []int{1, 2, 3} {
		if err := w.AddCountry(id); err != nil {
			panic(err)
		}
	}
	g := w.Graph()
	_ = g.AddEdge(1, 2, 3, 0.9)
	_ = g.AddEdge(2, 1, 3, 0.9)
	_ = g.AddEdge(1, 3, 1, 0.1)
	_ = g.AddEdge(3, 1, 1, 0.1)
	_ = g.SetEdgeRelation(1, 3, RelationAlly)
	_ = g.SetEdgeRelation(3, 1, RelationAlly)

	stats := CountryStats{MEff: 50, GDP: 500, Growth: 0.03, Prestige: 10, Morale: 1, TechLevel: 5, Resources: 80}
	for _, id := range []int{1, 2, 3} {
		_ = g.SetCountryStats(id, stats)
	}
	_ = g.AddBorderTile(1, 100, 2)
	return w
}
