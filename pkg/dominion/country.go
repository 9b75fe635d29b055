package dominion

// Edge is owned by its source country, logically symmetric but stored
// directed.
type Edge struct {
	TargetID      int
	Distance      int // bucket in [0,20]
	Terrain       float64
	Fortification int // fortification level of the target at this border
	BorderLength  float64
	SupplyDiff    float64
	Hostility     float64 // in [0,1], clamped on insertion
	Relation      Relation
}

// BorderTile belongs to a country and carries a precomputed threat gradient,
// refreshed whenever threat is recomputed.
type BorderTile struct {
	ID            int
	Fortification int
	ThreatGrad    float64 // |∇TI| at this tile
}

// Weights is the adaptive per-country vector (α,β,γ,δ,κ,ρ) used by the
// scorer. All components lie in the integer range [2,16] after every weight
// update.
type Weights struct {
	Alpha int
	Beta  int
	Gamma int
	Delta int
	Kappa int
	Rho   int
}

// Country is owned by the World and carries all per-country cached state.
type Country struct {
	ID int

	MEff      float64 // effective military strength
	GDP       float64
	Growth    float64
	Prestige  float64
	Morale    float64
	TechLevel float64
	Resources float64

	W  Weights
	MV [4]float64 // marginal tech values, indexed by sector position in allSectors

	TI float64 // cached threat index

	Edges       []Edge
	BorderTiles []BorderTile

	logs *ringBuffer
}

// sectorIndex returns the fixed position of a sector in MV/allSectors.
func sectorIndex(s Sector) int {
	for i, v := range allSectors {
		if v == s {
			return i
		}
	}
	return -1
}

// MarginalValue returns the country's current MV_q for a sector.
func (c *Country) MarginalValue(s Sector) float64 {
	idx := sectorIndex(s)
	if idx < 0 {
		return 0
	}
	return c.MV[idx]
}
