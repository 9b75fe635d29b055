package dominion

// Tunable core constants. These are compile-time constants, not
// runtime state — every country's weights are derived from them plus its own
// cached stats.
const (
	// Weight update baselines and sensitivities.
	alpha0, beta0, gamma0 = 6.0, 6.0, 6.0
	deltaBaseline         = 6.0
	kappaBaseline         = 6.0
	rhoBaseline           = 6.0
	cR, cT, cG            = 1.5, 1.5, 1.5
	rStar                 = 100.0 // R* target resources
	gStar                 = 0.05  // G* target growth rate

	weightMin = 2
	weightMax = 16

	// Threat field.
	hostileThreshold = 0.6 // hostility above which a non-enemy-relation neighbor is still treated as an enemy

	// Attack.
	attackLambda  = 3.0
	attackBFort   = 0.08
	attackBTerr   = 0.15
	attackBDist   = 0.05
	attackSRes    = 24.0
	attackSSec    = 20.0
	attackSPos    = 12.0
	attackCCas    = 10.0
	attackCSupply = 1.0
	attackSRisk   = 16.0
	attackUpkeep  = 1.0

	// Invest.
	investHorizon  = 8
	investDiscount = discountBase
	investROIScaleGrowth = 20.0
	investROIScaleRes    = 4.0
	investCost           = 4.0
	investRisk           = 1.0

	// Research.
	researchCost = 3.0

	// Diplomacy.
	diplomacyTheta = 2.0
	diplomacyCost  = 3.0

	// Fortify / Move.
	fortifySSec  = 18.0
	fortifySPos  = 2.0
	fortifyCost  = 3.0
	fortifyRisk  = 1.0
	moveSPos     = 8.0
	moveSSec     = 10.0
	moveCost     = 5.0
	moveRisk     = 2.0

	// Shortlist per-type caps.
	capAttack    = 3
	capFortify   = 3
	capInvest    = 2
	capResearch  = 2
	capDiplomacy = 2
)

// techMultiplier is the fixed per-tech-per-sector multiplier matrix m_{t,q}
// used by Research. Row = tech type, column = contributing
// sector, in allSectors order (Infrastructure, Military, Economy,
// Technology).
var techMultiplier = map[Sector][4]float64{
	SectorInfrastructure: {1.0, 0.1, 0.3, 0.2},
	SectorMilitary:       {0.1, 1.0, 0.1, 0.3},
	SectorEconomy:        {0.3, 0.1, 1.0, 0.2},
	SectorTechnology:     {0.2, 0.3, 0.2, 1.0},
}
