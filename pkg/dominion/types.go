package dominion

// Relation is the diplomatic stance of one country toward a neighbor along a
// directed edge.
type Relation string

const (
	RelationNeutral Relation = "neutral"
	RelationPact    Relation = "pact"
	RelationAlly    Relation = "ally"
	RelationTrade   Relation = "trade"
	RelationEnemy   Relation = "enemy"
)

// Sector is an investable/researchable economic or military track.
type Sector string

const (
	SectorInfrastructure Sector = "infrastructure"
	SectorMilitary       Sector = "military"
	SectorEconomy        Sector = "economy"
	SectorTechnology     Sector = "technology"
)

// allSectors lists the four sectors in a fixed, deterministic order.
var allSectors = [4]Sector{SectorInfrastructure, SectorMilitary, SectorEconomy, SectorTechnology}

// DiplomacyKind is the proposed relation change carried by a Diplomacy action.
type DiplomacyKind string

const (
	DiplomacyAlly  DiplomacyKind = "ally"
	DiplomacyPact  DiplomacyKind = "pact"
	DiplomacyTrade DiplomacyKind = "trade"
)

// ActionKind tags the variant held by an Action. Values are ordered so that
// their integer code can serve as the secondary tie-break key: ties are
// broken by target id, then by action-kind code.
type ActionKind int

const (
	ActionAttack ActionKind = iota
	ActionInvest
	ActionResearch
	ActionDiplomacy
	ActionFortify
	ActionMove
	ActionPass
)

func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "attack"
	case ActionInvest:
		return "invest"
	case ActionResearch:
		return "research"
	case ActionDiplomacy:
		return "diplomacy"
	case ActionFortify:
		return "fortify"
	case ActionMove:
		return "move"
	case ActionPass:
		return "pass"
	default:
		return "unknown"
	}
}

// Action is the ephemeral, single-tick candidate a country may commit to.
// It is a tagged variant: only the fields relevant to Kind are meaningful.
type Action struct {
	Kind ActionKind

	// Attack
	EdgeIdx int // index into the acting country's edge slice

	// Invest / Research
	Sector Sector

	// Diplomacy
	TargetID int
	DipKind  DiplomacyKind

	// Fortify / Move
	BorderTileIdx int
}

// targetID returns the id used for shortlist tie-breaking (ties are broken
// by smaller target id, then by smaller action-kind code). Actions without a
// natural target id (Invest, Research, Pass) sort first within their kind
// via id -1.
func (a Action) targetID(c *Country) int {
	switch a.Kind {
	case ActionAttack:
		if a.EdgeIdx >= 0 && a.EdgeIdx < len(c.Edges) {
			return c.Edges[a.EdgeIdx].TargetID
		}
		return -1
	case ActionDiplomacy:
		return a.TargetID
	case ActionFortify, ActionMove:
		if a.BorderTileIdx >= 0 && a.BorderTileIdx < len(c.BorderTiles) {
			return c.BorderTiles[a.BorderTileIdx].ID
		}
		return -1
	default:
		return -1
	}
}

// ScoreComponents are the six signed/unsigned fixed-range scalars summed by
// the scorer. ΔRes/ΔSec/ΔGrowth/ΔPos ∈ [-32,+32]; Cost/Risk ∈ [0,16]. Values
// are clamped (saturating), never wrapped.
type ScoreComponents struct {
	DeltaRes    int16
	DeltaSec    int16
	DeltaGrowth int16
	DeltaPos    int16
	Cost        int16
	Risk        int16
}

const (
	deltaMin = -32
	deltaMax = 32
	costMin  = 0
	costMax  = 16
)

func clampDelta(x float64) int16 {
	return int16(clamp(x, deltaMin, deltaMax))
}

func clampCost(x float64) int16 {
	return int16(clamp(x, costMin, costMax))
}

// ScoredAction pairs a candidate Action with its final integer score, for
// shortlist ranking and telemetry runner-up capture.
type ScoredAction struct {
	Action     Action
	Score      int32
	Components ScoreComponents
}
