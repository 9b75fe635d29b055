package dominion

import "sort"

// ApplyFunc performs the host-side effect of a committed action. Returning a
// non-nil error rejects the commit: the tick logs a CommitRejectedEvent and
// continues on to the next country. ApplyFunc must not mutate graph topology
// (edges/countries); only the host's own world state.
type ApplyFunc func(c *Country, a Action) error

// Tick runs the fixed six-step per-country sequence over every country in
// ascending id order: UpdateWeights, UpdateThreat, UpdateMarginals,
// GenerateShortlists, ScoreAndChoose, Apply. A rejected Apply is recorded and
// never aborts processing of the remaining countries.
func Tick(g *Graph, k *Kernels, tickNum int, apply ApplyFunc) []CommitRejectedEvent {
	var rejected []CommitRejectedEvent

	for _, c := range g.Countries() {
		UpdateWeights(c)
		UpdateThreatGradients(c, g, k)
		UpdateMarginals(c)

		shortlist := GenerateShortlists(c, g, k)
		if len(shortlist) == 0 {
			emptyShortlistPanic(c.ID)
		}

		ranked := rankActions(c, g, k, shortlist)
		chosen := ranked[0]

		entry := DecisionLogEntry{
			Tick:       tickNum,
			CountryID:  c.ID,
			Action:     chosen.Action,
			Score:      chosen.Score,
			Components: chosen.Components,
			Weights:    c.W,
			RunnersUp:  runnersUp(ranked),
		}

		if apply != nil {
			if err := apply(c, chosen.Action); err != nil {
				entry.Rejected = true
				entry.RejectReason = err.Error()
				rejected = append(rejected, CommitRejectedEvent{
					CountryID: c.ID,
					Tick:      tickNum,
					Action:    chosen.Action,
					Reason:    err.Error(),
				})
			}
		}

		c.logs.push(entry)
	}

	return rejected
}

// rankActions scores every shortlisted action and returns them sorted
// descending by score, breaking ties by smaller target id then smaller
// action-kind code — the same rule GenerateShortlists uses for per-type
// pruning, applied here across kinds. The argmax is ranked[0].
func rankActions(c *Country, g *Graph, k *Kernels, shortlist []Action) []ScoredAction {
	scored := make([]ScoredAction, len(shortlist))
	for i, a := range shortlist {
		comp := Score(c, a, g, k)
		scored[i] = ScoredAction{Action: a, Score: FinalScore(c.W, comp), Components: comp}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		ti, tj := scored[i].Action.targetID(c), scored[j].Action.targetID(c)
		if ti != tj {
			return ti < tj
		}
		return scored[i].Action.Kind < scored[j].Action.Kind
	})

	return scored
}

// runnersUp returns the two highest-scoring rejected candidates from a
// ranked action list (the entries immediately after the argmax), for
// DecisionLogEntry telemetry. Slots beyond the shortlist's length stay
// zero-valued with Present=false.
func runnersUp(ranked []ScoredAction) [2]RunnerUp {
	var out [2]RunnerUp
	for i := 0; i < 2; i++ {
		if i+1 < len(ranked) {
			out[i] = RunnerUp{Action: ranked[i+1].Action, Score: ranked[i+1].Score, Present: true}
		}
	}
	return out
}
