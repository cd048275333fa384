package sim

import "github.com/aidenkroll/demonsim/internal/log"

// TrialResult is the outcome of one complete battle.
type TrialResult struct {
	DmgDone   int
	Rounds    int
	HitRoundX bool
}

// RunTrial resets worker to def (preserving worker's own PRNG seeds),
// shuffles the deck, and runs the round driver to completion.
func RunTrial(worker *State, def *State, params RunParams) TrialResult {
	InitState(worker, def)
	worker.ShuffleDeck()
	hit := Simulate(worker, params)
	worker.trace(log.NewTrialEndEvent(worker.Round, worker.DmgDone, worker.HeroHP > 0))
	return TrialResult{
		DmgDone:   worker.DmgDone,
		Rounds:    worker.Round,
		HitRoundX: hit,
	}
}
