// Package feed - the populate loop: evaluate, pick, settle, in decision order.
package feed

import "fmt"

// PopulateChoices runs every decision in order and returns the produced
// choice sequence (also available via Choices afterwards).
//
// Each decision goes through two phases:
//  1. evaluating - score all options (debt + expected increment) and rank
//     them ascending;
//  2. settling   - debit the decided cell, then rebate all participants.
//
// The first ranked candidate that carries positive weight and passes the
// predicate wins. If no candidate qualifies, the whole run fails with
// ErrNoAcceptableOption and the selector is left exactly as before the call.
//
// Statistics deliberately carry over between runs: calling PopulateChoices
// again continues the same fairness account, so later runs keep compensating
// options that were short-changed earlier. Build a fresh Selector when runs
// must be independent.
//
// Complexity: O(size·N log N) time, O(N) scratch per decision.
func (s *Selector[T]) PopulateChoices() ([]T, error) {
	// Commit log: statistics restore on failure, choices replace on success.
	backup := cloneVector(s.statistics)
	picked := make([]T, 0, s.size)
	values := make([]float64, len(s.options))

	for d := 0; d < s.size; d++ {
		// Phase 1: evaluating.
		s.schedulingValues(values, d)
		ranked := rankCandidates(values)

		rank, ok := s.firstAcceptable(ranked, d)
		if !ok {
			s.statistics = backup

			return nil, fmt.Errorf("%w: decision %d", ErrNoAcceptableOption, d)
		}
		chosen := ranked[rank].index
		picked = append(picked, s.options[chosen])

		// Phase 2: settling.
		idx := chosen
		if s.debit == DebitRank {
			idx = rank
		}
		s.settle(d, idx)
	}

	s.choices = picked

	return s.Choices(), nil
}

// firstAcceptable scans the ranked candidates for the first that can actually
// win decision d: positive weight (zero-weight options are excluded by
// construction) and predicate approval. Rejected candidates still occupy
// their rank, which is what DebitRank debits by.
func (s *Selector[T]) firstAcceptable(ranked []candidate, d int) (int, bool) {
	for r, c := range ranked {
		if s.weights[d][c.index] > 0 && s.pred(d, c.index) {
			return r, true
		}
	}

	return 0, false
}
