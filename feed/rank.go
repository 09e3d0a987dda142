package feed

import "slices"

// candidate pairs an option's canonical index with its scheduling value for
// one decision.
type candidate struct {
	index int
	value float64
}

// rankCandidates returns every option as a candidate, sorted by ascending
// value. The sort is stable: equal values keep canonical order, and any
// comparison involving NaN counts as equal instead of poisoning the order.
// +Inf candidates (zero-weight options) therefore always sink to the tail.
//
// Complexity: O(N log N) time, O(N) space.
func rankCandidates(values []float64) []candidate {
	cands := make([]candidate, len(values))
	for i, v := range values {
		cands[i] = candidate{index: i, value: v}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		default:
			// equal or incomparable (NaN): keep stable order
			return 0
		}
	})

	return cands
}
