// Package feed - per-decision scheduling arithmetic and settlement.
package feed

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// trueIncrement is the base cost option o pays when decision d is debited to
// it: the accent divided by the option's weight. Zero weight yields +Inf,
// which is why settle never debits a zero-weight cell.
func (s *Selector[T]) trueIncrement(d, o int) float64 {
	w := s.weights[d][o]
	if w == 0 {
		return math.Inf(1)
	}

	return s.accents[d] / w
}

// expectedIncrement perturbs the base cost with the decision's heterogeneity:
// (accent + heterogeneity·random) / weight. Zero weight yields +Inf, so the
// option sorts behind every finite candidate and cannot win decision d.
func (s *Selector[T]) expectedIncrement(d, o int) float64 {
	w := s.weights[d][o]
	if w == 0 {
		return math.Inf(1)
	}

	return (s.accents[d] + s.heterogeneities[d]*s.randoms[d][o]) / w
}

// schedulingValues fills dst (length N) with each option's score at decision
// d: accumulated debt plus expected increment. Lower is better.
//
// Complexity: O(N).
func (s *Selector[T]) schedulingValues(dst []float64, d int) {
	for o := range dst {
		dst[o] = s.statistics[o] + s.expectedIncrement(d, o)
	}
}

// normalizationValue is the settlement rebate at decision d: the accent
// divided by the decision's total weight mass. Callers guarantee the mass is
// positive (a decision with no positive weight never reaches settlement).
func (s *Selector[T]) normalizationValue(d int) float64 {
	return s.accents[d] / floats.Sum(s.weights[d])
}

// settle books decision d against the cell at idx: debit first, then rebate
// every positively weighted option by the normalization value. The debit is
// skipped when the charged cell holds zero weight - such a cell never
// participates at d, and charging it would push its debt to +Inf.
//
// Complexity: O(N).
func (s *Selector[T]) settle(d, idx int) {
	if s.weights[d][idx] > 0 {
		s.statistics[idx] += s.trueIncrement(d, idx)
	}

	nv := s.normalizationValue(d)
	for o, w := range s.weights[d] {
		if w > 0 {
			s.statistics[o] -= nv
		}
	}
}
