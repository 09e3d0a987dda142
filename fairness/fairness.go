// Package fairness - tally, target and deviation arithmetic.
package fairness

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for fairness measurements.
var (
	// ErrNoOptions is returned when the option set is empty.
	ErrNoOptions = errors.New("fairness: option set must be non-empty")

	// ErrUnknownChoice is returned when a choice value is not in the option set.
	ErrUnknownChoice = errors.New("fairness: choice is not an option")

	// ErrEmptySchedule is returned when a weight schedule has no rows.
	ErrEmptySchedule = errors.New("fairness: weight schedule must be non-empty")

	// ErrDimensionMismatch is returned when vector or row lengths disagree.
	ErrDimensionMismatch = errors.New("fairness: dimension mismatch")

	// ErrNegativeWeight is returned when a schedule cell is negative.
	ErrNegativeWeight = errors.New("fairness: weights must be non-negative")

	// ErrNonFinite is returned when a schedule cell is NaN or ±Inf.
	ErrNonFinite = errors.New("fairness: values must be finite")

	// ErrDegenerateWeights is returned when a schedule row has no weight mass.
	ErrDegenerateWeights = errors.New("fairness: weight row sums to zero")
)

// Counts tallies how many times each canonical option was chosen.
// When options contains duplicate values, every matching pick is booked
// against the first index that holds the value.
//
// Complexity: O(len(choices) + len(options)).
func Counts[T comparable](choices, options []T) ([]int, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	index := make(map[T]int, len(options))
	for i, opt := range options {
		if _, ok := index[opt]; !ok {
			index[opt] = i
		}
	}

	counts := make([]int, len(options))
	for i, c := range choices {
		at, ok := index[c]
		if !ok {
			return nil, fmt.Errorf("%w: position %d", ErrUnknownChoice, i)
		}
		counts[at]++
	}

	return counts, nil
}

// Shares converts pick tallies into per-option fractions of the run.
// An empty choice sequence yields an all-zero vector.
//
// Complexity: O(len(choices) + len(options)).
func Shares[T comparable](choices, options []T) ([]float64, error) {
	counts, err := Counts(choices, options)
	if err != nil {
		return nil, err
	}

	shares := make([]float64, len(counts))
	if len(choices) == 0 {
		return shares, nil
	}
	total := float64(len(choices))
	for i, c := range counts {
		shares[i] = float64(c) / total
	}

	return shares, nil
}

// Targets derives the long-run share each option is owed by a weight
// schedule: the mean over decisions of the option's row share
// weights[d][o] / Σ weights[d].
//
// Errors: ErrEmptySchedule, ErrDimensionMismatch (ragged rows), ErrNonFinite,
// ErrNegativeWeight, ErrDegenerateWeights (a massless row).
//
// Complexity: O(M·N).
func Targets(weights [][]float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrEmptySchedule
	}

	n := len(weights[0])
	targets := make([]float64, n)
	for d, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, d, len(row), n)
		}
		for o, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: weights[%d][%d]=%g", ErrNonFinite, d, o, w)
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: weights[%d][%d]=%g", ErrNegativeWeight, d, o, w)
			}
		}

		mass := floats.Sum(row)
		if mass == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrDegenerateWeights, d)
		}
		for o, w := range row {
			targets[o] += w / mass
		}
	}

	rows := float64(len(weights))
	for o := range targets {
		targets[o] /= rows
	}

	return targets, nil
}

// Gap is the L∞ distance between realized shares and targets: the largest
// absolute per-option deviation. Zero for empty vectors.
//
// Complexity: O(N).
func Gap(shares, targets []float64) (float64, error) {
	if len(shares) != len(targets) {
		return 0, fmt.Errorf("%w: %d shares vs %d targets", ErrDimensionMismatch, len(shares), len(targets))
	}
	if len(shares) == 0 {
		return 0, nil
	}

	return floats.Distance(shares, targets, math.Inf(1)), nil
}

// Spread is the width of a statistics vector: max − min. Zero for fewer
// than two entries.
//
// Complexity: O(N).
func Spread(stats []float64) float64 {
	if len(stats) < 2 {
		return 0
	}

	return floats.Max(stats) - floats.Min(stats)
}

// Imbalance condenses a statistics vector into one number: the population
// standard deviation of the per-option debts. Zero for fewer than two
// entries.
//
// Complexity: O(N).
func Imbalance(stats []float64) float64 {
	if len(stats) < 2 {
		return 0
	}

	return stat.PopStdDev(stats, nil)
}
