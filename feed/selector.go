// Package feed - the Selector engine: construction, reconfiguration, inspection.
package feed

import "fmt"

// Selector deals out a fair sequence of picks from a fixed option set.
//
// A Selector owns a size×N numeric state: one weight and one perturbation
// cell per (decision, option), per-decision heterogeneity and accent
// coefficients, and one fairness-debt cell per option (the statistics
// vector). PopulateChoices consumes that state decision by decision.
//
// A Selector is not safe for concurrent use; run one per goroutine.
type Selector[T any] struct {
	options []T // canonical option set; the index into every per-option vector
	size    int // number of decisions per run

	weights         [][]float64 // size×N, non-negative; 0 excludes an option at a decision
	randoms         [][]float64 // size×N perturbations, uniform [0,1) unless overridden
	heterogeneities []float64   // length size, perturbation scale per decision
	accents         []float64   // length size, debt scale per decision
	statistics      []float64   // length N, accumulated fairness debt per option

	choices []T // output of the last successful run, in decision order

	pred  Predicate
	debit DebitMode
}

// New builds a Selector over options that produces size choices per run.
//
// Defaults, each overridable via an Option or the matching SetX method:
//   - weights:         uniform 1/N per cell, every option equally likely;
//   - randoms:         drawn from the configured Source (WithSource/WithSeed;
//     the process-level generator otherwise), row by row, cell by cell;
//   - heterogeneities: DefaultHeterogeneity for every decision;
//   - accents:         DefaultAccent for every decision;
//   - statistics:      zeroed (no accumulated debt);
//   - predicate:       accept everything;
//   - debit mode:      DebitRank.
//
// Errors: ErrNoOptions, ErrNegativeSize, ErrOptionViolation, plus the
// validation sentinels when an override is malformed. No partially
// initialized selector ever escapes.
//
// Complexity: O(size·N) time and space.
func New[T any](options []T, size int, opts ...Option) (*Selector[T], error) {
	// Stage 1: geometry.
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, size)
	}

	// Stage 2: resolve configuration; surface the first recorded violation.
	cfg := gatherConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := len(options)
	s := &Selector[T]{
		options:         make([]T, n),
		size:            size,
		weights:         uniformWeights(size, n),
		randoms:         drawRandoms(size, n, cfg.src),
		heterogeneities: fillVector(size, DefaultHeterogeneity),
		accents:         fillVector(size, DefaultAccent),
		statistics:      make([]float64, n),
		choices:         make([]T, 0, size),
		pred:            cfg.pred,
		debit:           cfg.debit,
	}
	copy(s.options, options)

	// Stage 3: overrides go through the same validation as the SetX methods.
	if cfg.weights != nil {
		if err := s.SetWeights(cfg.weights); err != nil {
			return nil, err
		}
	}
	if cfg.randoms != nil {
		if err := s.SetRandoms(cfg.randoms); err != nil {
			return nil, err
		}
	}
	if cfg.heterogeneities != nil {
		if err := s.SetHeterogeneities(cfg.heterogeneities); err != nil {
			return nil, err
		}
	}
	if cfg.accents != nil {
		if err := s.SetAccents(cfg.accents); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SetWeights replaces the full weight schedule. The override must be size×N
// with finite, non-negative cells; a 0 cell excludes that option at that
// decision. The input is copied.
//
// Complexity: O(size·N).
func (s *Selector[T]) SetWeights(w [][]float64) error {
	if err := validateMatrix(w, s.size, len(s.options), true, "weights"); err != nil {
		return err
	}
	s.weights = cloneMatrix(w)

	return nil
}

// SetRandoms replaces the perturbation schedule. The override must be size×N
// with finite cells. Values outside [0,1) are accepted deliberately: the
// matrix is a perturbation input, not a distribution sample. The input is copied.
//
// Complexity: O(size·N).
func (s *Selector[T]) SetRandoms(r [][]float64) error {
	if err := validateMatrix(r, s.size, len(s.options), false, "randoms"); err != nil {
		return err
	}
	s.randoms = cloneMatrix(r)

	return nil
}

// SetHeterogeneities replaces the per-decision perturbation scales
// (length size, finite, non-negative). The input is copied.
//
// Complexity: O(size).
func (s *Selector[T]) SetHeterogeneities(h []float64) error {
	if err := validateVector(h, s.size, "heterogeneities"); err != nil {
		return err
	}
	s.heterogeneities = cloneVector(h)

	return nil
}

// SetAccents replaces the per-decision debt scales (length size, finite,
// non-negative). The input is copied.
//
// Complexity: O(size).
func (s *Selector[T]) SetAccents(a []float64) error {
	if err := validateVector(a, s.size, "accents"); err != nil {
		return err
	}
	s.accents = cloneVector(a)

	return nil
}

// Size returns the number of decisions per run.
func (s *Selector[T]) Size() int { return s.size }

// Options returns a copy of the canonical option set.
func (s *Selector[T]) Options() []T {
	out := make([]T, len(s.options))
	copy(out, s.options)

	return out
}

// Choices returns a copy of the sequence produced by the last successful
// PopulateChoices call (empty before the first run).
func (s *Selector[T]) Choices() []T {
	out := make([]T, len(s.choices))
	copy(out, s.choices)

	return out
}

// Statistics returns a copy of the per-option fairness debt.
func (s *Selector[T]) Statistics() []float64 { return cloneVector(s.statistics) }

// Weights returns a deep copy of the weight schedule.
func (s *Selector[T]) Weights() [][]float64 { return cloneMatrix(s.weights) }

// Randoms returns a deep copy of the perturbation schedule.
func (s *Selector[T]) Randoms() [][]float64 { return cloneMatrix(s.randoms) }

// Heterogeneities returns a copy of the per-decision perturbation scales.
func (s *Selector[T]) Heterogeneities() []float64 { return cloneVector(s.heterogeneities) }

// Accents returns a copy of the per-decision debt scales.
func (s *Selector[T]) Accents() []float64 { return cloneVector(s.accents) }

// uniformWeights allocates a rows×cols matrix with every cell 1/cols.
func uniformWeights(rows, cols int) [][]float64 {
	w := 1.0 / float64(cols)
	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = w
		}
		m[i] = row
	}

	return m
}

// drawRandoms fills a rows×cols matrix from src, row-major, one draw per
// cell. The draw order is part of the reproducibility contract for seeded
// sources.
func drawRandoms(rows, cols int, src Source) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = src.Float64()
		}
		m[i] = row
	}

	return m
}

// fillVector allocates a length-n vector with every entry v.
func fillVector(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
