// Package feed - functional configuration resolved at construction time.
//
// The Option set follows the usual shape: documented defaults, WithX
// constructors, and a single gather step. Invalid arguments are recorded
// inside the configuration and surfaced by New as ErrOptionViolation;
// nothing panics at runtime.
package feed

import "fmt"

// Option configures a Selector at construction via functional arguments.
type Option func(*config)

// config holds the effective construction-time configuration.
// Matrix and vector overrides stay nil unless supplied; New validates them
// against the selector geometry with the same rules as the SetX methods.
type config struct {
	weights         [][]float64
	randoms         [][]float64
	heterogeneities []float64
	accents         []float64

	src   Source
	pred  Predicate
	debit DebitMode

	// first violation recorded during option parsing
	err error
}

// defaultConfig returns the documented defaults: process-level randomness,
// accept-all predicate, DebitRank settlement, no overrides.
func defaultConfig() config {
	return config{
		src:   processSource{},
		pred:  acceptAll,
		debit: DebitRank,
	}
}

// gatherConfig applies user options on top of defaults, last-writer-wins.
func gatherConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// acceptAll is the default predicate: every option is acceptable everywhere.
func acceptAll(int, int) bool { return true }

// WithWeights overrides the full weight schedule (size×N, finite,
// non-negative cells; 0 excludes an option at that decision).
// Equivalent to calling SetWeights right after New.
func WithWeights(w [][]float64) Option {
	return func(c *config) {
		if w == nil {
			c.err = fmt.Errorf("%w: weights must be non-nil", ErrOptionViolation)
			return
		}
		c.weights = w
	}
}

// WithRandoms overrides the perturbation schedule (size×N, finite cells).
// Equivalent to calling SetRandoms right after New.
func WithRandoms(r [][]float64) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("%w: randoms must be non-nil", ErrOptionViolation)
			return
		}
		c.randoms = r
	}
}

// WithHeterogeneities overrides the per-decision perturbation scales
// (length size, finite, non-negative; 0 disables tie-breaking noise).
func WithHeterogeneities(h []float64) Option {
	return func(c *config) {
		if h == nil {
			c.err = fmt.Errorf("%w: heterogeneities must be non-nil", ErrOptionViolation)
			return
		}
		c.heterogeneities = h
	}
}

// WithAccents overrides the per-decision debt scales (length size, finite,
// non-negative; 0 makes a decision debt-free).
func WithAccents(a []float64) Option {
	return func(c *config) {
		if a == nil {
			c.err = fmt.Errorf("%w: accents must be non-nil", ErrOptionViolation)
			return
		}
		c.accents = a
	}
}

// WithSource injects the random stream used to draw the default randoms.
func WithSource(src Source) Option {
	return func(c *config) {
		if src == nil {
			c.err = fmt.Errorf("%w: source must be non-nil", ErrOptionViolation)
			return
		}
		c.src = src
	}
}

// WithSeed draws the default randoms from a deterministic stream.
// Policy: seed==0 ⇒ the fixed default seed; otherwise the seed verbatim.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rngFromSeed(seed)
	}
}

// WithPredicate installs an acceptability predicate. A nil predicate keeps
// the accept-all default.
func WithPredicate(p Predicate) Option {
	return func(c *config) {
		if p != nil {
			c.pred = p
		}
	}
}

// WithDebitMode selects the settlement convention.
//
//	DebitRank:   debit by sorted-candidate rank (default)
//	DebitChoice: debit the chosen option's cell
//	other:       invalid option ⇒ ErrOptionViolation
func WithDebitMode(m DebitMode) Option {
	return func(c *config) {
		switch m {
		case DebitRank, DebitChoice:
			c.debit = m
		default:
			c.err = fmt.Errorf("%w: unknown debit mode (%d)", ErrOptionViolation, m)
		}
	}
}
