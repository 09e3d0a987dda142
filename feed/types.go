// Package feed - core types, documented defaults, and sentinel errors.
package feed

import "errors"

// Per-decision coefficients applied when no override is given.
// These MUST reflect the values produced by New; they are the single source
// of truth for default behavior.
const (
	// DefaultHeterogeneity scales how strongly the random perturbation
	// separates otherwise equal candidates at one decision.
	DefaultHeterogeneity float64 = 0.1

	// DefaultAccent scales the fairness debt charged and rebated per decision.
	DefaultAccent float64 = 1.0
)

// Sentinel errors for selector construction, reconfiguration and runs.
var (
	// ErrNoOptions is returned when the option set is empty.
	ErrNoOptions = errors.New("feed: option set must be non-empty")

	// ErrNegativeSize is returned when the requested decision count is negative.
	ErrNegativeSize = errors.New("feed: size must be non-negative")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("feed: invalid option supplied")

	// ErrDimensionMismatch is returned when an override's shape does not match
	// the selector's size×N geometry.
	ErrDimensionMismatch = errors.New("feed: dimension mismatch")

	// ErrNegativeWeight is returned when a weight cell is negative.
	// Zero cells are legal: weight 0 excludes an option at that decision.
	ErrNegativeWeight = errors.New("feed: weights must be non-negative")

	// ErrNegativeCoefficient is returned when a heterogeneity or accent entry
	// is negative.
	ErrNegativeCoefficient = errors.New("feed: coefficients must be non-negative")

	// ErrNonFinite is returned when an override contains NaN or ±Inf.
	ErrNonFinite = errors.New("feed: values must be finite")

	// ErrNoAcceptableOption is returned by PopulateChoices when some decision
	// has no candidate that is both positively weighted and accepted by the
	// predicate. The run fails as a whole; no partial output is kept.
	ErrNoAcceptableOption = errors.New("feed: no acceptable option")
)

// Source supplies uniform random values in [0,1). *math/rand.Rand satisfies
// Source; see WithSeed for a deterministic stream.
type Source interface {
	Float64() float64
}

// Predicate reports whether the option with canonical index option may win
// decision. Candidates are probed in ascending scheduling-value order; the
// first positively weighted candidate the predicate accepts is chosen.
type Predicate func(decision, option int) bool

// DebitMode selects which statistics cell pays the base cost once a decision
// is settled.
//
//   - DebitRank   — debit the cell whose index equals the accepted candidate's
//     rank in the sorted ordering. With the permissive default predicate the
//     accepted rank is always 0, so the head cell absorbs every debit.
//   - DebitChoice — debit the chosen option's own cell. Keeps long-run
//     selection shares proportional to weights and the statistics spread
//     bounded; prefer it when asymptotic fairness matters.
type DebitMode int

const (
	// DebitRank debits by sorted-candidate rank (the default).
	DebitRank DebitMode = iota

	// DebitChoice debits the chosen option's own cell.
	DebitChoice
)
