package feed_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statfeed/feed"
)

// TestNew_OptionViolations verifies that meaningless option arguments are
// recorded and surfaced as ErrOptionViolation by New.
func TestNew_OptionViolations(t *testing.T) {
	cases := []struct {
		name string
		opt  feed.Option
	}{
		{"nil weights", feed.WithWeights(nil)},
		{"nil randoms", feed.WithRandoms(nil)},
		{"nil heterogeneities", feed.WithHeterogeneities(nil)},
		{"nil accents", feed.WithAccents(nil)},
		{"nil source", feed.WithSource(nil)},
		{"unknown debit mode", feed.WithDebitMode(feed.DebitMode(42))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := feed.New([]string{"a", "b"}, 2, tc.opt)
			assert.ErrorIs(t, err, feed.ErrOptionViolation)
		})
	}
}

// TestNew_OverridesShareSetterValidation verifies that construction-time
// overrides fail with the same sentinels as the SetX methods.
func TestNew_OverridesShareSetterValidation(t *testing.T) {
	_, err := feed.New([]string{"a", "b"}, 2, feed.WithWeights([][]float64{{1, 1}}))
	assert.ErrorIs(t, err, feed.ErrDimensionMismatch)

	_, err = feed.New([]string{"a", "b"}, 1, feed.WithWeights([][]float64{{-1, 1}}))
	assert.ErrorIs(t, err, feed.ErrNegativeWeight)

	_, err = feed.New([]string{"a", "b"}, 1, feed.WithAccents([]float64{-1}))
	assert.ErrorIs(t, err, feed.ErrNegativeCoefficient)
}

// TestNew_OverridesApplied verifies that construction-time overrides land in
// the selector exactly as given.
func TestNew_OverridesApplied(t *testing.T) {
	weights := [][]float64{{0.7, 0.3}, {0.2, 0.8}}
	randoms := [][]float64{{0.5, 0.5}, {0.25, 0.75}}
	het := []float64{0, 0.2}
	accents := []float64{1, 2}

	sel, err := feed.New([]string{"a", "b"}, 2,
		feed.WithWeights(weights),
		feed.WithRandoms(randoms),
		feed.WithHeterogeneities(het),
		feed.WithAccents(accents),
	)
	require.NoError(t, err)

	assert.Equal(t, weights, sel.Weights())
	assert.Equal(t, randoms, sel.Randoms())
	assert.Equal(t, het, sel.Heterogeneities())
	assert.Equal(t, accents, sel.Accents())
}

// TestWithPredicate_NilKeepsDefault verifies that a nil predicate is ignored
// and every option stays acceptable.
func TestWithPredicate_NilKeepsDefault(t *testing.T) {
	sel, err := feed.New([]string{"a", "b"}, 4, feed.WithSeed(3), feed.WithPredicate(nil))
	require.NoError(t, err)

	choices, err := sel.PopulateChoices()
	require.NoError(t, err)
	assert.Len(t, choices, 4)
}

// TestWithSource_InjectedStream verifies that an injected generator fully
// determines the drawn randoms.
func TestWithSource_InjectedStream(t *testing.T) {
	build := func() [][]float64 {
		sel, err := feed.New([]string{"a", "b", "c"}, 2, feed.WithSource(rand.New(rand.NewSource(99))))
		require.NoError(t, err)

		return sel.Randoms()
	}

	assert.Equal(t, build(), build(), "identical sources must draw identical schedules")
}

// TestWithSeed_MatchesWithSource verifies that WithSeed is shorthand for
// injecting a rand.Rand seeded the same way.
func TestWithSeed_MatchesWithSource(t *testing.T) {
	seeded, err := feed.New([]string{"a", "b"}, 3, feed.WithSeed(7))
	require.NoError(t, err)

	injected, err := feed.New([]string{"a", "b"}, 3, feed.WithSource(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	assert.Equal(t, injected.Randoms(), seeded.Randoms())
}

// TestOptions_LastWriterWins verifies functional-option resolution order.
func TestOptions_LastWriterWins(t *testing.T) {
	sel, err := feed.New([]string{"a", "b"}, 2,
		feed.WithAccents([]float64{5, 5}),
		feed.WithAccents([]float64{2, 2}),
	)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 2}, sel.Accents())
}
