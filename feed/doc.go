// Package feed implements weight-proportional selection with explicit
// fairness correction: it deals out a sequence of picks from a fixed option
// set so that, over a run, each option is chosen in proportion to its
// configured weight.
//
// 🚀 How it works
//
//	A Selector owns a numeric state sized size×N (decisions × options):
//	  • weights         – cell [d][o] is option o's share at decision d;
//	                      a 0 cell excludes o from decision d entirely
//	  • randoms         – perturbations, uniform [0,1) unless overridden
//	  • heterogeneities – per-decision scale of the random tie-breaking
//	  • accents         – per-decision scale of the fairness debt
//	  • statistics      – per-option accumulated debt ("how favored was o")
//
//	Each decision d scores every option o with
//
//	  value = statistics[o] + (accents[d] + heterogeneities[d]·randoms[d][o]) / weights[d][o]
//
//	ranks the candidates ascending and picks the first acceptable one. The
//	decision is then settled: the decided cell is debited accents[d]/weights[d][idx]
//	and every positively weighted option is rebated accents[d]/Σweights[d].
//	Heavier options accrue cost more slowly, so they win more often; any
//	temporary luck is paid back through the debt account.
//
// ✨ Key features
//   - arbitrary option type T (generic); options addressed by canonical index
//   - per-decision weight rows: hard exclusions and drifting profiles
//   - deterministic replay: inject a Source or a seed (WithSeed)
//   - pluggable acceptability predicate for domain filtering
//   - two debit conventions, DebitRank and DebitChoice (see DebitMode)
//   - fail-fast sentinel errors; no panics and no logging in library code
//
// ⚙️ Usage
//
//	import "github.com/katalvlaran/statfeed/feed"
//
//	sel, err := feed.New([]string{"alice", "bob", "carol"}, 10,
//	    feed.WithSeed(42),
//	    feed.WithDebitMode(feed.DebitChoice),
//	)
//	if err != nil {
//	    // handle ErrNoOptions / ErrNegativeSize / ErrOptionViolation
//	}
//	choices, err := sel.PopulateChoices()
//
// Performance:
//
//   - Time:   O(size · N log N)
//   - Memory: O(size · N)
//
// See example_test.go for runnable scenarios, and package fairness for
// measuring realized shares against the targets a weight schedule implies.
package feed
