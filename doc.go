// Package statfeed is a small toolkit for weight-proportional selection
// with fairness correction: produce choice sequences whose long-run shares
// track configured weights, then measure how close a sequence actually got.
//
// 🚀 What is statfeed?
//
//	A deterministic, in-memory scheduling core organized in two subpackages:
//		• feed/     — the Selector engine: per-decision scheduling values,
//		              ranked candidates, debit/rebate settlement of fairness debt
//		• fairness/ — realized shares, schedule targets, proportionality gap
//		              and debt-spread diagnostics on top of gonum
//
// ✨ Why statfeed?
//
//   - Reproducible – every random draw flows through an injectable Source,
//     so a seed replays a run bit-for-bit
//   - Tunable – per-decision weight rows, hard exclusions (weight 0),
//     perturbation and debt scales per decision
//   - Honest about errors – sentinel errors only; no panics in library code
//   - Pure Go – no cgo, no services, no hidden global state
//
// Quick taste:
//
//	sel, _ := feed.New([]string{"a", "b", "c"}, 3, feed.WithSeed(7))
//	choices, _ := sel.PopulateChoices()
//
// Dive into each subpackage's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/statfeed
package statfeed
