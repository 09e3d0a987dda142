// Package fairness measures how fair a produced choice sequence actually is.
//
// The feed engine promises that long-run selection shares track configured
// weights (under feed.DebitChoice). This package turns that promise into
// numbers:
//
//	counts, _ := fairness.Counts(choices, options)    // picks per option
//	shares, _ := fairness.Shares(choices, options)    // realized share per option
//	targets, _ := fairness.Targets(sel.Weights())     // share the schedule implies
//	gap, _ := fairness.Gap(shares, targets)           // L∞ distance between them
//	width := fairness.Spread(sel.Statistics())        // max−min fairness debt
//	sigma := fairness.Imbalance(sel.Statistics())     // population std. dev. of debt
//
// A selector whose debts self-correct keeps Spread bounded no matter how
// long the run; a drifting Spread means some option is being systematically
// favored.
//
// All functions are pure and deterministic; failures are sentinel errors.
package fairness
