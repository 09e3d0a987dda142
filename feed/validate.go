// Package feed - boundary validation shared by New and the SetX methods.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(size·N) worst case; no hidden allocations beyond the documented copies.
package feed

import (
	"fmt"
	"math"
)

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// validateMatrix checks that m holds exactly rows×cols finite cells.
// Negative cells are rejected only when nonNegative is set (weights);
// signed overrides (randoms) pass with any finite value.
// The label names the override inside wrapped sentinel errors.
//
// Complexity: O(rows·cols).
func validateMatrix(m [][]float64, rows, cols int, nonNegative bool, label string) error {
	if len(m) != rows {
		return fmt.Errorf("%w: %s has %d rows, want %d", ErrDimensionMismatch, label, len(m), rows)
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%w: %s row %d has %d cells, want %d", ErrDimensionMismatch, label, i, len(row), cols)
		}
		for j, v := range row {
			if isNonFinite(v) {
				return fmt.Errorf("%w: %s[%d][%d]=%g", ErrNonFinite, label, i, j, v)
			}
			if nonNegative && v < 0 {
				return fmt.Errorf("%w: %s[%d][%d]=%g", ErrNegativeWeight, label, i, j, v)
			}
		}
	}

	return nil
}

// validateVector checks that v holds exactly n finite, non-negative entries.
//
// Complexity: O(n).
func validateVector(v []float64, n int, label string) error {
	if len(v) != n {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrDimensionMismatch, label, len(v), n)
	}
	for i, x := range v {
		if isNonFinite(x) {
			return fmt.Errorf("%w: %s[%d]=%g", ErrNonFinite, label, i, x)
		}
		if x < 0 {
			return fmt.Errorf("%w: %s[%d]=%g", ErrNegativeCoefficient, label, i, x)
		}
	}

	return nil
}

// cloneMatrix deep-copies m so the selector never aliases caller memory.
func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// cloneVector copies v for the same aliasing reason.
func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
