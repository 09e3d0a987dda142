package feed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateMatrix_Shape verifies row and cell count enforcement.
func TestValidateMatrix_Shape(t *testing.T) {
	cases := []struct {
		name string
		m    [][]float64
	}{
		{"nil matrix", nil},
		{"too few rows", [][]float64{{1, 1}}},
		{"too many rows", [][]float64{{1, 1}, {1, 1}, {1, 1}}},
		{"ragged row", [][]float64{{1, 1}, {1}}},
		{"wide row", [][]float64{{1, 1}, {1, 1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validateMatrix(tc.m, 2, 2, false, "randoms"), ErrDimensionMismatch)
		})
	}
}

// TestValidateMatrix_Values verifies the finite and sign rules.
func TestValidateMatrix_Values(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	assert.ErrorIs(t, validateMatrix([][]float64{{nan, 1}}, 1, 2, false, "randoms"), ErrNonFinite)
	assert.ErrorIs(t, validateMatrix([][]float64{{1, inf}}, 1, 2, false, "randoms"), ErrNonFinite)
	assert.ErrorIs(t, validateMatrix([][]float64{{1, -inf}}, 1, 2, false, "randoms"), ErrNonFinite)

	// Negative cells: rejected for weights, accepted for signed overrides.
	assert.ErrorIs(t, validateMatrix([][]float64{{-0.5, 1}}, 1, 2, true, "weights"), ErrNegativeWeight)
	assert.NoError(t, validateMatrix([][]float64{{-0.5, 1}}, 1, 2, false, "randoms"))

	// Zero cells are always legal.
	assert.NoError(t, validateMatrix([][]float64{{0, 1}}, 1, 2, true, "weights"))
}

// TestValidateVector_Rules verifies length, finiteness and sign enforcement.
func TestValidateVector_Rules(t *testing.T) {
	assert.ErrorIs(t, validateVector(nil, 2, "accents"), ErrDimensionMismatch)
	assert.ErrorIs(t, validateVector([]float64{1}, 2, "accents"), ErrDimensionMismatch)
	assert.ErrorIs(t, validateVector([]float64{1, math.NaN()}, 2, "accents"), ErrNonFinite)
	assert.ErrorIs(t, validateVector([]float64{1, -0.1}, 2, "accents"), ErrNegativeCoefficient)
	assert.NoError(t, validateVector([]float64{0, 0.1}, 2, "accents"))
}

// TestCloneMatrix_Decoupled verifies that clones share no memory with the source.
func TestCloneMatrix_Decoupled(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	dst := cloneMatrix(src)
	require.Equal(t, src, dst)

	src[0][0] = 99
	assert.Equal(t, 1.0, dst[0][0], "clone must not alias source rows")
}

// TestIsNonFinite covers the three non-finite shapes and a plain value.
func TestIsNonFinite(t *testing.T) {
	assert.True(t, isNonFinite(math.NaN()))
	assert.True(t, isNonFinite(math.Inf(1)))
	assert.True(t, isNonFinite(math.Inf(-1)))
	assert.False(t, isNonFinite(0))
}
