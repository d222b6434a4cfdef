package category_test

import (
	"testing"

	"github.com/steed360/Synthetic-Categorical-Data/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairs_ReferenceSpace checks the derived pair set for the
// gender/colour/degree space: C(6,2)=15 combinations minus the three
// same-variable pairs leaves 12 cross-variable pairs.
func TestPairs_ReferenceSpace(t *testing.T) {
	s := threeVarSpace(t)

	pairs := s.Pairs()
	require.Len(t, pairs, 12, "15 combinations minus 3 same-variable pairs")

	set := make(map[category.Pair]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}
	require.Len(t, set, 12, "pairs must be unique")

	// Every cross-variable pair is present.
	for _, want := range []category.Pair{
		category.NewPair("m", "t"), category.NewPair("m", "p"),
		category.NewPair("f", "t"), category.NewPair("f", "p"),
		category.NewPair("m", "e"), category.NewPair("m", "a"),
		category.NewPair("f", "e"), category.NewPair("f", "a"),
		category.NewPair("t", "e"), category.NewPair("t", "a"),
		category.NewPair("p", "e"), category.NewPair("p", "a"),
	} {
		assert.Contains(t, set, want, "missing cross-variable pair %v", want)
	}

	// Same-variable combinations never survive the filter.
	for _, banned := range []category.Pair{
		category.NewPair("m", "f"),
		category.NewPair("t", "p"),
		category.NewPair("e", "a"),
	} {
		assert.NotContains(t, set, banned, "same-variable pair %v must be filtered", banned)
	}
}

// TestPairs_SingleVariable verifies that a one-variable space has no
// cross-variable pairs at all.
func TestPairs_SingleVariable(t *testing.T) {
	s, err := category.NewSpace(category.Variable{Name: "gender", Categories: []string{"m", "f"}})
	require.NoError(t, err)
	assert.Empty(t, s.Pairs(), "no second variable, no pairs")
}

// TestPairs_Deterministic verifies that repeated derivation yields the
// same pairs in the same order.
func TestPairs_Deterministic(t *testing.T) {
	s := threeVarSpace(t)
	assert.Equal(t, s.Pairs(), s.Pairs(), "pair derivation must be stable")
}

// TestPair_Methods exercises the sorted-key invariant and lookups.
func TestPair_Methods(t *testing.T) {
	p := category.NewPair("t", "m")
	assert.Equal(t, category.Pair{A: "m", B: "t"}, p, "pair stores labels sorted")
	assert.Equal(t, "m,t", p.Key())
	assert.True(t, p.Contains("m"))
	assert.False(t, p.Contains("f"))

	other, ok := p.Other("m")
	assert.True(t, ok)
	assert.Equal(t, "t", other)
	_, ok = p.Other("f")
	assert.False(t, ok, "label outside the pair has no partner")
}
