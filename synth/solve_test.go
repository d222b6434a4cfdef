package synth_test

import (
	"errors"
	"testing"

	"github.com/steed360/Synthetic-Categorical-Data/lp"
	"github.com/steed360/Synthetic-Categorical-Data/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

// referenceModel declares the worked probability tree: gender is the
// absolute root, colour and degree hang off it, and colour is additionally
// conditioned on degree. The engineer→colour chain (t|e, p|e) is
// consistent with the gender→colour chain; the artist→colour chain
// (t|a=0.1, p|a=0.9) is not: the gender chain forces a t-share of 44
// while the degree chain forces 26, so withArtistColour=true yields an
// infeasible system.
func referenceModel(t *testing.T, withArtistColour bool) *synth.Model {
	t.Helper()
	m, err := synth.NewModel(referenceSpace(t), 100, nil)
	require.NoError(t, err)

	require.NoError(t, m.Absolute("gender", "m", 0.4))
	require.NoError(t, m.Absolute("gender", "f", 0.6))

	for _, c := range []struct {
		target, condition string
		p                 float64
	}{
		{"t", "m", 0.5}, {"p", "m", 0.5},
		{"e", "m", 0.2}, {"a", "m", 0.8},
		{"t", "f", 0.4}, {"p", "f", 0.6},
		{"e", "f", 0.4}, {"a", "f", 0.6},
		{"t", "e", 0.6}, {"p", "e", 0.4},
	} {
		require.NoError(t, m.Conditional(c.target, c.condition, c.p))
	}
	if withArtistColour {
		require.NoError(t, m.Conditional("t", "a", 0.1))
		require.NoError(t, m.Conditional("p", "a", 0.9))
	}

	return m
}

// TestSolve_ReferenceTree solves the consistent reference tree and checks
// the published aggregates plus every structural invariant. Cell values
// are checked only through realized ratios: the system keeps one degree
// of freedom, so exact cell equality would overfit one particular vertex.
func TestSolve_ReferenceTree(t *testing.T) {
	m := referenceModel(t, false)

	res, err := m.Solve(lp.Simplex{})
	require.NoError(t, err)
	require.Equal(t, lp.StatusSolved, res.Status)

	assert.InDelta(t, 100, res.Total, delta, "N pinned to the sample size")
	assert.InDelta(t, 40, res.Aggregates["m"], delta, "gender(m) == 40")
	assert.InDelta(t, 60, res.Aggregates["f"], delta, "gender(f) == 60")
	assert.InDelta(t, 32, res.Aggregates["e"], delta, "degree(e) == 0.2*40 + 0.4*60")
	assert.InDelta(t, 68, res.Aggregates["a"], delta, "degree(a) == 0.8*40 + 0.6*60")
	assert.InDelta(t, 44, res.Aggregates["t"], delta, "colour(t) == 0.5*40 + 0.4*60")
	assert.InDelta(t, 56, res.Aggregates["p"], delta, "colour(p) == 0.5*40 + 0.6*60")

	require.Len(t, res.Cells, 8)
	sum := 0.0
	for _, cc := range res.Cells {
		assert.GreaterOrEqual(t, cc.Count, -delta, "cell %s must be non-negative", cc.Cell.Key())
		sum += cc.Count
	}
	assert.InDelta(t, 100, sum, delta, "cells sum to N")

	rep := res.Validate()
	assert.True(t, rep.OK(), "all validation checks must pass: %v", rep.Failed())
	for _, c := range rep.Checks {
		assert.True(t, c.Pass, "check failed: %s", c)
	}
}

// TestSolve_Idempotent verifies that solving the same model twice yields
// identical pass/fail outcomes.
func TestSolve_Idempotent(t *testing.T) {
	m := referenceModel(t, false)

	first, err := m.Solve(lp.Simplex{})
	require.NoError(t, err)
	second, err := m.Solve(lp.Simplex{})
	require.NoError(t, err)

	repA, repB := first.Validate(), second.Validate()
	require.Len(t, repB.Checks, len(repA.Checks))
	for i := range repA.Checks {
		assert.Equal(t, repA.Checks[i].Pass, repB.Checks[i].Pass,
			"check %s changed verdict between solves", repA.Checks[i].Subject)
	}
}

// TestSolve_OverdeterminedInfeasible verifies the full reference input
// (colour conditioned inconsistently on both gender and degree) is
// reported infeasible, never "solved" with violated invariants.
func TestSolve_OverdeterminedInfeasible(t *testing.T) {
	m := referenceModel(t, true)

	res, err := m.Solve(lp.Simplex{})
	assert.ErrorIs(t, err, synth.ErrInfeasible)
	assert.Nil(t, res, "no result on infeasibility")
}

// TestSolve_SharesExceedOne verifies absolute probabilities summing past 1
// across one variable's categories are reported infeasible.
func TestSolve_SharesExceedOne(t *testing.T) {
	m, err := synth.NewModel(referenceSpace(t), 100, nil)
	require.NoError(t, err)
	require.NoError(t, m.Absolute("gender", "m", 0.6))
	require.NoError(t, m.Absolute("gender", "f", 0.6))
	for _, c := range []struct {
		target, condition string
		p                 float64
	}{
		{"t", "m", 0.5}, {"p", "m", 0.5}, {"t", "f", 0.5}, {"p", "f", 0.5},
		{"e", "m", 0.5}, {"a", "m", 0.5}, {"e", "f", 0.5}, {"a", "f", 0.5},
	} {
		require.NoError(t, m.Conditional(c.target, c.condition, c.p))
	}

	_, err = m.Solve(lp.Simplex{})
	assert.ErrorIs(t, err, synth.ErrInfeasible)
}

// TestSolve_Count exercises the key-based cell lookup.
func TestSolve_Count(t *testing.T) {
	m := referenceModel(t, false)
	res, err := m.Solve(lp.Simplex{})
	require.NoError(t, err)

	_, ok := res.Count("m,t,e")
	assert.True(t, ok, "every product tuple is present")
	_, ok = res.Count("nope")
	assert.False(t, ok)
}

// failingSolver stubs a solver breakdown.
type failingSolver struct{ err error }

func (f failingSolver) Solve(*lp.System) (*lp.Solution, error) { return nil, f.err }

// TestSolve_SolverFailure verifies solver breakdown surfaces as
// ErrSolveFailed with the cause attached.
func TestSolve_SolverFailure(t *testing.T) {
	m := referenceModel(t, false)

	_, err := m.Solve(failingSolver{err: errors.New("numerical breakdown")})
	require.Error(t, err)
	assert.ErrorIs(t, err, synth.ErrSolveFailed)
	assert.Contains(t, err.Error(), "numerical breakdown", "cause must be preserved")
}
