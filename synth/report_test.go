package synth_test

import (
	"testing"

	"github.com/steed360/Synthetic-Categorical-Data/category"
	"github.com/steed360/Synthetic-Categorical-Data/lp"
	"github.com/steed360/Synthetic-Categorical-Data/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_EmptyCondition verifies a conditional on an empty category
// passes vacuously: the equality pair == p·agg holds as 0 == 0, and no
// ratio can be formed.
func TestValidate_EmptyCondition(t *testing.T) {
	space, err := category.NewSpace(
		category.Variable{Name: "gender", Categories: []string{"m", "f"}},
		category.Variable{Name: "colour", Categories: []string{"t", "p"}},
	)
	require.NoError(t, err)
	m, err := synth.NewModel(space, 50, nil)
	require.NoError(t, err)

	require.NoError(t, m.Absolute("gender", "m", 1.0))
	require.NoError(t, m.Absolute("gender", "f", 0.0))
	require.NoError(t, m.Conditional("t", "m", 0.5))
	require.NoError(t, m.Conditional("p", "m", 0.5))
	require.NoError(t, m.Conditional("t", "f", 0.3)) // conditions on an empty aggregate
	require.NoError(t, m.Conditional("p", "f", 0.7))

	res, err := m.Solve(lp.Simplex{})
	require.NoError(t, err)

	rep := res.Validate()
	assert.True(t, rep.OK(), "empty-condition conditionals are vacuous: %v", rep.Failed())
	assert.Nil(t, rep.Failed(), "no failing checks expected")
	assert.InDelta(t, 50, res.Aggregates["m"], delta)
	assert.InDelta(t, 0, res.Aggregates["f"], delta)
}

// TestValidate_CheckInventory verifies the report covers every declared
// constraint and every structural invariant class.
func TestValidate_CheckInventory(t *testing.T) {
	m := referenceModel(t, false)
	res, err := m.Solve(lp.Simplex{})
	require.NoError(t, err)

	rep := res.Validate()
	byKind := make(map[synth.CheckKind]int)
	for _, c := range rep.Checks {
		byKind[c.Kind]++
	}
	assert.Equal(t, 1, byKind[synth.CheckCellSign])
	assert.Equal(t, 1, byKind[synth.CheckTotal])
	assert.Equal(t, 1, byKind[synth.CheckCellSum])
	assert.Equal(t, 1, byKind[synth.CheckAggregateLink])
	assert.Equal(t, 3, byKind[synth.CheckAggregateSum], "one per variable")
	assert.Equal(t, 1, byKind[synth.CheckPairLink])
	assert.Equal(t, 1, byKind[synth.CheckPairBound])
	assert.Equal(t, 2, byKind[synth.CheckAbsolute], "one per absolute declaration")
	assert.Equal(t, 10, byKind[synth.CheckConditional], "one per conditional declaration")
}

// TestCheck_String pins the diagnostic rendering.
func TestCheck_String(t *testing.T) {
	pass := synth.Check{Kind: synth.CheckConditional, Subject: "P(t|m)", Target: 0.5, Realized: 0.5, Pass: true}
	assert.Equal(t, "conditional P(t|m): target 0.5, realized 0.5 — pass", pass.String())

	fail := synth.Check{Kind: synth.CheckAbsolute, Subject: "P(m)", Target: 0.4, Realized: 0.3, Pass: false}
	assert.Equal(t, "absolute P(m): target 0.4, realized 0.3 — FAIL", fail.String())
}
