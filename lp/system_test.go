package lp_test

import (
	"testing"

	"github.com/steed360/Synthetic-Categorical-Data/lp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSystem_AddVariable covers declaration bookkeeping and its errors.
func TestSystem_AddVariable(t *testing.T) {
	sys := lp.NewSystem()

	require.NoError(t, sys.AddVariable("x"))
	require.NoError(t, sys.AddVariable("y"))
	assert.Equal(t, 2, sys.NumVariables())
	assert.Equal(t, []string{"x", "y"}, sys.Variables(), "declaration order is preserved")
	assert.True(t, sys.HasVariable("x"))
	assert.False(t, sys.HasVariable("z"))

	assert.ErrorIs(t, sys.AddVariable("x"), lp.ErrDuplicateVar, "re-declaration must error")
	assert.ErrorIs(t, sys.AddVariable(""), lp.ErrEmptyVarName, "empty name must error")
}

// TestSystem_AddEquality covers expression validation.
func TestSystem_AddEquality(t *testing.T) {
	sys := lp.NewSystem()
	require.NoError(t, sys.AddVariable("x"))

	assert.ErrorIs(t, sys.AddEquality(nil, 1), lp.ErrEmptyExpr, "empty expression must error")
	err := sys.AddEquality(lp.Expr{{Var: "ghost", Coeff: 1}}, 1)
	assert.ErrorIs(t, err, lp.ErrUnknownVar, "undeclared variable must error")

	require.NoError(t, sys.AddEquality(lp.Expr{{Var: "x", Coeff: 1}}, 5))
	assert.Equal(t, 1, sys.NumEqualities())
}

// TestSystem_SetObjective covers objective validation per sense.
func TestSystem_SetObjective(t *testing.T) {
	sys := lp.NewSystem()
	require.NoError(t, sys.AddVariable("x"))

	assert.NoError(t, sys.SetObjective(nil, lp.Feasibility), "feasibility needs no expression")
	assert.ErrorIs(t, sys.SetObjective(nil, lp.Minimize), lp.ErrEmptyExpr)
	err := sys.SetObjective(lp.Expr{{Var: "ghost", Coeff: 1}}, lp.Maximize)
	assert.ErrorIs(t, err, lp.ErrUnknownVar)
	assert.NoError(t, sys.SetObjective(lp.Expr{{Var: "x", Coeff: 1}}, lp.Maximize))
}

// TestStatus_String pins the status names used in reports.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "solved", lp.StatusSolved.String())
	assert.Equal(t, "infeasible", lp.StatusInfeasible.String())
	assert.Equal(t, "unbounded", lp.StatusUnbounded.String())
	assert.Equal(t, "failed", lp.StatusFailed.String())
}
