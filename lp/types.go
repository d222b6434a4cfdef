// Package lp defines the system/solver types and sentinel errors.
package lp

import "errors"

// Sentinel errors for system construction and solving.
var (
	// ErrEmptyVarName indicates an empty variable name.
	ErrEmptyVarName = errors.New("lp: variable name must be non-empty")
	// ErrDuplicateVar indicates a variable was declared twice.
	ErrDuplicateVar = errors.New("lp: duplicate variable")
	// ErrUnknownVar indicates an expression references an undeclared variable.
	ErrUnknownVar = errors.New("lp: unknown variable")
	// ErrEmptyExpr indicates an equality or objective without any terms.
	ErrEmptyExpr = errors.New("lp: expression must have at least one term")
	// ErrNoVariables indicates a solve attempt on a system without variables.
	ErrNoVariables = errors.New("lp: system has no variables")
	// ErrSolver wraps an unexpected failure inside the external solver
	// (numerical breakdown, singular basis). Infeasible and unbounded are
	// NOT errors of this kind; they are terminal statuses on the Solution.
	ErrSolver = errors.New("lp: solver failure")
)

// Term is one coefficient·variable product inside a linear expression.
type Term struct {
	Var   string
	Coeff float64
}

// Expr is a linear expression, the sum of its terms. Repeating a variable
// is allowed; coefficients accumulate.
type Expr []Term

// Sense selects what the solver optimizes.
type Sense int

const (
	// Feasibility asks only for some assignment satisfying all equalities;
	// the objective is ignored (constant zero).
	Feasibility Sense = iota
	// Minimize minimizes the objective expression.
	Minimize
	// Maximize maximizes the objective expression.
	Maximize
)

// Status is the terminal outcome of a solve attempt.
type Status int

const (
	// StatusSolved means a feasible (and, under Minimize/Maximize, optimal)
	// assignment was found.
	StatusSolved Status = iota
	// StatusInfeasible means the equalities admit no non-negative solution.
	StatusInfeasible
	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded
	// StatusFailed means the solver itself broke down.
	StatusFailed
)

// String implements fmt.Stringer for diagnostics and reports.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Solution carries the terminal status and, when solved, a value for every
// declared variable plus the realized objective.
type Solution struct {
	Status    Status
	Values    map[string]float64
	Objective float64
}

// Solver is the opaque solve capability: one blocking attempt over an
// assembled system. Implementations return a non-nil error only for
// solver breakdown (wrapping ErrSolver); infeasible and unbounded systems
// are reported through Solution.Status with a nil error.
type Solver interface {
	Solve(sys *System) (*Solution, error)
}
