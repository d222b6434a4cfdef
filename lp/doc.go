// Package lp holds the linear-programming collaborator surface: a small
// builder for systems of linear equalities over named non-negative
// variables, and a Solver that returns a terminal status plus per-variable
// values.
//
// The System is deliberately narrow (every decision variable is
// non-negative and every constraint is an equality) because that is the
// exact shape a categorical probability tree compiles to: cell counts,
// aggregates, pair counts and the total are all non-negative, and every
// probability target is a fixed-coefficient equality.
//
// The bundled Simplex solver wraps gonum's LP simplex
// (gonum.org/v1/gonum/optimize/convex/lp). gonum requires the equality
// matrix to have full row rank, while probability-tree systems are
// inherently redundant (e.g. a variable's category shares summing to 1
// restate the total-count row), so Simplex first runs a Gauss–Jordan
// presolve that drops dependent rows and detects outright inconsistency.
//
// Solve is a single blocking attempt: an infeasible or unbounded system is
// a terminal status, never retried, since only changed input can change
// the outcome.
package lp
