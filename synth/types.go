// Package synth defines model options, declaration records and sentinel
// errors.
package synth

import "errors"

// Sentinel errors. Branch with errors.Is; the wrapped message carries the
// offending declaration.
var (
	// ErrNilSpace indicates NewModel received a nil space.
	ErrNilSpace = errors.New("synth: space must be non-nil")
	// ErrBadSampleSize indicates a non-positive or non-finite sample size.
	ErrBadSampleSize = errors.New("synth: sample size must be positive and finite")
	// ErrUnknownVariable indicates a constraint references an undeclared variable.
	ErrUnknownVariable = errors.New("synth: unknown variable")
	// ErrUnknownCategory indicates a constraint references an undeclared category.
	ErrUnknownCategory = errors.New("synth: unknown category")
	// ErrCategoryMismatch indicates the category exists but belongs to a
	// different variable than the one named.
	ErrCategoryMismatch = errors.New("synth: category does not belong to variable")
	// ErrSameVariable indicates a conditional whose target and condition
	// come from one variable; their joint count is zero by construction.
	ErrSameVariable = errors.New("synth: conditional target and condition share one variable")
	// ErrBadProbability indicates a probability outside [0,1].
	ErrBadProbability = errors.New("synth: probability must lie in [0,1]")
	// ErrIncompleteTree indicates the declaration does not form a rooted
	// probability tree (see Options.ValidateTree).
	ErrIncompleteTree = errors.New("synth: probability tree is incomplete")
	// ErrInfeasible indicates the declared constraints admit no
	// non-negative solution. Retrying cannot help; revise the declaration.
	ErrInfeasible = errors.New("synth: declared constraints admit no non-negative solution")
	// ErrSolveFailed indicates the external solver broke down or returned
	// an unexpected terminal status.
	ErrSolveFailed = errors.New("synth: solver failed")
)

// DefaultTolerance is the post-solve validation tolerance: LP equalities
// are exact up to solver floating-point precision, so 1e-6 leaves ample
// headroom.
const DefaultTolerance = 1e-6

// Options tunes model behavior.
//   - Tolerance: validation tolerance; 0 means DefaultTolerance.
//     Probability checks use it as-is; count-valued checks scale it by the
//     sample size.
//   - ValidateTree: when true, Assemble rejects declarations that do not
//     form a rooted probability tree instead of deferring the problem to
//     solver-detected infeasibility.
type Options struct {
	Tolerance    float64
	ValidateTree bool
}

// DefaultOptions returns the recommended settings: DefaultTolerance and
// tree validation on.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, ValidateTree: true}
}

// AbsoluteTarget records one declared absolute constraint:
// P(Category) == P, i.e. agg(Category) == P·N.
type AbsoluteTarget struct {
	Variable string
	Category string
	P        float64
}

// ConditionalTarget records one declared conditional constraint:
// P(Target | Condition) == P, i.e. pair(Target,Condition) == P·agg(Condition).
type ConditionalTarget struct {
	Target    string
	Condition string
	P         float64
}
