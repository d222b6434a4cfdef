// Package synth assembles a declared probability tree into a linear
// equality system, invokes an LP solver on it, and validates the solved
// contingency table against the declaration.
//
// 🚀 How it works
//
//	Every combination cell of the categorical space becomes a non-negative
//	LP variable, alongside one aggregate variable per category, one pair
//	variable per cross-variable category pair, and a total-count variable
//	N. Linkage equalities tie aggregates and pairs to their matching cell
//	sums, N is pinned to the sample size, and each declared probability
//	becomes one fixed-coefficient equality:
//
//	  absolute    P(c)   = p  →  agg(c)     == p · N
//	  conditional P(t|c) = p  →  pair(t,c)  == p · agg(c)
//
//	A conditional probability is a ratio, non-linear in general, but
//	here the conditioning count agg(c) is itself a decision variable and p
//	is a fixed coefficient, so the ratio collapses into one linear
//	equality.
//
// The declaration should form a tree: absolute shares for exactly one
// root variable, conditionals hanging every other category off it (or off
// each other). Model validates that shape by default (Options.ValidateTree)
// and reports ErrIncompleteTree with the offending variable or category;
// consistency of an over-determined tree is left to the solver, which
// reports ErrInfeasible.
//
// ⚙️ Usage:
//
//	space, _ := category.NewSpace(
//	  category.Variable{Name: "gender", Categories: []string{"m", "f"}},
//	  category.Variable{Name: "colour", Categories: []string{"t", "p"}},
//	)
//	m, _ := synth.NewModel(space, 100, nil)
//	_ = m.Absolute("gender", "m", 0.4)
//	_ = m.Absolute("gender", "f", 0.6)
//	_ = m.Conditional("t", "m", 0.5)
//	_ = m.Conditional("p", "m", 0.5)
//	_ = m.Conditional("t", "f", 0.3)
//	_ = m.Conditional("p", "f", 0.7)
//
//	res, err := m.Solve(lp.Simplex{})
//	// errors.Is(err, synth.ErrInfeasible) → revise the declaration
//	report := res.Validate()
//	// report.OK(), report.Failed(), res.Cells
//
// Solving is one blocking attempt; an infeasible declaration is never
// retried, because only changed input can change the outcome. Validation
// compares realized ratios within a tolerance rather than exact cell
// values: the system may admit several optima and all of them are valid
// answers.
package synth
