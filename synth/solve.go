package synth

import (
	"fmt"

	"github.com/steed360/Synthetic-Categorical-Data/category"
	"github.com/steed360/Synthetic-Categorical-Data/lp"
)

// CellCount pairs one combination cell with its solved count.
type CellCount struct {
	Cell  category.Cell
	Count float64
}

// Result is the solved contingency table, read back once from the solver
// and immutable afterwards. Cells follow the space's Cartesian order.
type Result struct {
	Status     lp.Status
	Total      float64
	Cells      []CellCount
	Aggregates map[string]float64
	Pairs      map[category.Pair]float64

	model *Model
}

// Space returns the categorical space the result was solved over.
func (r *Result) Space() *category.Space { return r.model.space }

// Count returns the solved count of the cell with the given key (see
// category.Cell.Key), and false when no such cell exists.
func (r *Result) Count(key string) (float64, bool) {
	for _, cc := range r.Cells {
		if cc.Cell.Key() == key {
			return cc.Count, true
		}
	}

	return 0, false
}

// Solve assembles the system and submits it to the solver exactly once.
//
// Terminal outcomes:
//   - solved     → a Result with every decision variable's value.
//   - infeasible → ErrInfeasible; the declaration must be revised, a
//     retry cannot change the verdict.
//   - unbounded / solver breakdown → ErrSolveFailed wrapping the detail.
//
// Assembly-time validation errors (ErrIncompleteTree et al.) pass through
// unchanged.
func (m *Model) Solve(solver lp.Solver) (*Result, error) {
	sys, err := m.Assemble()
	if err != nil {
		return nil, err
	}

	sol, err := solver.Solve(sys)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w: %v", ErrSolveFailed, err)
	}
	switch sol.Status {
	case lp.StatusSolved:
		// fall through to extraction
	case lp.StatusInfeasible:
		return nil, fmt.Errorf("Solve: %w", ErrInfeasible)
	default:
		return nil, fmt.Errorf("Solve: solver reported %s: %w", sol.Status, ErrSolveFailed)
	}

	res := &Result{
		Status:     sol.Status,
		Total:      sol.Values[totalVar],
		Aggregates: make(map[string]float64),
		Pairs:      make(map[category.Pair]float64),
		model:      m,
	}
	for _, c := range m.space.Cells() {
		res.Cells = append(res.Cells, CellCount{Cell: c, Count: sol.Values[cellVar(c)]})
	}
	for _, v := range m.space.Variables() {
		for _, cat := range v.Categories {
			res.Aggregates[cat] = sol.Values[aggVar(cat)]
		}
	}
	for _, p := range m.space.Pairs() {
		res.Pairs[p] = sol.Values[pairVar(p)]
	}

	return res, nil
}
