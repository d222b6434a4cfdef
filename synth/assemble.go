package synth

import (
	"github.com/steed360/Synthetic-Categorical-Data/category"
	"github.com/steed360/Synthetic-Categorical-Data/lp"
)

// totalVar is the LP name of the total-count variable N.
const totalVar = "N"

// cellVar names the decision variable of one combination cell, e.g.
// "cell(m,t,e)".
func cellVar(c category.Cell) string { return "cell(" + c.Key() + ")" }

// aggVar names the aggregate of one category, e.g. "agg(m)". Labels are
// unique across the space, so the bare label suffices.
func aggVar(label string) string { return "agg(" + label + ")" }

// pairVar names the joint count of one cross-variable pair, e.g.
// "pair(m,t)".
func pairVar(p category.Pair) string { return "pair(" + p.Key() + ")" }

// Assemble wires the declarations into the full equality system:
//
//	Σ cells                    == N
//	N                          == sample size
//	Σ cells containing c       == agg(c)        for every category c
//	Σ cells containing a and b == pair(a,b)     for every derived pair
//	agg(c)                     == p · N         per absolute declaration
//	pair(t,c)                  == p · agg(c)    per conditional declaration
//
// with every variable non-negative and a feasibility objective: any
// assignment satisfying the equalities is an acceptable table. Constraints
// are additive, so declaration order never changes the feasible region.
//
// When Options.ValidateTree is set (the default), an incomplete tree is
// rejected here with ErrIncompleteTree before any LP work.
//
// Complexity: O(cells · (variables + pairs)) time and memory.
func (m *Model) Assemble() (*lp.System, error) {
	if m.opts.ValidateTree {
		if err := m.validateTree(); err != nil {
			return nil, err
		}
	}

	sys := lp.NewSystem()
	cells := m.space.Cells()
	pairs := m.space.Pairs()

	if err := sys.AddVariable(totalVar); err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := sys.AddVariable(cellVar(c)); err != nil {
			return nil, err
		}
	}
	for _, v := range m.space.Variables() {
		for _, cat := range v.Categories {
			if err := sys.AddVariable(aggVar(cat)); err != nil {
				return nil, err
			}
		}
	}
	for _, p := range pairs {
		if err := sys.AddVariable(pairVar(p)); err != nil {
			return nil, err
		}
	}

	// N == Σ cells.
	sum := make(lp.Expr, 0, len(cells)+1)
	for _, c := range cells {
		sum = append(sum, lp.Term{Var: cellVar(c), Coeff: 1})
	}
	sum = append(sum, lp.Term{Var: totalVar, Coeff: -1})
	if err := sys.AddEquality(sum, 0); err != nil {
		return nil, err
	}

	// N == declared sample size.
	if err := sys.AddEquality(lp.Expr{{Var: totalVar, Coeff: 1}}, m.sampleSize); err != nil {
		return nil, err
	}

	// agg(c) == Σ cells containing c.
	for _, v := range m.space.Variables() {
		for _, cat := range v.Categories {
			expr := make(lp.Expr, 0, len(cells)/2+1)
			for _, c := range cells {
				if c.Contains(cat) {
					expr = append(expr, lp.Term{Var: cellVar(c), Coeff: 1})
				}
			}
			expr = append(expr, lp.Term{Var: aggVar(cat), Coeff: -1})
			if err := sys.AddEquality(expr, 0); err != nil {
				return nil, err
			}
		}
	}

	// pair(a,b) == Σ cells containing both a and b.
	for _, p := range pairs {
		expr := make(lp.Expr, 0, len(cells)/4+1)
		for _, c := range cells {
			if c.Contains(p.A) && c.Contains(p.B) {
				expr = append(expr, lp.Term{Var: cellVar(c), Coeff: 1})
			}
		}
		expr = append(expr, lp.Term{Var: pairVar(p), Coeff: -1})
		if err := sys.AddEquality(expr, 0); err != nil {
			return nil, err
		}
	}

	// agg(c) == p · N.
	for _, a := range m.absolutes {
		expr := lp.Expr{
			{Var: aggVar(a.Category), Coeff: 1},
			{Var: totalVar, Coeff: -a.P},
		}
		if err := sys.AddEquality(expr, 0); err != nil {
			return nil, err
		}
	}

	// pair(t,c) == p · agg(c).
	for _, c := range m.conditionals {
		expr := lp.Expr{
			{Var: pairVar(category.NewPair(c.Target, c.Condition)), Coeff: 1},
			{Var: aggVar(c.Condition), Coeff: -c.P},
		}
		if err := sys.AddEquality(expr, 0); err != nil {
			return nil, err
		}
	}

	if err := sys.SetObjective(nil, lp.Feasibility); err != nil {
		return nil, err
	}

	return sys, nil
}
