package lp

import "fmt"

// equation is one assembled equality: Σ terms == rhs.
type equation struct {
	terms Expr
	rhs   float64
}

// System accumulates named non-negative variables and linear equalities,
// then is handed wholesale to a Solver. Build it once; it has exactly one
// writer and is read-only from the solver's point of view.
type System struct {
	names []string
	index map[string]int
	eqs   []equation
	obj   Expr
	sense Sense
}

// NewSystem returns an empty system with a Feasibility objective.
func NewSystem() *System {
	return &System{index: make(map[string]int)}
}

// AddVariable declares a non-negative decision variable.
// Returns ErrEmptyVarName or ErrDuplicateVar on bad input.
// Complexity: O(1) amortized.
func (s *System) AddVariable(name string) error {
	if name == "" {
		return fmt.Errorf("AddVariable: %w", ErrEmptyVarName)
	}
	if _, dup := s.index[name]; dup {
		return fmt.Errorf("AddVariable: %q: %w", name, ErrDuplicateVar)
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)

	return nil
}

// HasVariable reports whether name was declared.
func (s *System) HasVariable(name string) bool {
	_, ok := s.index[name]

	return ok
}

// NumVariables returns the number of declared variables.
func (s *System) NumVariables() int { return len(s.names) }

// NumEqualities returns the number of added equalities.
func (s *System) NumEqualities() int { return len(s.eqs) }

// Variables returns the declared names in declaration order.
func (s *System) Variables() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// AddEquality adds the constraint Σ expr == rhs. The expression is copied;
// the caller may reuse its slice. Every referenced variable must already
// be declared (ErrUnknownVar), and the expression must be non-empty
// (ErrEmptyExpr).
// Complexity: O(len(expr)).
func (s *System) AddEquality(expr Expr, rhs float64) error {
	if len(expr) == 0 {
		return fmt.Errorf("AddEquality: %w", ErrEmptyExpr)
	}
	terms := make(Expr, len(expr))
	for i, t := range expr {
		if _, ok := s.index[t.Var]; !ok {
			return fmt.Errorf("AddEquality: %q: %w", t.Var, ErrUnknownVar)
		}
		terms[i] = t
	}
	s.eqs = append(s.eqs, equation{terms: terms, rhs: rhs})

	return nil
}

// SetObjective installs the objective expression and sense. Under
// Feasibility the expression may be nil; otherwise it must be non-empty
// and reference declared variables only.
func (s *System) SetObjective(expr Expr, sense Sense) error {
	if sense == Feasibility {
		s.obj, s.sense = nil, Feasibility

		return nil
	}
	if len(expr) == 0 {
		return fmt.Errorf("SetObjective: %w", ErrEmptyExpr)
	}
	terms := make(Expr, len(expr))
	for i, t := range expr {
		if _, ok := s.index[t.Var]; !ok {
			return fmt.Errorf("SetObjective: %q: %w", t.Var, ErrUnknownVar)
		}
		terms[i] = t
	}
	s.obj, s.sense = terms, sense

	return nil
}

// columnOf returns the dense column index of a declared variable.
func (s *System) columnOf(name string) int { return s.index[name] }
