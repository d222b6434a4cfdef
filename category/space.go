package category

import "fmt"

// Space is the validated, immutable variable space: the ordered variable
// declarations plus a label→variable ownership index. Build it once with
// NewSpace and share it freely; all methods are read-only.
type Space struct {
	vars  []Variable
	owner map[string]int // category label → index into vars
}

// NewSpace validates the declarations and builds the space.
// It deep-copies the input so later mutation of the caller's slices cannot
// corrupt the space.
//
// Errors:
//   - ErrNoVariables        — no variables given.
//   - ErrEmptyName          — a variable has an empty name.
//   - ErrNoCategories       — a variable has an empty category list.
//   - ErrEmptyCategory      — a category label is empty.
//   - ErrDuplicateVariable  — two variables share a name.
//   - ErrDuplicateCategory  — a label appears twice anywhere in the space.
//
// Complexity: O(V + C) time and memory, V variables, C total categories.
func NewSpace(vars ...Variable) (*Space, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("NewSpace: %w", ErrNoVariables)
	}

	s := &Space{
		vars:  make([]Variable, 0, len(vars)),
		owner: make(map[string]int),
	}
	names := make(map[string]struct{}, len(vars))
	for i, v := range vars {
		if v.Name == "" {
			return nil, fmt.Errorf("NewSpace: variable #%d: %w", i, ErrEmptyName)
		}
		if _, dup := names[v.Name]; dup {
			return nil, fmt.Errorf("NewSpace: variable %q: %w", v.Name, ErrDuplicateVariable)
		}
		names[v.Name] = struct{}{}
		if len(v.Categories) == 0 {
			return nil, fmt.Errorf("NewSpace: variable %q: %w", v.Name, ErrNoCategories)
		}
		cats := make([]string, len(v.Categories))
		for j, label := range v.Categories {
			if label == "" {
				return nil, fmt.Errorf("NewSpace: variable %q, category #%d: %w", v.Name, j, ErrEmptyCategory)
			}
			if _, dup := s.owner[label]; dup {
				return nil, fmt.Errorf("NewSpace: category %q: %w", label, ErrDuplicateCategory)
			}
			s.owner[label] = i
			cats[j] = label
		}
		s.vars = append(s.vars, Variable{Name: v.Name, Categories: cats})
	}

	return s, nil
}

// Variables returns a copy of the ordered variable declarations.
func (s *Space) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	for i, v := range s.vars {
		cats := make([]string, len(v.Categories))
		copy(cats, v.Categories)
		out[i] = Variable{Name: v.Name, Categories: cats}
	}

	return out
}

// Len returns the number of categorical variables.
func (s *Space) Len() int { return len(s.vars) }

// Has reports whether label is a declared category.
func (s *Space) Has(label string) bool {
	_, ok := s.owner[label]

	return ok
}

// Owner returns the name of the variable that declared label, and false
// when label is unknown.
func (s *Space) Owner(label string) (string, bool) {
	i, ok := s.owner[label]
	if !ok {
		return "", false
	}

	return s.vars[i].Name, true
}

// Categories returns the ordered category labels of the named variable,
// and false when no such variable exists.
func (s *Space) Categories(name string) ([]string, bool) {
	for _, v := range s.vars {
		if v.Name == name {
			out := make([]string, len(v.Categories))
			copy(out, v.Categories)

			return out, true
		}
	}

	return nil, false
}

// SameVariable reports whether two labels belong to one variable. Unknown
// labels are never considered same-variable.
func (s *Space) SameVariable(a, b string) bool {
	ia, oka := s.owner[a]
	ib, okb := s.owner[b]

	return oka && okb && ia == ib
}

// CellCount returns the size of the Cartesian product, i.e. the number of
// combination cells (and LP cell variables) this space induces.
func (s *Space) CellCount() int {
	n := 1
	for _, v := range s.vars {
		n *= len(v.Categories)
	}

	return n
}

// Cells enumerates the full Cartesian product in lexicographic order of
// the declarations: the last variable's categories cycle fastest, exactly
// like an odometer. The order is deterministic and stable, so cell index i
// always denotes the same tuple for a given space.
// Complexity: O(V · Π|categories|) time and memory.
func (s *Space) Cells() []Cell {
	total := s.CellCount()
	cells := make([]Cell, 0, total)
	idx := make([]int, len(s.vars)) // odometer over category indices

	for n := 0; n < total; n++ {
		tuple := make(Cell, len(s.vars))
		for i, v := range s.vars {
			tuple[i] = v.Categories[idx[i]]
		}
		cells = append(cells, tuple)

		// advance the odometer, last position fastest
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(s.vars[i].Categories) {
				break
			}
			idx[i] = 0
		}
	}

	return cells
}
