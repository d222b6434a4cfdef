// Package category defines core types and sentinel errors for the
// categorical variable space.
package category

import (
	"errors"
	"strings"
)

// Sentinel errors for space construction and lookups.
var (
	// ErrNoVariables indicates NewSpace was called without any variables.
	ErrNoVariables = errors.New("category: at least one variable is required")
	// ErrEmptyName indicates a variable with an empty name.
	ErrEmptyName = errors.New("category: variable name must be non-empty")
	// ErrNoCategories indicates a variable declared no categories.
	ErrNoCategories = errors.New("category: variable must declare at least one category")
	// ErrEmptyCategory indicates an empty category label.
	ErrEmptyCategory = errors.New("category: category label must be non-empty")
	// ErrDuplicateVariable indicates two variables share a name.
	ErrDuplicateVariable = errors.New("category: duplicate variable name")
	// ErrDuplicateCategory indicates a category label appears twice anywhere
	// in the space. Labels key aggregates and pairs, so they must be unique
	// across variables, not just within one.
	ErrDuplicateCategory = errors.New("category: duplicate category label")
	// ErrUnknownCategory indicates a label that belongs to no variable.
	ErrUnknownCategory = errors.New("category: unknown category label")
)

// keySep joins labels in Cell and Pair keys. It never appears in labels in
// practice; keys are for variable naming and map lookups, not parsing.
const keySep = ","

// Variable declares one categorical variable: a name plus its ordered,
// mutually exclusive category labels. Declarations are copied into the
// Space at construction time and never mutated afterwards.
type Variable struct {
	Name       string
	Categories []string
}

// Cell is one element of the Cartesian product across all variables:
// an ordered tuple assigning exactly one category label per variable,
// in variable declaration order.
type Cell []string

// Contains reports whether the cell's tuple includes label.
// Complexity: O(len(c)).
func (c Cell) Contains(label string) bool {
	for _, l := range c {
		if l == label {
			return true
		}
	}

	return false
}

// Key returns the canonical comma-joined key of the tuple, e.g. "m,t,e".
func (c Cell) Key() string { return strings.Join(c, keySep) }

// Pair is an unordered pair of category labels from two distinct
// variables, stored sorted so that equal pairs compare equal and map keys
// deduplicate naturally.
type Pair struct {
	A, B string // invariant: A < B
}

// NewPair returns the sorted pair of a and b.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Contains reports whether label is one of the pair's two labels.
func (p Pair) Contains(label string) bool { return p.A == label || p.B == label }

// Other returns the pair's second label given one of them, and false when
// label is not part of the pair.
func (p Pair) Other(label string) (string, bool) {
	switch label {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	default:
		return "", false
	}
}

// Key returns the canonical sorted key, e.g. "m,t".
func (p Pair) Key() string { return p.A + keySep + p.B }
