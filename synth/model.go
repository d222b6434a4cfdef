package synth

import (
	"fmt"
	"math"

	"github.com/steed360/Synthetic-Categorical-Data/category"
)

// Model accumulates probability declarations over a categorical space.
// It is owned by a single caller: declare constraints, then Assemble or
// Solve. The space itself is never mutated.
type Model struct {
	space        *category.Space
	sampleSize   float64
	opts         Options
	absolutes    []AbsoluteTarget
	conditionals []ConditionalTarget
}

// NewModel creates a model over space with the declared sample size.
// A nil opts means DefaultOptions().
//
// Errors: ErrNilSpace, ErrBadSampleSize.
func NewModel(space *category.Space, sampleSize float64, opts *Options) (*Model, error) {
	if space == nil {
		return nil, fmt.Errorf("NewModel: %w", ErrNilSpace)
	}
	if sampleSize <= 0 || math.IsNaN(sampleSize) || math.IsInf(sampleSize, 0) {
		return nil, fmt.Errorf("NewModel: got %v: %w", sampleSize, ErrBadSampleSize)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Tolerance <= 0 {
			o.Tolerance = DefaultTolerance
		}
	}

	return &Model{space: space, sampleSize: sampleSize, opts: o}, nil
}

// Space returns the underlying categorical space.
func (m *Model) Space() *category.Space { return m.space }

// SampleSize returns the declared total count N.
func (m *Model) SampleSize() float64 { return m.sampleSize }

// Absolute declares P(cat) == p for a category of the named variable,
// fixing the category's share of the total sample size.
//
// Errors: ErrUnknownVariable, ErrUnknownCategory, ErrCategoryMismatch,
// ErrBadProbability.
func (m *Model) Absolute(variable, cat string, p float64) error {
	if _, ok := m.space.Categories(variable); !ok {
		return fmt.Errorf("Absolute: variable %q: %w", variable, ErrUnknownVariable)
	}
	owner, ok := m.space.Owner(cat)
	if !ok {
		return fmt.Errorf("Absolute: category %q: %w", cat, ErrUnknownCategory)
	}
	if owner != variable {
		return fmt.Errorf("Absolute: category %q belongs to %q, not %q: %w", cat, owner, variable, ErrCategoryMismatch)
	}
	if err := validProbability("Absolute", p); err != nil {
		return err
	}
	m.absolutes = append(m.absolutes, AbsoluteTarget{Variable: variable, Category: cat, P: p})

	return nil
}

// Conditional declares P(target | condition) == p, fixing the ratio of
// the joint count pair(target,condition) to the conditioning aggregate.
// Target and condition must come from two distinct variables.
//
// Errors: ErrUnknownCategory, ErrSameVariable, ErrBadProbability.
func (m *Model) Conditional(target, condition string, p float64) error {
	if !m.space.Has(target) {
		return fmt.Errorf("Conditional: target %q: %w", target, ErrUnknownCategory)
	}
	if !m.space.Has(condition) {
		return fmt.Errorf("Conditional: condition %q: %w", condition, ErrUnknownCategory)
	}
	if m.space.SameVariable(target, condition) {
		return fmt.Errorf("Conditional: %q and %q: %w", target, condition, ErrSameVariable)
	}
	if err := validProbability("Conditional", p); err != nil {
		return err
	}
	m.conditionals = append(m.conditionals, ConditionalTarget{Target: target, Condition: condition, P: p})

	return nil
}

// validProbability rejects values outside [0,1] (NaN included).
func validProbability(method string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: got %v: %w", method, p, ErrBadProbability)
	}

	return nil
}

// validateTree checks that the declaration forms a rooted probability
// tree: all absolute constraints target one root variable and cover every
// one of its categories, and every category of every other variable is
// the target of at least one conditional. "Exactly once" is deliberately
// not enforced: a category may be conditioned on several variables, in
// which case consistency is the solver's verdict.
func (m *Model) validateTree() error {
	if len(m.absolutes) == 0 {
		return fmt.Errorf("validateTree: no absolute root variable declared: %w", ErrIncompleteTree)
	}
	root := m.absolutes[0].Variable
	covered := make(map[string]struct{}, len(m.absolutes))
	for _, a := range m.absolutes {
		if a.Variable != root {
			return fmt.Errorf("validateTree: absolute constraints span %q and %q: %w", root, a.Variable, ErrIncompleteTree)
		}
		covered[a.Category] = struct{}{}
	}
	rootCats, _ := m.space.Categories(root)
	for _, cat := range rootCats {
		if _, ok := covered[cat]; !ok {
			return fmt.Errorf("validateTree: root %q category %q has no absolute share: %w", root, cat, ErrIncompleteTree)
		}
	}

	targeted := make(map[string]struct{}, len(m.conditionals))
	for _, c := range m.conditionals {
		targeted[c.Target] = struct{}{}
	}
	for _, v := range m.space.Variables() {
		if v.Name == root {
			continue
		}
		for _, cat := range v.Categories {
			if _, ok := targeted[cat]; !ok {
				return fmt.Errorf("validateTree: category %q of %q has no conditional: %w", cat, v.Name, ErrIncompleteTree)
			}
		}
	}

	return nil
}
