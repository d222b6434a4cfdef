package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/steed360/Synthetic-Categorical-Data/category"
	"github.com/steed360/Synthetic-Categorical-Data/synth"
)

// Sentinel errors for document-level problems; declaration-level problems
// surface as category/synth sentinels wrapped with the declaration.
var (
	// ErrBadDocument indicates the bytes are not a valid declaration document.
	ErrBadDocument = errors.New("specfile: invalid document")
	// ErrNoVariables indicates the document declares no variables.
	ErrNoVariables = errors.New("specfile: document declares no variables")
)

// VariableDecl declares one categorical variable.
type VariableDecl struct {
	Name       string   `yaml:"name"`
	Categories []string `yaml:"categories"`
}

// AbsoluteDecl declares one absolute probability constraint.
type AbsoluteDecl struct {
	Variable    string  `yaml:"variable"`
	Category    string  `yaml:"category"`
	Probability float64 `yaml:"probability"`
}

// ConditionalDecl declares one conditional probability constraint.
type ConditionalDecl struct {
	Target      string  `yaml:"target"`
	Condition   string  `yaml:"condition"`
	Probability float64 `yaml:"probability"`
}

// File is the parsed declaration document.
type File struct {
	SampleSize  float64           `yaml:"sample_size"`
	Variables   []VariableDecl    `yaml:"variables"`
	Absolute    []AbsoluteDecl    `yaml:"absolute"`
	Conditional []ConditionalDecl `yaml:"conditional"`
}

// Parse decodes a YAML declaration document. Unknown fields are an error.
func Parse(b []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("Parse: %w: %v", ErrBadDocument, err)
	}
	if len(f.Variables) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrNoVariables)
	}

	return &f, nil
}

// Load reads everything from r and parses it.
func Load(r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %w: %v", ErrBadDocument, err)
	}

	return Parse(b)
}

// Model builds the categorical space and the declared model. A nil opts
// means synth.DefaultOptions(). Validation errors from the category and
// synth packages pass through wrapped with the declaration that caused
// them, so the caller can correct the document.
func (f *File) Model(opts *synth.Options) (*synth.Model, error) {
	vars := make([]category.Variable, len(f.Variables))
	for i, v := range f.Variables {
		vars[i] = category.Variable{Name: v.Name, Categories: v.Categories}
	}
	space, err := category.NewSpace(vars...)
	if err != nil {
		return nil, fmt.Errorf("Model: %w", err)
	}

	m, err := synth.NewModel(space, f.SampleSize, opts)
	if err != nil {
		return nil, fmt.Errorf("Model: %w", err)
	}
	for _, a := range f.Absolute {
		if err = m.Absolute(a.Variable, a.Category, a.Probability); err != nil {
			return nil, fmt.Errorf("Model: absolute %s/%s: %w", a.Variable, a.Category, err)
		}
	}
	for _, c := range f.Conditional {
		if err = m.Conditional(c.Target, c.Condition, c.Probability); err != nil {
			return nil, fmt.Errorf("Model: conditional %s|%s: %w", c.Target, c.Condition, err)
		}
	}

	return m, nil
}
