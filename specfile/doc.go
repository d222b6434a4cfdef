// Package specfile loads a probability-tree declaration from YAML and
// turns it into a ready-to-solve synth.Model.
//
// Document shape:
//
//	sample_size: 100
//	variables:
//	  - name: gender
//	    categories: [m, f]
//	  - name: colour
//	    categories: [t, p]
//	absolute:
//	  - {variable: gender, category: m, probability: 0.4}
//	  - {variable: gender, category: f, probability: 0.6}
//	conditional:
//	  - {target: t, condition: m, probability: 0.5}
//	  - {target: p, condition: m, probability: 0.5}
//	  - {target: t, condition: f, probability: 0.3}
//	  - {target: p, condition: f, probability: 0.7}
//
// Unknown fields are rejected so a typo fails loudly instead of silently
// dropping a constraint. Semantic validation (unknown categories,
// probabilities out of range, tree shape) is delegated to the category
// and synth packages; errors come back wrapped with the offending
// declaration.
package specfile
