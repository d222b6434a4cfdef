// Package dataset turns a solved contingency table into tabular output:
// a row-per-cell summary table (one column per categorical variable plus
// a count column), an optional row-per-individual expansion for synthetic
// populations, and CSV serialization of either.
//
// The package only reads a synth.Result; it never mutates the solved
// model. Solved counts are reals, so the record expansion has to round:
// RoundNearest keeps totals close to N, RoundDown never invents
// individuals the solution does not contain.
package dataset
