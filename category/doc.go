// Package category models the variable space of a synthetic categorical
// dataset: the declared variables, the Cartesian product of their category
// labels (the combination cells), and the cross-variable category pairs
// that later become intermediate LP variables.
//
// A Space is built once from a list of Variable declarations and is
// immutable afterwards. Category labels must be unique across the whole
// space, not just within one variable, because aggregates and pairs are
// keyed by bare label.
//
// Pair derivation follows a fixed three-step pipeline:
//
//  1. For every unordered pair of distinct variables, take the union of
//     their category labels.
//  2. Generate all 2-combinations of that union.
//  3. Discard combinations whose two labels belong to one variable (those
//     categories are mutually exclusive, so their joint count is always
//     zero) and deduplicate the rest by sorted key.
//
// The resulting Pair set is exactly the set of cross-variable joint counts
// a conditional probability constraint can reference.
//
// Complexity: Cells() is O(Π|categories|), which is why the approach only
// scales to small variable sets; Pairs() is O((Σ|categories|)²).
package category
