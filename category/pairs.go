package category

import "sort"

// Pairs derives the minimal set of cross-variable category pairs that need
// an intermediate (joint-count) variable.
//
// Algorithm (generate → filter → deduplicate):
//  1. For every unordered pair of distinct variables, take the sorted
//     union of their category labels.
//  2. Generate all 2-combinations of that union.
//  3. Discard combinations whose labels share one owning variable; those
//     categories are mutually exclusive, so their joint count is zero by
//     construction and aggregating them is meaningless.
//  4. Deduplicate across variable-pair passes by the sorted Pair key: a
//     combination produced by two different passes collapses to one pair.
//
// The result size is bounded by C(Σ|categories|, 2) minus the same-variable
// combinations. Order is deterministic for a given space.
// Complexity: O(V² · c²) time, c the largest per-pair union.
func (s *Space) Pairs() []Pair {
	seen := make(map[Pair]struct{})
	var pairs []Pair

	for i := 0; i < len(s.vars); i++ {
		for j := i + 1; j < len(s.vars); j++ {
			// Step 1: sorted union of the two variables' labels.
			union := make([]string, 0, len(s.vars[i].Categories)+len(s.vars[j].Categories))
			union = append(union, s.vars[i].Categories...)
			union = append(union, s.vars[j].Categories...)
			sort.Strings(union)

			// Step 2: all 2-combinations of the union.
			for a := 0; a < len(union); a++ {
				for b := a + 1; b < len(union); b++ {
					// Step 3: drop same-variable combinations.
					if s.SameVariable(union[a], union[b]) {
						continue
					}
					// Step 4: deduplicate by sorted key.
					p := NewPair(union[a], union[b])
					if _, dup := seen[p]; dup {
						continue
					}
					seen[p] = struct{}{}
					pairs = append(pairs, p)
				}
			}
		}
	}

	return pairs
}
