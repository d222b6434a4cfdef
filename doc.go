// Package synthetic turns a declared probability tree over categorical
// variables into a concrete, exactly-consistent synthetic dataset.
//
// 🚀 What does it do?
//
//	Given a handful of categorical variables (e.g. gender, colour, degree),
//	a sample size N, absolute shares for one "root" variable and conditional
//	probabilities for the rest, it formulates every cell of the multi-way
//	contingency table as a non-negative LP decision variable, ties cells to
//	per-category aggregates and cross-variable pair counts with linear
//	equalities, and solves for a feasible table whose marginals and
//	conditionals match the declaration exactly.
//
// ✨ Why?
//
//   - Build adversarial or controlled datasets for testing analysis tools
//   - Construct small synthetic populations consistent with survey or
//     census-style conditional statistics
//
// Under the hood, everything is organized under five subpackages:
//
//	category/ — categorical variables, the Cartesian cell space, and the
//	            cross-variable category-pair derivation
//	lp/       — the linear equality system and the simplex solve step
//	            (backed by gonum's LP solver, with a row-reduction presolve)
//	synth/    — the constraint assembler, solve orchestration, and the
//	            post-solve validation report
//	dataset/  — row-per-cell tables, record expansion, and CSV output
//	specfile/ — YAML loading of variable and probability declarations
//
// The pipeline is strictly forward: declare → derive → assemble → solve →
// validate. The LP has no meaningful objective; any feasible table is a
// valid answer, and validation compares realized ratios rather than exact
// cell values because the system may admit more than one optimum.
//
// Scale note: the cell count is the product of the category counts, so this
// approach suits small variable sets; it is not a statistical inference
// tool and it does not promise a unique table, only a consistent one.
package synthetic
