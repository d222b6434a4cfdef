package lp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// defaultPivotTol is the presolve pivot/residual tolerance when
// Simplex.PivotTol is unset.
const defaultPivotTol = 1e-9

// Simplex solves equality systems over non-negative variables with
// gonum's LP simplex.
//
// gonum requires the constraint matrix to have full row rank, while a
// probability-tree system is almost always redundant (a root variable
// whose shares sum to 1 restates the total-count equality). Solve
// therefore reduces the augmented matrix with Gauss–Jordan elimination
// first:
//
//   - dependent rows with a ~zero residual are dropped,
//   - a dependent row with a non-zero residual proves the equalities are
//     inconsistent, and the system is reported infeasible without ever
//     invoking gonum,
//   - surviving rows are rank-independent and get their right-hand sides
//     normalized to be non-negative.
//
// Variables untouched by any surviving equality are fixed at zero (their
// lower bound) unless the objective rewards growing them without limit,
// which is reported as unbounded.
//
// Complexity: presolve O(m²·n); the simplex itself is exponential in the
// worst case but fast on these small, sparse systems.
type Simplex struct {
	// PivotTol is the elimination pivot/residual tolerance; 0 means 1e-9.
	PivotTol float64
}

// Solve implements Solver. A nil error with StatusInfeasible or
// StatusUnbounded is a terminal answer, not a failure; ErrSolver wraps
// genuine solver breakdown.
func (sx Simplex) Solve(sys *System) (*Solution, error) {
	if sys == nil || sys.NumVariables() == 0 {
		return nil, fmt.Errorf("Solve: %w", ErrNoVariables)
	}
	tol := sx.PivotTol
	if tol <= 0 {
		tol = defaultPivotTol
	}
	n := len(sys.names)

	// Densify the equalities into an augmented matrix [A|b].
	rows := make([][]float64, len(sys.eqs))
	for i, eq := range sys.eqs {
		r := make([]float64, n+1)
		for _, t := range eq.terms {
			r[sys.columnOf(t.Var)] += t.Coeff
		}
		r[n] = eq.rhs
		rows[i] = r
	}

	kept, consistent := gaussJordan(rows, n, tol)
	if !consistent {
		return &Solution{Status: StatusInfeasible}, nil
	}

	// Minimization-form objective vector; Maximize flips the sign.
	c := make([]float64, n)
	if sys.sense != Feasibility {
		sign := 1.0
		if sys.sense == Maximize {
			sign = -1
		}
		for _, t := range sys.obj {
			c[sys.columnOf(t.Var)] += sign * t.Coeff
		}
	}

	// Split columns into constrained and free. A free variable sits at its
	// lower bound 0, unless shrinking the objective wants it at +∞.
	used := make([]int, 0, n)
	for j := 0; j < n; j++ {
		nonzero := false
		for _, r := range kept {
			if r[j] != 0 {
				nonzero = true
				break
			}
		}
		if nonzero {
			used = append(used, j)
			continue
		}
		if c[j] < 0 {
			return &Solution{Status: StatusUnbounded}, nil
		}
	}

	x := make([]float64, n)
	if len(used) > 0 {
		a := mat.NewDense(len(kept), len(used), nil)
		b := make([]float64, len(kept))
		cr := make([]float64, len(used))
		for i, r := range kept {
			for jj, j := range used {
				a.Set(i, jj, r[j])
			}
			b[i] = r[n]
		}
		for jj, j := range used {
			cr[jj] = c[j]
		}

		_, xr, err := convexlp.Simplex(cr, a, b, 0, nil)
		if err != nil {
			switch {
			case errors.Is(err, convexlp.ErrInfeasible):
				return &Solution{Status: StatusInfeasible}, nil
			case errors.Is(err, convexlp.ErrUnbounded):
				return &Solution{Status: StatusUnbounded}, nil
			default:
				return &Solution{Status: StatusFailed}, fmt.Errorf("Solve: %w: %v", ErrSolver, err)
			}
		}
		for jj, j := range used {
			x[j] = xr[jj]
		}
	}

	values := make(map[string]float64, n)
	for j, name := range sys.names {
		values[name] = x[j]
	}
	objective := 0.0
	for _, t := range sys.obj {
		objective += t.Coeff * values[t.Var]
	}

	return &Solution{Status: StatusSolved, Values: values, Objective: objective}, nil
}

// gaussJordan reduces the augmented rows (n coefficient columns plus one
// right-hand-side column) in place. It returns the independent reduced
// rows with non-negative right-hand sides, or consistent=false when some
// dependent row leaves a non-zero residual (0 == r with |r| > tol).
func gaussJordan(rows [][]float64, n int, tol float64) (kept [][]float64, consistent bool) {
	rank := 0
	for col := 0; col < n && rank < len(rows); col++ {
		// Partial pivoting: largest magnitude below the current rank row.
		piv, best := -1, tol
		for r := rank; r < len(rows); r++ {
			if a := math.Abs(rows[r][col]); a > best {
				piv, best = r, a
			}
		}
		if piv < 0 {
			continue
		}
		rows[rank], rows[piv] = rows[piv], rows[rank]

		p := rows[rank][col]
		for k := col; k <= n; k++ {
			rows[rank][k] /= p
		}
		for r := 0; r < len(rows); r++ {
			if r == rank || rows[r][col] == 0 {
				continue
			}
			f := rows[r][col]
			for k := col; k <= n; k++ {
				rows[r][k] -= f * rows[rank][k]
			}
			rows[r][col] = 0
		}
		rank++
	}

	// Rows beyond the rank have ~zero coefficients; a surviving residual
	// on the right-hand side proves inconsistency.
	for r := rank; r < len(rows); r++ {
		if math.Abs(rows[r][n]) > tol {
			return nil, false
		}
	}

	kept = rows[:rank]
	for _, r := range kept {
		if r[n] < 0 {
			for k := range r {
				r[k] = -r[k]
			}
		}
	}

	return kept, true
}
