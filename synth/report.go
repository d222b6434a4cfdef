package synth

import (
	"fmt"
	"math"

	"github.com/steed360/Synthetic-Categorical-Data/category"
)

// CheckKind classifies one validation check.
type CheckKind int

const (
	// CheckCellSign — every solved cell count is non-negative.
	CheckCellSign CheckKind = iota
	// CheckTotal — N equals the declared sample size.
	CheckTotal
	// CheckCellSum — the cell counts sum to N.
	CheckCellSum
	// CheckAggregateLink — every aggregate equals its matching cell sum.
	CheckAggregateLink
	// CheckAggregateSum — each variable's aggregates sum to N.
	CheckAggregateSum
	// CheckPairLink — every pair value equals its matching cell sum.
	CheckPairLink
	// CheckPairBound — no pair value exceeds either contributing aggregate.
	CheckPairBound
	// CheckAbsolute — a declared absolute probability is realized.
	CheckAbsolute
	// CheckConditional — a declared conditional probability is realized.
	CheckConditional
)

// String implements fmt.Stringer.
func (k CheckKind) String() string {
	switch k {
	case CheckCellSign:
		return "cell-sign"
	case CheckTotal:
		return "total"
	case CheckCellSum:
		return "cell-sum"
	case CheckAggregateLink:
		return "aggregate-link"
	case CheckAggregateSum:
		return "aggregate-sum"
	case CheckPairLink:
		return "pair-link"
	case CheckPairBound:
		return "pair-bound"
	case CheckAbsolute:
		return "absolute"
	case CheckConditional:
		return "conditional"
	default:
		return "unknown"
	}
}

// Check is one pass/fail verdict: the realized value against its target.
type Check struct {
	Kind     CheckKind
	Subject  string
	Target   float64
	Realized float64
	Pass     bool
}

// String renders the check for diagnostics, e.g.
// "conditional P(t|m): target 0.5, realized 0.5 — pass".
func (c Check) String() string {
	verdict := "pass"
	if !c.Pass {
		verdict = "FAIL"
	}

	return fmt.Sprintf("%s %s: target %g, realized %g — %s", c.Kind, c.Subject, c.Target, c.Realized, verdict)
}

// Report collects every validation check for one solved result.
type Report struct {
	Tolerance float64
	Checks    []Check
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}

	return true
}

// Failed returns the failing checks, nil when all passed.
func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Pass {
			out = append(out, c)
		}
	}

	return out
}

// Validate recomputes every declared probability from the solved values
// and verifies the structural invariants of the model. It reads the
// result once and mutates nothing.
//
// Probability checks use Options.Tolerance as-is; count-valued checks
// scale it by (1 + sample size), since LP residuals grow with magnitude.
// A failing check signals solver imprecision (minor) or an assembly bug
// (serious); it is reported, never swallowed.
func (r *Result) Validate() *Report {
	tol := r.model.opts.Tolerance
	ctol := tol * (1 + r.model.sampleSize)
	rep := &Report{Tolerance: tol}

	// All cells ≥ 0.
	minCell := math.Inf(1)
	for _, cc := range r.Cells {
		minCell = math.Min(minCell, cc.Count)
	}
	rep.add(Check{Kind: CheckCellSign, Subject: "cells", Target: 0, Realized: minCell, Pass: minCell >= -ctol})

	// N pinned, and the cells actually sum to it.
	rep.add(Check{Kind: CheckTotal, Subject: totalVar, Target: r.model.sampleSize, Realized: r.Total,
		Pass: math.Abs(r.Total-r.model.sampleSize) <= ctol})
	cellSum := 0.0
	for _, cc := range r.Cells {
		cellSum += cc.Count
	}
	rep.add(Check{Kind: CheckCellSum, Subject: "Σcells", Target: r.model.sampleSize, Realized: cellSum,
		Pass: math.Abs(cellSum-r.model.sampleSize) <= ctol})

	// Aggregates match their cell sums; per-variable aggregates sum to N.
	worstAgg := 0.0
	for _, v := range r.model.space.Variables() {
		varSum := 0.0
		for _, cat := range v.Categories {
			catSum := 0.0
			for _, cc := range r.Cells {
				if cc.Cell.Contains(cat) {
					catSum += cc.Count
				}
			}
			worstAgg = math.Max(worstAgg, math.Abs(r.Aggregates[cat]-catSum))
			varSum += r.Aggregates[cat]
		}
		rep.add(Check{Kind: CheckAggregateSum, Subject: v.Name, Target: r.model.sampleSize, Realized: varSum,
			Pass: math.Abs(varSum-r.model.sampleSize) <= ctol})
	}
	rep.add(Check{Kind: CheckAggregateLink, Subject: "aggregates", Target: 0, Realized: worstAgg, Pass: worstAgg <= ctol})

	// Pairs match their cell sums and stay within both aggregates.
	worstPair, worstBound := 0.0, 0.0
	for p, val := range r.Pairs {
		pairSum := 0.0
		for _, cc := range r.Cells {
			if cc.Cell.Contains(p.A) && cc.Cell.Contains(p.B) {
				pairSum += cc.Count
			}
		}
		worstPair = math.Max(worstPair, math.Abs(val-pairSum))
		worstBound = math.Max(worstBound, val-math.Min(r.Aggregates[p.A], r.Aggregates[p.B]))
	}
	rep.add(Check{Kind: CheckPairLink, Subject: "pairs", Target: 0, Realized: worstPair, Pass: worstPair <= ctol})
	rep.add(Check{Kind: CheckPairBound, Subject: "pairs", Target: 0, Realized: worstBound, Pass: worstBound <= ctol})

	// Declared absolute probabilities: realized share of N.
	for _, a := range r.model.absolutes {
		realized := r.Aggregates[a.Category] / r.Total
		rep.add(Check{Kind: CheckAbsolute, Subject: "P(" + a.Category + ")", Target: a.P, Realized: realized,
			Pass: math.Abs(realized-a.P) <= tol})
	}

	// Declared conditional probabilities: realized ratio to the
	// conditioning aggregate. An empty condition (agg ~ 0) satisfies the
	// equality vacuously as long as the joint count is also ~ 0.
	for _, c := range r.model.conditionals {
		pairVal := r.Pairs[category.NewPair(c.Target, c.Condition)]
		cond := r.Aggregates[c.Condition]
		subject := "P(" + c.Target + "|" + c.Condition + ")"
		if cond <= ctol {
			rep.add(Check{Kind: CheckConditional, Subject: subject, Target: c.P, Realized: 0,
				Pass: math.Abs(pairVal) <= ctol})
			continue
		}
		realized := pairVal / cond
		rep.add(Check{Kind: CheckConditional, Subject: subject, Target: c.P, Realized: realized,
			Pass: math.Abs(realized-c.P) <= tol})
	}

	return rep
}

func (r *Report) add(c Check) { r.Checks = append(r.Checks, c) }
