package milp

import (
	"context"
	"fmt"
	"math"
)

const (
	// DefaultMaxBinaryVars caps the search space of the enumerator.
	DefaultMaxBinaryVars = 24

	feasTol = 1e-6

	ctxCheckInterval = 2048
)

// Enumerator is an exhaustive in-memory solver for small fixtures. It exists
// so the engine can be exercised end-to-end without linking a real
// optimization engine; production models go out through the LP writer
// instead.
//
// Supported models: any set of binary variables, plus continuous variables
// in slack form - lower bound 0, appearing only in <= rows with coefficient
// -1 and at most one continuous variable per row. Everything else is
// rejected with ErrModelRejected.
type Enumerator struct {
	// MaxBinaryVars limits the number of binary variables; 0 means
	// DefaultMaxBinaryVars.
	MaxBinaryVars int
}

func (e *Enumerator) Solve(ctx context.Context, m *Model) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	maxBinary := e.MaxBinaryVars
	if maxBinary <= 0 {
		maxBinary = DefaultMaxBinaryVars
	}

	var binaries []int
	var slacks []int
	for i, v := range m.Vars {
		switch v.Type {
		case Binary:
			binaries = append(binaries, i)
		case Continuous:
			slacks = append(slacks, i)
		}
	}

	if len(binaries) > maxBinary {
		return nil, fmt.Errorf("%w: %d binary variables exceed the enumeration limit of %d",
			ErrModelRejected, len(binaries), maxBinary)
	}

	slackRows, err := m.slackRows(slacks)
	if err != nil {
		return nil, err
	}

	// A slack with unbounded range that improves the objective makes the
	// model unbounded, but only once some binary assignment is feasible.
	improvingInf := false
	for _, i := range slacks {
		v := m.Vars[i]
		if improves(m.Sense, v.Obj) && math.IsInf(v.Upper, 1) {
			improvingInf = true
		}
	}

	values := make([]float64, len(m.Vars))
	best := &Result{Status: StatusInfeasible}
	haveIncumbent := false

	total := uint64(1) << uint(len(binaries))
	for mask := uint64(0); mask < total; mask++ {
		if mask%ctxCheckInterval == 0 && ctx.Err() != nil {
			if haveIncumbent {
				best.Status = StatusSuboptimal
				return best, nil
			}
			return &Result{Status: StatusTimeLimitNoIncumbent}, nil
		}

		if !m.applyMask(values, binaries, mask) {
			continue
		}
		m.resolveSlacks(values, slacks, slackRows)

		if !m.feasible(values) {
			continue
		}
		if improvingInf {
			return &Result{Status: StatusUnbounded}, nil
		}

		obj := m.objective(values)
		if !haveIncumbent || better(m.Sense, obj, best.Objective) {
			haveIncumbent = true
			best.Objective = obj
			best.Values = append(best.Values[:0], values...)
			best.Status = StatusOptimal
		}
	}

	if ctx.Err() != nil && haveIncumbent {
		// The loop finished between deadline checks; the search is still
		// complete, so the incumbent is in fact optimal.
		best.Status = StatusOptimal
	}

	return best, nil
}

// slackRows maps each continuous variable to the constraint rows it absorbs,
// rejecting any shape outside the supported slack form.
func (m *Model) slackRows(slacks []int) (map[int][]int, error) {
	isSlack := make(map[int]bool, len(slacks))
	for _, i := range slacks {
		v := m.Vars[i]
		if v.Lower != 0 {
			return nil, fmt.Errorf("%w: continuous variable %s must have lower bound 0", ErrModelRejected, v.Name)
		}
		isSlack[i] = true
	}

	rows := make(map[int][]int)
	for ci, c := range m.Constraints {
		seen := 0
		for _, t := range c.Terms {
			if !isSlack[t.Var] {
				continue
			}
			seen++
			if seen > 1 {
				return nil, fmt.Errorf("%w: constraint %s has more than one continuous variable", ErrModelRejected, c.Label)
			}
			if c.Op != LessEqual || t.Coef != -1 {
				return nil, fmt.Errorf("%w: continuous variable %s is not in slack form in constraint %s",
					ErrModelRejected, m.Vars[t.Var].Name, c.Label)
			}
			rows[t.Var] = append(rows[t.Var], ci)
		}
	}
	return rows, nil
}

// applyMask writes the binary assignment for mask into values, returning
// false when a fixed binary bound forbids it.
func (m *Model) applyMask(values []float64, binaries []int, mask uint64) bool {
	for bit, idx := range binaries {
		v := 0.0
		if mask&(1<<uint(bit)) != 0 {
			v = 1.0
		}
		if v < m.Vars[idx].Lower-feasTol || v > m.Vars[idx].Upper+feasTol {
			return false
		}
		values[idx] = v
	}
	return true
}

// resolveSlacks sets each slack to its optimal value for the fixed binary
// assignment. A slack only ever relaxes its rows (coefficient -1 in <=
// rows), so a penalized slack takes the smallest feasible value and a
// rewarded one takes its finite upper bound. Rewarded slacks with an
// infinite bound stay minimal here; Solve reports those as unbounded once
// any assignment is feasible.
func (m *Model) resolveSlacks(values []float64, slacks []int, slackRows map[int][]int) {
	for _, i := range slacks {
		v := m.Vars[i]
		if improves(m.Sense, v.Obj) && !math.IsInf(v.Upper, 1) {
			values[i] = v.Upper
			continue
		}

		need := 0.0
		for _, ci := range slackRows[i] {
			c := m.Constraints[ci]
			lhs := 0.0
			for _, t := range c.Terms {
				if t.Var == i {
					continue
				}
				lhs += t.Coef * values[t.Var]
			}
			if excess := lhs - c.RHS; excess > need {
				need = excess
			}
		}
		values[i] = math.Min(need, v.Upper)
	}
}

func (m *Model) feasible(values []float64) bool {
	for i, v := range m.Vars {
		if values[i] < v.Lower-feasTol || values[i] > v.Upper+feasTol {
			return false
		}
	}
	for _, c := range m.Constraints {
		lhs := 0.0
		for _, t := range c.Terms {
			lhs += t.Coef * values[t.Var]
		}
		switch c.Op {
		case Equal:
			if math.Abs(lhs-c.RHS) > feasTol {
				return false
			}
		case LessEqual:
			if lhs > c.RHS+feasTol {
				return false
			}
		case GreaterEqual:
			if lhs < c.RHS-feasTol {
				return false
			}
		}
	}
	return true
}

func (m *Model) objective(values []float64) float64 {
	obj := 0.0
	for i, v := range m.Vars {
		obj += v.Obj * values[i]
	}
	return obj
}

// improves reports whether a variable with this objective coefficient gets
// better the larger it grows.
func improves(sense Sense, obj float64) bool {
	if sense == Maximize {
		return obj > 0
	}
	return obj < 0
}

func better(sense Sense, candidate, incumbent float64) bool {
	if sense == Maximize {
		return candidate > incumbent
	}
	return candidate < incumbent
}
