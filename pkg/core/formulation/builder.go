package formulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// ErrModelTooLarge reports a horizon whose variable count cannot be indexed.
// The build aborts before any partial model exists.
var ErrModelTooLarge = errors.New("model too large")

// Constraint family labels, attached to every emitted row.
const (
	LabelCoverage  = "cover"
	LabelAvailable = "avail"
	LabelOnePerDay = "one_per_day"
	LabelRest      = "rest"
	LabelWorkUpper = "work_upper"
	LabelWorkLower = "work_lower"
	LabelFairness  = "fair_link"
)

// Build emits the complete model for an instance: every variable with its
// bounds and objective coefficient, then the six constraint families. The
// objective minimizes
//
//	w_cost * cost[s,t,d] * x[s,t,d]
//	+ w_pref * (1 - pref[s,t]) * x[s,t,d]
//	+ w_fair * o[s]
//
// Either a complete model is returned or an error and no model at all.
func Build(inst *instance.Instance, w Weights) (*milp.Model, error) {
	h := inst.Horizon
	if err := h.Valid(); err != nil {
		return nil, err
	}
	if overflows(h) {
		return nil, fmt.Errorf("%w: horizon %dx%dx%d", ErrModelTooLarge, h.Staff, h.ShiftTypes, h.Days)
	}

	target, err := inst.FairnessTarget()
	if err != nil {
		return nil, err
	}

	ix := NewIndexScheme(h)
	m := &milp.Model{
		Name:  "staff_roster",
		Sense: milp.Minimize,
		Vars:  make([]milp.Variable, 0, ix.NumVars()),
	}

	// Assignment variables, in index order.
	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			for d := 0; d < h.Days; d++ {
				m.AddVar(milp.Variable{
					Name:  fmt.Sprintf("x_%d_%d_%d", s, t, d),
					Type:  milp.Binary,
					Lower: 0,
					Upper: 1,
					Obj:   w.Cost*inst.Cost.At(s, t, d) + w.Preference*(1-inst.Preference[s][t]),
				})
			}
		}
	}

	// Overwork slack variables, one per staff member.
	for s := 0; s < h.Staff; s++ {
		m.AddVar(milp.Variable{
			Name:  fmt.Sprintf("o_%d", s),
			Type:  milp.Continuous,
			Lower: 0,
			Upper: math.Inf(1),
			Obj:   w.Fairness,
		})
	}

	// (1) Coverage: exact headcount per (shiftType, day).
	for t := 0; t < h.ShiftTypes; t++ {
		for d := 0; d < h.Days; d++ {
			terms := make([]milp.Term, h.Staff)
			for s := 0; s < h.Staff; s++ {
				terms[s] = milp.Term{Var: ix.Assignment(s, t, d), Coef: 1}
			}
			m.AddConstraint(milp.Constraint{
				Label: LabelCoverage,
				Terms: terms,
				Op:    milp.Equal,
				RHS:   float64(inst.Coverage[t][d]),
			})
		}
	}

	// (2) Availability: the day's availability bounds every shift type.
	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			for d := 0; d < h.Days; d++ {
				rhs := 0.0
				if inst.Availability[s][d] {
					rhs = 1.0
				}
				m.AddConstraint(milp.Constraint{
					Label: LabelAvailable,
					Terms: []milp.Term{{Var: ix.Assignment(s, t, d), Coef: 1}},
					Op:    milp.LessEqual,
					RHS:   rhs,
				})
			}
		}
	}

	// (3) At most one shift per staff member per day.
	for s := 0; s < h.Staff; s++ {
		for d := 0; d < h.Days; d++ {
			terms := make([]milp.Term, h.ShiftTypes)
			for t := 0; t < h.ShiftTypes; t++ {
				terms[t] = milp.Term{Var: ix.Assignment(s, t, d), Coef: 1}
			}
			m.AddConstraint(milp.Constraint{
				Label: LabelOnePerDay,
				Terms: terms,
				Op:    milp.LessEqual,
				RHS:   1,
			})
		}
	}

	// (4) Rest rule: no night shift followed by next morning's shift.
	// Skipped as a whole unless both designated shift types exist.
	if w.restRuleApplies(h.ShiftTypes) {
		for s := 0; s < h.Staff; s++ {
			for d := 0; d < h.Days-1; d++ {
				m.AddConstraint(milp.Constraint{
					Label: LabelRest,
					Terms: []milp.Term{
						{Var: ix.Assignment(s, w.NightShift, d), Coef: 1},
						{Var: ix.Assignment(s, w.MorningShift, d+1), Coef: 1},
					},
					Op:  milp.LessEqual,
					RHS: 1,
				})
			}
		}
	}

	// (5) Workload bounds: two inequalities sharing one coefficient row.
	for s := 0; s < h.Staff; s++ {
		terms := loadTerms(ix, s, h)
		m.AddConstraint(milp.Constraint{
			Label: LabelWorkUpper,
			Terms: terms,
			Op:    milp.LessEqual,
			RHS:   float64(inst.MaxWork[s]),
		})
		m.AddConstraint(milp.Constraint{
			Label: LabelWorkLower,
			Terms: terms,
			Op:    milp.GreaterEqual,
			RHS:   float64(inst.MinWork[s]),
		})
	}

	// (6) Fairness link: load minus overwork stays at or below the target.
	for s := 0; s < h.Staff; s++ {
		terms := loadTerms(ix, s, h)
		terms = append(terms, milp.Term{Var: ix.Overwork(s), Coef: -1})
		m.AddConstraint(milp.Constraint{
			Label: LabelFairness,
			Terms: terms,
			Op:    milp.LessEqual,
			RHS:   target,
		})
	}

	return m, nil
}

// loadTerms is the coefficient row summing every assignment of one staff
// member across the horizon.
func loadTerms(ix IndexScheme, staff int, h instance.Horizon) []milp.Term {
	terms := make([]milp.Term, 0, h.ShiftTypes*h.Days)
	for t := 0; t < h.ShiftTypes; t++ {
		for d := 0; d < h.Days; d++ {
			terms = append(terms, milp.Term{Var: ix.Assignment(staff, t, d), Coef: 1})
		}
	}
	return terms
}

// overflows reports whether the variable count of the horizon exceeds what
// the index arithmetic can address.
func overflows(h instance.Horizon) bool {
	const maxIndex = math.MaxInt32
	product := int64(h.Staff) * int64(h.ShiftTypes)
	if product > maxIndex {
		return true
	}
	product *= int64(h.Days)
	if product > maxIndex {
		return true
	}
	return product+int64(h.Staff) > maxIndex
}
