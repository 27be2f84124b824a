package formulation

import (
	"fmt"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// assignmentThreshold is the binary-relaxation tie-break: any assignment
// value strictly above it counts as a filled shift.
const assignmentThreshold = 0.5

// CoverageGap is a decode-time diagnostic: how far a (shiftType, day) cell's
// decoded headcount deviates from its requirement. With the strict-equality
// coverage family these stay zero for a trusted solver; nonzero gaps point
// at a formulation/solver mismatch.
type CoverageGap struct {
	Shift int
	Day   int
	// Unmet is required minus assigned when positive.
	Unmet int
	// Extra is assigned minus required when positive.
	Extra int
}

// DecodeResult bundles the decoded roster with the solver status it came
// from. Roster is empty (never partial) when the status carries no solution.
type DecodeResult struct {
	Status    milp.Status
	Objective float64
	Roster    *Roster
	Gaps      []CoverageGap
}

// Decode turns a flat solution vector back into a roster. Only Optimal and
// Suboptimal statuses produce assignments; every other status yields an
// empty roster with the status surfaced for the caller to act on.
func Decode(inst *instance.Instance, ix IndexScheme, res *milp.Result) (*DecodeResult, error) {
	h := inst.Horizon
	out := &DecodeResult{
		Status: res.Status,
		Roster: NewRoster(h),
	}

	if !res.Status.HasSolution() {
		return out, nil
	}

	if len(res.Values) != ix.NumVars() {
		return nil, fmt.Errorf("solution vector has %d values, want %d", len(res.Values), ix.NumVars())
	}

	out.Objective = res.Objective
	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			for d := 0; d < h.Days; d++ {
				if res.Values[ix.Assignment(s, t, d)] > assignmentThreshold {
					out.Roster.Assign(s, t, d)
				}
			}
		}
	}

	out.Gaps = coverageGaps(inst, out.Roster)
	return out, nil
}

// EncodeRoster builds the 0/1 solution vector for a roster, with overwork
// slacks set to the excess of each staff member's load over the fairness
// target. It is the inverse of Decode for feasible rosters and backs the
// round-trip tests and the decode command's fixtures.
func EncodeRoster(inst *instance.Instance, ix IndexScheme, r *Roster) ([]float64, error) {
	h := inst.Horizon
	if r.Horizon != h {
		return nil, fmt.Errorf("roster horizon %+v does not match instance horizon %+v", r.Horizon, h)
	}

	target, err := inst.FairnessTarget()
	if err != nil {
		return nil, err
	}

	values := make([]float64, ix.NumVars())
	for d := 0; d < h.Days; d++ {
		for t := 0; t < h.ShiftTypes; t++ {
			for _, s := range r.Assigned[d][t] {
				values[ix.Assignment(s, t, d)] = 1
			}
		}
	}
	for s := 0; s < h.Staff; s++ {
		if excess := float64(r.StaffLoad(s)) - target; excess > 0 {
			values[ix.Overwork(s)] = excess
		}
	}
	return values, nil
}

func coverageGaps(inst *instance.Instance, r *Roster) []CoverageGap {
	h := inst.Horizon
	var gaps []CoverageGap
	for t := 0; t < h.ShiftTypes; t++ {
		for d := 0; d < h.Days; d++ {
			assigned := len(r.Assigned[d][t])
			required := inst.Coverage[t][d]
			switch {
			case assigned < required:
				gaps = append(gaps, CoverageGap{Shift: t, Day: d, Unmet: required - assigned})
			case assigned > required:
				gaps = append(gaps, CoverageGap{Shift: t, Day: d, Extra: assigned - required})
			}
		}
	}
	return gaps
}
