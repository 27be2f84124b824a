package formulation

import (
	"fmt"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
)

// Violation reports a decoded roster breaking one of the hard constraint
// families. These are warnings: the solver is trusted to have satisfied the
// model, so a violation means the formulation and the solver disagree and
// the caller should investigate.
type Violation struct {
	Family      string
	Staff       int // -1 when not staff-specific
	Shift       int // -1 when not shift-specific
	Day         int // -1 when not day-specific
	Description string
}

// Validate re-checks the coverage, availability, one-shift-per-day, and
// workload families against a decoded roster. An empty slice means the
// roster is consistent with the instance.
func (r *Roster) Validate(inst *instance.Instance) []Violation {
	var violations []Violation
	h := inst.Horizon

	// (1) Coverage is exact.
	for t := 0; t < h.ShiftTypes; t++ {
		for d := 0; d < h.Days; d++ {
			assigned := len(r.Assigned[d][t])
			required := inst.Coverage[t][d]
			if assigned != required {
				violations = append(violations, Violation{
					Family: LabelCoverage,
					Staff:  -1,
					Shift:  t,
					Day:    d,
					Description: fmt.Sprintf("shift %d day %d has %d staff assigned, requires exactly %d",
						t, d, assigned, required),
				})
			}
		}
	}

	// (2) Nobody works a day they are unavailable.
	for d := 0; d < h.Days; d++ {
		for t := 0; t < h.ShiftTypes; t++ {
			for _, s := range r.Assigned[d][t] {
				if !inst.Availability[s][d] {
					violations = append(violations, Violation{
						Family:      LabelAvailable,
						Staff:       s,
						Shift:       t,
						Day:         d,
						Description: fmt.Sprintf("staff %d assigned to shift %d on day %d but unavailable that day", s, t, d),
					})
				}
			}
		}
	}

	// (3) At most one shift per staff member per day.
	for d := 0; d < h.Days; d++ {
		for s := 0; s < h.Staff; s++ {
			count := 0
			for t := 0; t < h.ShiftTypes; t++ {
				if r.IsAssigned(s, t, d) {
					count++
				}
			}
			if count > 1 {
				violations = append(violations, Violation{
					Family:      LabelOnePerDay,
					Staff:       s,
					Shift:       -1,
					Day:         d,
					Description: fmt.Sprintf("staff %d assigned %d shifts on day %d", s, count, d),
				})
			}
		}
	}

	// (5) Workload bounds over the horizon.
	for s := 0; s < h.Staff; s++ {
		load := r.StaffLoad(s)
		if load > inst.MaxWork[s] {
			violations = append(violations, Violation{
				Family:      LabelWorkUpper,
				Staff:       s,
				Shift:       -1,
				Day:         -1,
				Description: fmt.Sprintf("staff %d assigned %d shifts, maximum is %d", s, load, inst.MaxWork[s]),
			})
		}
		if load < inst.MinWork[s] {
			violations = append(violations, Violation{
				Family:      LabelWorkLower,
				Staff:       s,
				Shift:       -1,
				Day:         -1,
				Description: fmt.Sprintf("staff %d assigned %d shifts, minimum is %d", s, load, inst.MinWork[s]),
			})
		}
	}

	return violations
}
