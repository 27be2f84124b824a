package formulation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
)

// Roster is a decoded schedule: for each day, the staff assigned to each
// shift type. It is a read-only product of one decode (or of a hand-built
// fixture) with no identity beyond the run that produced it.
type Roster struct {
	Horizon instance.Horizon

	// Assigned[day][shiftType] lists staff IDs in ascending order.
	Assigned [][][]int
}

// NewRoster allocates an empty roster for a horizon.
func NewRoster(h instance.Horizon) *Roster {
	assigned := make([][][]int, h.Days)
	for d := 0; d < h.Days; d++ {
		assigned[d] = make([][]int, h.ShiftTypes)
		for t := 0; t < h.ShiftTypes; t++ {
			assigned[d][t] = []int{}
		}
	}
	return &Roster{Horizon: h, Assigned: assigned}
}

// Assign adds a staff member to a shift, keeping the list sorted.
func (r *Roster) Assign(staff, shift, day int) {
	list := r.Assigned[day][shift]
	i := sort.SearchInts(list, staff)
	if i < len(list) && list[i] == staff {
		return
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = staff
	r.Assigned[day][shift] = list
}

// IsAssigned reports whether a staff member works the given shift and day.
func (r *Roster) IsAssigned(staff, shift, day int) bool {
	list := r.Assigned[day][shift]
	i := sort.SearchInts(list, staff)
	return i < len(list) && list[i] == staff
}

// StaffLoad counts the total shifts assigned to one staff member.
func (r *Roster) StaffLoad(staff int) int {
	load := 0
	for d := 0; d < r.Horizon.Days; d++ {
		for t := 0; t < r.Horizon.ShiftTypes; t++ {
			if r.IsAssigned(staff, t, d) {
				load++
			}
		}
	}
	return load
}

// Empty reports whether the roster holds no assignments at all.
func (r *Roster) Empty() bool {
	for d := range r.Assigned {
		for t := range r.Assigned[d] {
			if len(r.Assigned[d][t]) > 0 {
				return false
			}
		}
	}
	return true
}

// String renders the roster day by day, shift by shift.
func (r *Roster) String() string {
	var b strings.Builder
	for d := 0; d < r.Horizon.Days; d++ {
		fmt.Fprintf(&b, "Day %d\n", d+1)
		for t := 0; t < r.Horizon.ShiftTypes; t++ {
			staff := r.Assigned[d][t]
			if len(staff) == 0 {
				fmt.Fprintf(&b, "  Shift %d -> (none)\n", t)
				continue
			}
			ids := make([]string, len(staff))
			for i, s := range staff {
				ids[i] = fmt.Sprintf("%d", s)
			}
			fmt.Fprintf(&b, "  Shift %d -> staff %s\n", t, strings.Join(ids, " "))
		}
	}
	return b.String()
}
