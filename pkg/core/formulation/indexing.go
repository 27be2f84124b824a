// Package formulation turns a scheduling instance into a MILP model and
// decodes solver output back into a roster.
package formulation

import (
	"fmt"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
)

// IndexScheme is the bijective mapping between scheduling coordinates and
// linear variable indices. Assignment variables occupy
// [0, staff*shiftTypes*days); overwork variables follow in one contiguous
// block, one per staff member.
type IndexScheme struct {
	staff      int
	shiftTypes int
	days       int
}

// NewIndexScheme builds the scheme for a horizon.
func NewIndexScheme(h instance.Horizon) IndexScheme {
	return IndexScheme{staff: h.Staff, shiftTypes: h.ShiftTypes, days: h.Days}
}

// Assignment maps (staff, shiftType, day) to its variable index.
// Out-of-range coordinates are a caller bug and panic.
func (ix IndexScheme) Assignment(staff, shift, day int) int {
	if staff < 0 || staff >= ix.staff || shift < 0 || shift >= ix.shiftTypes || day < 0 || day >= ix.days {
		panic(fmt.Sprintf("assignment index (%d,%d,%d) out of range (%d,%d,%d)",
			staff, shift, day, ix.staff, ix.shiftTypes, ix.days))
	}
	return staff*ix.shiftTypes*ix.days + shift*ix.days + day
}

// Overwork maps a staff member to its overwork-slack variable index.
func (ix IndexScheme) Overwork(staff int) int {
	if staff < 0 || staff >= ix.staff {
		panic(fmt.Sprintf("overwork index %d out of range (%d staff)", staff, ix.staff))
	}
	return ix.staff*ix.shiftTypes*ix.days + staff
}

// NumAssignmentVars is the size of the assignment-variable block.
func (ix IndexScheme) NumAssignmentVars() int {
	return ix.staff * ix.shiftTypes * ix.days
}

// NumVars is the total variable count, assignment plus overwork.
func (ix IndexScheme) NumVars() int {
	return ix.NumAssignmentVars() + ix.staff
}
