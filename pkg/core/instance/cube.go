package instance

import "fmt"

// Cube is a staff x shiftType x day matrix backed by one contiguous buffer.
// It replaces manual flattened-offset arithmetic with checked accessors.
type Cube struct {
	staff  int
	shifts int
	days   int
	data   []float64
}

// NewCube allocates a zeroed cube with the given dimensions.
func NewCube(staff, shifts, days int) *Cube {
	return &Cube{
		staff:  staff,
		shifts: shifts,
		days:   days,
		data:   make([]float64, staff*shifts*days),
	}
}

func (c *Cube) offset(staff, shift, day int) int {
	if staff < 0 || staff >= c.staff || shift < 0 || shift >= c.shifts || day < 0 || day >= c.days {
		panic(fmt.Sprintf("cube index (%d,%d,%d) out of range (%d,%d,%d)",
			staff, shift, day, c.staff, c.shifts, c.days))
	}
	return staff*c.shifts*c.days + shift*c.days + day
}

// At returns the value at (staff, shift, day). Out-of-range indices are a
// caller bug and panic.
func (c *Cube) At(staff, shift, day int) float64 {
	return c.data[c.offset(staff, shift, day)]
}

// Set stores a value at (staff, shift, day).
func (c *Cube) Set(staff, shift, day int, v float64) {
	c.data[c.offset(staff, shift, day)] = v
}
