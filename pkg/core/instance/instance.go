package instance

// Horizon fixes the dimensions of one scheduling run. All matrices of an
// Instance must match it exactly.
type Horizon struct {
	Staff      int
	ShiftTypes int
	Days       int
}

// Valid returns ErrDegenerateHorizon unless all three dimensions are positive.
func (h Horizon) Valid() error {
	if h.Staff <= 0 || h.ShiftTypes <= 0 || h.Days <= 0 {
		return ErrDegenerateHorizon
	}
	return nil
}

// Instance holds the validated inputs for one scheduling run. It is created
// fresh per run (loaded, synthesized, or hand-built in tests) and is never
// shared mutable state - independent runs use independent instances.
type Instance struct {
	Horizon Horizon

	// Availability[staff][day]: true means the staff member may take any
	// shift that day.
	Availability [][]bool

	// Coverage[shiftType][day]: exact headcount required.
	Coverage [][]int

	// Cost holds the per-assignment cost cube (staff x shiftType x day).
	Cost *Cube

	// Preference[staff][shiftType] in [0,1]; 1 is most preferred.
	Preference [][]float64

	// Workload bounds per staff member over the whole horizon.
	MinWork []int
	MaxWork []int
}

// New allocates an empty instance with all matrices sized to the horizon.
func New(h Horizon) (*Instance, error) {
	if err := h.Valid(); err != nil {
		return nil, err
	}

	inst := &Instance{
		Horizon:      h,
		Availability: make([][]bool, h.Staff),
		Coverage:     make([][]int, h.ShiftTypes),
		Cost:         NewCube(h.Staff, h.ShiftTypes, h.Days),
		Preference:   make([][]float64, h.Staff),
		MinWork:      make([]int, h.Staff),
		MaxWork:      make([]int, h.Staff),
	}
	for s := 0; s < h.Staff; s++ {
		inst.Availability[s] = make([]bool, h.Days)
		inst.Preference[s] = make([]float64, h.ShiftTypes)
	}
	for t := 0; t < h.ShiftTypes; t++ {
		inst.Coverage[t] = make([]int, h.Days)
	}
	return inst, nil
}

// TotalDemand sums the coverage requirement over every (shiftType, day).
func (in *Instance) TotalDemand() int {
	total := 0
	for t := 0; t < in.Horizon.ShiftTypes; t++ {
		for d := 0; d < in.Horizon.Days; d++ {
			total += in.Coverage[t][d]
		}
	}
	return total
}

// FairnessTarget is the theoretical even share of work per staff member:
// total coverage demand divided by the staff count. It is recomputed on every
// call so it always reflects the current coverage matrix.
func (in *Instance) FairnessTarget() (float64, error) {
	if in.Horizon.Staff <= 0 {
		return 0, ErrDegenerateHorizon
	}
	return float64(in.TotalDemand()) / float64(in.Horizon.Staff), nil
}
