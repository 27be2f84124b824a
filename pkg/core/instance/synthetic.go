package instance

// Default toy dimensions: a fortnight of three shift types for twenty staff.
var ToyHorizon = Horizon{Staff: 20, ShiftTypes: 3, Days: 14}

// Synthetic builds a deterministic toy instance so the engine can run
// end-to-end without input files:
//   - everyone is available every day
//   - workload bounds are 6..10 shifts over the horizon
//   - preference falls off from the first shift type (1.0, 0.6, then 0.3)
//   - the last shift type is treated as the night: lower coverage (3 vs 5)
//     and double cost (2.0 vs 1.0)
func Synthetic(h Horizon) (*Instance, error) {
	inst, err := New(h)
	if err != nil {
		return nil, err
	}

	night := h.ShiftTypes - 1

	for s := 0; s < h.Staff; s++ {
		for d := 0; d < h.Days; d++ {
			inst.Availability[s][d] = true
		}
		inst.MinWork[s] = 6
		inst.MaxWork[s] = 10

		for t := 0; t < h.ShiftTypes; t++ {
			switch t {
			case 0:
				inst.Preference[s][t] = 1.0
			case 1:
				inst.Preference[s][t] = 0.6
			default:
				inst.Preference[s][t] = 0.3
			}
		}
	}

	for t := 0; t < h.ShiftTypes; t++ {
		for d := 0; d < h.Days; d++ {
			if t == night && h.ShiftTypes > 1 {
				inst.Coverage[t][d] = 3
			} else {
				inst.Coverage[t][d] = 5
			}
		}
	}

	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			cost := 1.0
			if t == night && h.ShiftTypes > 1 {
				cost = 2.0
			}
			for d := 0; d < h.Days; d++ {
				inst.Cost.Set(s, t, d, cost)
			}
		}
	}

	return inst, nil
}
