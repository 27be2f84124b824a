package formulation

// Built-in objective weights. Changing them tunes the trade-off between the
// three objective terms without changing the structure of the formulation.
const (
	// DefaultCostWeight scales the raw assignment cost of each filled
	// shift.
	DefaultCostWeight = 5.0

	// DefaultFairnessWeight is the flat penalty on each unit of overwork
	// slack. Higher values push loads toward the fairness target.
	DefaultFairnessWeight = 8.0

	// DefaultPreferenceWeight scales the mismatch term (1 - preference)
	// for each filled shift.
	DefaultPreferenceWeight = 6.0
)

// Default shift designations for the rest rule: a night shift on day d
// forbids a morning shift on day d+1.
const (
	DefaultMorningShift = 0
	DefaultNightShift   = 2
)

// Weights holds the objective weighting and the rest-rule shift
// designations for one model build.
type Weights struct {
	Cost       float64
	Fairness   float64
	Preference float64

	// MorningShift and NightShift pick the adjacent-day pair the rest
	// rule applies to. The rule is skipped entirely when either index
	// falls outside the horizon's shift types, or when they coincide.
	MorningShift int
	NightShift   int
}

// DefaultWeights returns the built-in weighting.
func DefaultWeights() Weights {
	return Weights{
		Cost:         DefaultCostWeight,
		Fairness:     DefaultFairnessWeight,
		Preference:   DefaultPreferenceWeight,
		MorningShift: DefaultMorningShift,
		NightShift:   DefaultNightShift,
	}
}

// restRuleApplies reports whether the rest family can be emitted for a
// horizon with the given number of shift types. Partial application is never
// allowed: either both designated types exist and differ, or the whole
// family is skipped.
func (w Weights) restRuleApplies(shiftTypes int) bool {
	if w.MorningShift < 0 || w.NightShift < 0 {
		return false
	}
	if w.MorningShift >= shiftTypes || w.NightShift >= shiftTypes {
		return false
	}
	return w.MorningShift != w.NightShift
}
