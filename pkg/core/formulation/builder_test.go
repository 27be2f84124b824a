package formulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// smallInstance is 2 staff, 3 shift types, 2 days, with staff 1 off on day 1.
func smallInstance(t *testing.T) *instance.Instance {
	t.Helper()

	h := instance.Horizon{Staff: 2, ShiftTypes: 3, Days: 2}
	inst, err := instance.New(h)
	require.NoError(t, err)

	for s := 0; s < h.Staff; s++ {
		for d := 0; d < h.Days; d++ {
			inst.Availability[s][d] = true
		}
		inst.MinWork[s] = 0
		inst.MaxWork[s] = 2
		for ty := 0; ty < h.ShiftTypes; ty++ {
			inst.Preference[s][ty] = 0.5
			for d := 0; d < h.Days; d++ {
				inst.Cost.Set(s, ty, d, 2.0)
			}
		}
	}
	inst.Availability[1][1] = false

	for ty := 0; ty < h.ShiftTypes; ty++ {
		for d := 0; d < h.Days; d++ {
			inst.Coverage[ty][d] = 1
		}
	}
	return inst
}

func countByLabel(m *milp.Model) map[string]int {
	counts := make(map[string]int)
	for _, c := range m.Constraints {
		counts[c.Label]++
	}
	return counts
}

func TestBuild_EmitsVariablesInIndexOrder(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	m, err := Build(inst, DefaultWeights())
	require.NoError(t, err)

	require.Len(t, m.Vars, ix.NumVars())
	assert.Equal(t, milp.Minimize, m.Sense)

	assert.Equal(t, "x_0_0_0", m.Vars[ix.Assignment(0, 0, 0)].Name)
	assert.Equal(t, "x_1_2_1", m.Vars[ix.Assignment(1, 2, 1)].Name)
	assert.Equal(t, "o_1", m.Vars[ix.Overwork(1)].Name)

	for i := 0; i < ix.NumAssignmentVars(); i++ {
		assert.Equal(t, milp.Binary, m.Vars[i].Type)
		assert.Equal(t, 1.0, m.Vars[i].Upper)
	}
	for s := 0; s < inst.Horizon.Staff; s++ {
		assert.Equal(t, milp.Continuous, m.Vars[ix.Overwork(s)].Type)
	}
}

func TestBuild_ObjectiveCoefficients(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	w := Weights{Cost: 5, Fairness: 8, Preference: 6, MorningShift: 0, NightShift: 2}
	m, err := Build(inst, w)
	require.NoError(t, err)

	// cost term 5*2.0 plus preference mismatch 6*(1-0.5).
	assert.InDelta(t, 13.0, m.Vars[ix.Assignment(0, 0, 0)].Obj, 1e-9)
	assert.InDelta(t, 8.0, m.Vars[ix.Overwork(0)].Obj, 1e-9)
}

func TestBuild_ConstraintFamilyCounts(t *testing.T) {
	inst := smallInstance(t)
	h := inst.Horizon

	m, err := Build(inst, DefaultWeights())
	require.NoError(t, err)

	counts := countByLabel(m)
	assert.Equal(t, h.ShiftTypes*h.Days, counts[LabelCoverage])
	assert.Equal(t, h.Staff*h.ShiftTypes*h.Days, counts[LabelAvailable])
	assert.Equal(t, h.Staff*h.Days, counts[LabelOnePerDay])
	assert.Equal(t, h.Staff*(h.Days-1), counts[LabelRest])
	assert.Equal(t, h.Staff, counts[LabelWorkUpper])
	assert.Equal(t, h.Staff, counts[LabelWorkLower])
	assert.Equal(t, h.Staff, counts[LabelFairness])
}

func TestBuild_AvailabilityBoundsTheWholeDay(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	m, err := Build(inst, DefaultWeights())
	require.NoError(t, err)

	// Staff 1 is off on day 1: every shift type of that day gets RHS 0.
	zeros := 0
	for _, c := range m.Constraints {
		if c.Label != LabelAvailable {
			continue
		}
		require.Len(t, c.Terms, 1)
		if c.RHS == 0 {
			zeros++
			v := c.Terms[0].Var
			found := false
			for ty := 0; ty < inst.Horizon.ShiftTypes; ty++ {
				if v == ix.Assignment(1, ty, 1) {
					found = true
				}
			}
			assert.True(t, found, "zero-RHS row must target the unavailable day")
		}
	}
	assert.Equal(t, inst.Horizon.ShiftTypes, zeros)
}

func TestBuild_RestRuleSkippedWithoutDesignatedShifts(t *testing.T) {
	inst := smallInstance(t)
	h := inst.Horizon

	tests := []struct {
		name string
		w    Weights
		want int
	}{
		{"defaults with three shift types", DefaultWeights(), h.Staff * (h.Days - 1)},
		{"night index outside horizon", Weights{Cost: 5, Fairness: 8, Preference: 6, MorningShift: 0, NightShift: 5}, 0},
		{"morning equals night", Weights{Cost: 5, Fairness: 8, Preference: 6, MorningShift: 1, NightShift: 1}, 0},
		{"negative morning", Weights{Cost: 5, Fairness: 8, Preference: 6, MorningShift: -1, NightShift: 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(inst, tt.w)
			require.NoError(t, err)
			assert.Equal(t, tt.want, countByLabel(m)[LabelRest])
		})
	}
}

func TestBuild_RestRowsPairNightWithNextMorning(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	m, err := Build(inst, DefaultWeights())
	require.NoError(t, err)

	for _, c := range m.Constraints {
		if c.Label != LabelRest {
			continue
		}
		require.Len(t, c.Terms, 2)
		assert.Equal(t, milp.LessEqual, c.Op)
		assert.Equal(t, 1.0, c.RHS)

		// First term is the night of day d, second the morning of d+1.
		found := false
		for s := 0; s < inst.Horizon.Staff; s++ {
			if c.Terms[0].Var == ix.Assignment(s, DefaultNightShift, 0) {
				assert.Equal(t, ix.Assignment(s, DefaultMorningShift, 1), c.Terms[1].Var)
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestBuild_WorkAndFairnessRows(t *testing.T) {
	inst := smallInstance(t)
	inst.MinWork[0] = 1
	inst.MaxWork[0] = 2
	ix := NewIndexScheme(inst.Horizon)

	m, err := Build(inst, DefaultWeights())
	require.NoError(t, err)

	target, err := inst.FairnessTarget()
	require.NoError(t, err)

	loadLen := inst.Horizon.ShiftTypes * inst.Horizon.Days

	var sawUpper, sawLower, sawFair bool
	for _, c := range m.Constraints {
		switch c.Label {
		case LabelWorkUpper:
			if c.Terms[0].Var == ix.Assignment(0, 0, 0) {
				assert.Len(t, c.Terms, loadLen)
				assert.Equal(t, milp.LessEqual, c.Op)
				assert.Equal(t, 2.0, c.RHS)
				sawUpper = true
			}
		case LabelWorkLower:
			if c.Terms[0].Var == ix.Assignment(0, 0, 0) {
				assert.Equal(t, milp.GreaterEqual, c.Op)
				assert.Equal(t, 1.0, c.RHS)
				sawLower = true
			}
		case LabelFairness:
			if c.Terms[0].Var == ix.Assignment(0, 0, 0) {
				require.Len(t, c.Terms, loadLen+1)
				last := c.Terms[loadLen]
				assert.Equal(t, ix.Overwork(0), last.Var)
				assert.Equal(t, -1.0, last.Coef)
				assert.InDelta(t, target, c.RHS, 1e-9)
				sawFair = true
			}
		}
	}
	assert.True(t, sawUpper)
	assert.True(t, sawLower)
	assert.True(t, sawFair)
}

func TestBuild_CoverageRowsAreExact(t *testing.T) {
	inst := smallInstance(t)
	inst.Coverage[2][1] = 0

	m, err := Build(inst, DefaultWeights())
	require.NoError(t, err)

	sawZero := false
	for _, c := range m.Constraints {
		if c.Label != LabelCoverage {
			continue
		}
		assert.Equal(t, milp.Equal, c.Op)
		assert.Len(t, c.Terms, inst.Horizon.Staff)
		if c.RHS == 0 {
			sawZero = true
		}
	}
	assert.True(t, sawZero, "the zero-demand cell must still emit its row")
}

func TestBuild_RejectsDegenerateAndOversizedHorizons(t *testing.T) {
	_, err := Build(&instance.Instance{Horizon: instance.Horizon{Staff: 0, ShiftTypes: 1, Days: 1}}, DefaultWeights())
	assert.ErrorIs(t, err, instance.ErrDegenerateHorizon)

	huge := instance.Horizon{Staff: 100000, ShiftTypes: 1000, Days: 100000}
	_, err = Build(&instance.Instance{Horizon: huge}, DefaultWeights())
	assert.ErrorIs(t, err, ErrModelTooLarge)
}
