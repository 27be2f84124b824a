package formulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

func TestDecode_NonSolutionStatusYieldsEmptyRoster(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	for _, status := range []milp.Status{
		milp.StatusInfeasible,
		milp.StatusUnbounded,
		milp.StatusTimeLimitNoIncumbent,
	} {
		t.Run(status.String(), func(t *testing.T) {
			out, err := Decode(inst, ix, &milp.Result{Status: status})
			require.NoError(t, err)

			assert.Equal(t, status, out.Status)
			assert.True(t, out.Roster.Empty())
			assert.Empty(t, out.Gaps)
			assert.Zero(t, out.Objective)
		})
	}
}

func TestDecode_RejectsWrongVectorLength(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	_, err := Decode(inst, ix, &milp.Result{
		Status: milp.StatusOptimal,
		Values: make([]float64, 3),
	})
	assert.Error(t, err)
}

func TestDecode_ThresholdSplitsFractionalValues(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	values := make([]float64, ix.NumVars())
	values[ix.Assignment(0, 0, 0)] = 0.9
	values[ix.Assignment(0, 1, 0)] = 0.5 // at the threshold, not above it
	values[ix.Assignment(1, 2, 1)] = 1.0

	out, err := Decode(inst, ix, &milp.Result{Status: milp.StatusOptimal, Objective: 7, Values: values})
	require.NoError(t, err)

	assert.Equal(t, 7.0, out.Objective)
	assert.True(t, out.Roster.IsAssigned(0, 0, 0))
	assert.False(t, out.Roster.IsAssigned(0, 1, 0))
	assert.True(t, out.Roster.IsAssigned(1, 2, 1))
}

func TestDecode_ReportsCoverageGaps(t *testing.T) {
	inst := smallInstance(t) // every cell requires exactly 1
	ix := NewIndexScheme(inst.Horizon)

	values := make([]float64, ix.NumVars())
	// Shift 0 day 0 gets both staff; every other cell stays empty.
	values[ix.Assignment(0, 0, 0)] = 1
	values[ix.Assignment(1, 0, 0)] = 1

	out, err := Decode(inst, ix, &milp.Result{Status: milp.StatusOptimal, Values: values})
	require.NoError(t, err)

	require.NotEmpty(t, out.Gaps)
	assert.Equal(t, CoverageGap{Shift: 0, Day: 0, Extra: 1}, out.Gaps[0])
	unmet := 0
	for _, g := range out.Gaps[1:] {
		assert.Equal(t, 1, g.Unmet)
		unmet++
	}
	assert.Equal(t, inst.Horizon.ShiftTypes*inst.Horizon.Days-1, unmet)
}

func TestEncodeRoster_RejectsMismatchedHorizon(t *testing.T) {
	inst := smallInstance(t)
	ix := NewIndexScheme(inst.Horizon)

	r := NewRoster(instance.Horizon{Staff: 4, ShiftTypes: 1, Days: 1})
	_, err := EncodeRoster(inst, ix, r)
	assert.Error(t, err)
}

func TestEncodeRoster_SetsOverworkAboveTarget(t *testing.T) {
	inst := smallInstance(t) // demand 6 over 2 staff, target 3
	ix := NewIndexScheme(inst.Horizon)

	r := NewRoster(inst.Horizon)
	// Staff 0 works 4 shifts, staff 1 works 2.
	r.Assign(0, 0, 0)
	r.Assign(0, 1, 0)
	r.Assign(0, 0, 1)
	r.Assign(0, 1, 1)
	r.Assign(1, 2, 0)
	r.Assign(1, 2, 1)

	values, err := EncodeRoster(inst, ix, r)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, values[ix.Overwork(0)], 1e-9)
	assert.InDelta(t, 0.0, values[ix.Overwork(1)], 1e-9)
	assert.InDelta(t, 1.0, values[ix.Assignment(0, 1, 1)], 1e-9)
	assert.InDelta(t, 0.0, values[ix.Assignment(1, 0, 0)], 1e-9)
}

// toyRoster fills the synthetic fortnight exactly: per day, a rotating window
// of 13 staff covers 5+5+3 headcount, which keeps every load inside 6..10.
func toyRoster(h instance.Horizon, coverage [][]int) *Roster {
	r := NewRoster(h)
	for d := 0; d < h.Days; d++ {
		k := 0
		for ty := 0; ty < h.ShiftTypes; ty++ {
			for n := 0; n < coverage[ty][d]; n++ {
				r.Assign((d*13+k)%h.Staff, ty, d)
				k++
			}
		}
	}
	return r
}

func TestRoundTrip_SyntheticFortnight(t *testing.T) {
	inst, err := instance.Synthetic(instance.ToyHorizon)
	require.NoError(t, err)
	ix := NewIndexScheme(inst.Horizon)

	r := toyRoster(inst.Horizon, inst.Coverage)

	values, err := EncodeRoster(inst, ix, r)
	require.NoError(t, err)

	out, err := Decode(inst, ix, &milp.Result{Status: milp.StatusOptimal, Values: values})
	require.NoError(t, err)

	assert.Empty(t, out.Gaps)
	assert.Equal(t, r.Assigned, out.Roster.Assigned)
	assert.Empty(t, out.Roster.Validate(inst), "the fixture satisfies every hard family")
}
