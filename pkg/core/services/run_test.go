package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/formulation"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// fullDemandInstance needs both staff members on the single shift of its
// single day.
func fullDemandInstance(t *testing.T) *instance.Instance {
	t.Helper()

	inst, err := instance.New(instance.Horizon{Staff: 2, ShiftTypes: 1, Days: 1})
	require.NoError(t, err)

	for s := 0; s < 2; s++ {
		inst.Availability[s][0] = true
		inst.MinWork[s] = 0
		inst.MaxWork[s] = 1
		inst.Preference[s][0] = 1.0
		inst.Cost.Set(s, 0, 0, 1.0)
	}
	inst.Coverage[0][0] = 2
	return inst
}

func TestRun_AssignsEveryoneWhenDemandIsFull(t *testing.T) {
	inst := fullDemandInstance(t)

	outcome, err := Run(context.Background(), inst, &milp.Enumerator{}, zap.NewNop(), Options{
		Weights: formulation.DefaultWeights(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, outcome.RunID)
	assert.Equal(t, milp.StatusOptimal, outcome.Status)
	assert.True(t, outcome.Roster.IsAssigned(0, 0, 0))
	assert.True(t, outcome.Roster.IsAssigned(1, 0, 0))
	assert.Empty(t, outcome.Gaps)
	assert.Empty(t, outcome.Violations)
	assert.Greater(t, outcome.Elapsed, time.Duration(0))
}

func TestRun_InfeasibleDemandYieldsEmptyRoster(t *testing.T) {
	inst, err := instance.New(instance.Horizon{Staff: 1, ShiftTypes: 1, Days: 1})
	require.NoError(t, err)

	// The only staff member is off but still owes one shift.
	inst.Availability[0][0] = false
	inst.MinWork[0] = 1
	inst.MaxWork[0] = 1
	inst.Coverage[0][0] = 0
	inst.Preference[0][0] = 1.0

	outcome, err := Run(context.Background(), inst, &milp.Enumerator{}, zap.NewNop(), Options{
		Weights: formulation.DefaultWeights(),
	})
	require.NoError(t, err)

	assert.Equal(t, milp.StatusInfeasible, outcome.Status)
	assert.True(t, outcome.Roster.Empty())
	assert.Empty(t, outcome.Violations)
}

func TestRun_RestRuleSeparatesNightFromNextMorning(t *testing.T) {
	// One night shift on day 0 and one morning shift on day 1, with staff 0
	// far cheaper than staff 1. Without the rest rule the optimum would hand
	// staff 0 both shifts; the rule forces them apart.
	inst, err := instance.New(instance.Horizon{Staff: 2, ShiftTypes: 3, Days: 2})
	require.NoError(t, err)

	for s := 0; s < 2; s++ {
		for d := 0; d < 2; d++ {
			inst.Availability[s][d] = true
		}
		inst.MinWork[s] = 0
		inst.MaxWork[s] = 2
		for ty := 0; ty < 3; ty++ {
			inst.Preference[s][ty] = 1.0
			for d := 0; d < 2; d++ {
				inst.Cost.Set(s, ty, d, float64(s)*10.0)
			}
		}
	}
	inst.Coverage[formulation.DefaultNightShift][0] = 1
	inst.Coverage[formulation.DefaultMorningShift][1] = 1

	outcome, err := Run(context.Background(), inst, &milp.Enumerator{}, zap.NewNop(), Options{
		Weights: formulation.DefaultWeights(),
	})
	require.NoError(t, err)

	require.Equal(t, milp.StatusOptimal, outcome.Status)
	assert.Empty(t, outcome.Gaps)
	assert.Empty(t, outcome.Violations)
	for s := 0; s < 2; s++ {
		night := outcome.Roster.IsAssigned(s, formulation.DefaultNightShift, 0)
		morning := outcome.Roster.IsAssigned(s, formulation.DefaultMorningShift, 1)
		assert.False(t, night && morning, "staff %d works the night and the next morning", s)
	}
}

func TestRun_DistinctRunIDsPerCall(t *testing.T) {
	inst := fullDemandInstance(t)
	opts := Options{Weights: formulation.DefaultWeights()}

	first, err := Run(context.Background(), inst, &milp.Enumerator{}, zap.NewNop(), opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), inst, &milp.Enumerator{}, zap.NewNop(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_BuildErrorAbortsBeforeSolving(t *testing.T) {
	inst := &instance.Instance{Horizon: instance.Horizon{Staff: 0, ShiftTypes: 1, Days: 1}}

	_, err := Run(context.Background(), inst, &failingSolver{}, zap.NewNop(), Options{
		Weights: formulation.DefaultWeights(),
	})
	assert.ErrorIs(t, err, instance.ErrDegenerateHorizon)
}

func TestRun_SolverErrorIsWrapped(t *testing.T) {
	inst := fullDemandInstance(t)

	_, err := Run(context.Background(), inst, &failingSolver{}, zap.NewNop(), Options{
		Weights: formulation.DefaultWeights(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errSolverDown)
}

func TestRun_TimeLimitBoundsTheSolve(t *testing.T) {
	inst := fullDemandInstance(t)

	recorder := &deadlineRecorder{}
	_, err := Run(context.Background(), inst, recorder, zap.NewNop(), Options{
		TimeLimit: 30 * time.Second,
		Weights:   formulation.DefaultWeights(),
	})
	require.NoError(t, err)

	assert.True(t, recorder.hadDeadline, "the solver context must carry the time limit")
}

var errSolverDown = errors.New("solver down")

type failingSolver struct{}

func (failingSolver) Solve(context.Context, *milp.Model) (*milp.Result, error) {
	return nil, errSolverDown
}

// deadlineRecorder notes whether its context had a deadline, then reports
// infeasibility so the run completes.
type deadlineRecorder struct {
	hadDeadline bool
}

func (r *deadlineRecorder) Solve(ctx context.Context, _ *milp.Model) (*milp.Result, error) {
	_, r.hadDeadline = ctx.Deadline()
	return &milp.Result{Status: milp.StatusInfeasible}, nil
}
