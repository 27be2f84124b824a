// Package services orchestrates one scheduling run: build the model from an
// instance, hand it to a solver, and decode the result into a roster.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/formulation"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// Options tunes one run.
type Options struct {
	// TimeLimit bounds the solver call; zero means no limit beyond the
	// caller's context.
	TimeLimit time.Duration

	// Weights for the model build.
	Weights formulation.Weights
}

// Outcome is the result of one run. Roster is empty whenever Status carries
// no solution; Violations are defensive re-validation warnings, never fatal.
type Outcome struct {
	RunID      string
	Status     milp.Status
	Objective  float64
	Roster     *formulation.Roster
	Gaps       []formulation.CoverageGap
	Violations []formulation.Violation
	Elapsed    time.Duration
}

// Run executes build -> solve -> decode -> validate for one instance. Input
// and build errors abort before the solver is called; solver statuses are
// surfaced verbatim on the outcome and never retried here.
func Run(ctx context.Context, inst *instance.Instance, solver milp.Solver, logger *zap.Logger, opts Options) (*Outcome, error) {
	runID := uuid.NewString()
	start := time.Now()

	logger.Info("Building scheduling model",
		zap.String("run_id", runID),
		zap.Int("staff", inst.Horizon.Staff),
		zap.Int("shift_types", inst.Horizon.ShiftTypes),
		zap.Int("days", inst.Horizon.Days))

	model, err := formulation.Build(inst, opts.Weights)
	if err != nil {
		return nil, fmt.Errorf("failed to build model: %w", err)
	}

	logger.Debug("Model built",
		zap.String("run_id", runID),
		zap.Int("variables", len(model.Vars)),
		zap.Int("constraints", len(model.Constraints)))

	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	result, err := solver.Solve(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("solver failed: %w", err)
	}

	logger.Info("Solve finished",
		zap.String("run_id", runID),
		zap.String("status", result.Status.String()))

	ix := formulation.NewIndexScheme(inst.Horizon)
	decoded, err := formulation.Decode(inst, ix, result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode solution: %w", err)
	}

	outcome := &Outcome{
		RunID:     runID,
		Status:    decoded.Status,
		Objective: decoded.Objective,
		Roster:    decoded.Roster,
		Gaps:      decoded.Gaps,
		Elapsed:   time.Since(start),
	}

	if decoded.Status.HasSolution() {
		outcome.Violations = decoded.Roster.Validate(inst)
		for _, v := range outcome.Violations {
			logger.Warn("Decoded roster violates a constraint family",
				zap.String("run_id", runID),
				zap.String("family", v.Family),
				zap.String("description", v.Description))
		}
	}

	return outcome, nil
}
