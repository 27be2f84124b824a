package milp

import (
	"context"
	"fmt"
)

// Status is a solver-reported outcome. Non-optimal statuses are data, not
// errors: callers decide policy (no automatic retries happen here).
type Status int

const (
	StatusOptimal Status = iota
	StatusSuboptimal
	StatusInfeasible
	StatusUnbounded
	// StatusTimeLimitNoIncumbent means the time limit expired before any
	// feasible point was found. Callers treat it like infeasibility for
	// roster purposes.
	StatusTimeLimitNoIncumbent
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusSuboptimal:
		return "suboptimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimeLimitNoIncumbent:
		return "time limit reached without incumbent"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// HasSolution reports whether the status carries a usable solution vector.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusSuboptimal
}

// Result is what a solver hands back: a status, the objective value, and a
// value per variable. Values is only meaningful when Status.HasSolution().
type Result struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Solver optimizes a model. Implementations must honor the context deadline
// and report it as Suboptimal (incumbent found) or TimeLimitNoIncumbent
// rather than returning an error.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Result, error)
}
