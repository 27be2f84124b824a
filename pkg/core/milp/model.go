// Package milp holds a solver-agnostic representation of mixed-integer
// linear programs. Building the model and solving it are deliberately
// separated: the scheduling engine emits a Model, and any implementation of
// Solver (the bundled Enumerator, or an external engine fed via the LP
// writer) turns it into a Result.
package milp

import (
	"errors"
	"fmt"
	"math"
)

// ErrModelRejected is wrapped by solvers that refuse a malformed or
// unsupported model before attempting to solve it.
var ErrModelRejected = errors.New("model rejected")

// VarType distinguishes binary decision variables from continuous ones.
type VarType int

const (
	Binary VarType = iota
	Continuous
)

// Op is the relational operator of a constraint row.
type Op int

const (
	Equal Op = iota
	LessEqual
	GreaterEqual
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Sense is the optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Variable describes one column of the model.
type Variable struct {
	Name  string
	Type  VarType
	Lower float64
	Upper float64
	// Obj is the variable's coefficient in the objective function.
	Obj float64
}

// Term is one (variable, coefficient) entry of a sparse constraint row.
type Term struct {
	Var  int
	Coef float64
}

// Constraint is one sparse row: sum of terms Op RHS.
type Constraint struct {
	Label string
	Terms []Term
	Op    Op
	RHS   float64
}

// Model is a complete problem description handed to a Solver.
type Model struct {
	Name        string
	Sense       Sense
	Vars        []Variable
	Constraints []Constraint
}

// AddVar appends a variable and returns its index.
func (m *Model) AddVar(v Variable) int {
	m.Vars = append(m.Vars, v)
	return len(m.Vars) - 1
}

// AddConstraint appends a constraint row.
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// Validate checks structural soundness: every term references an existing
// variable, bounds are ordered, and operators are known. Solvers call this
// before solving and wrap failures in ErrModelRejected.
func (m *Model) Validate() error {
	for i, v := range m.Vars {
		if v.Lower > v.Upper {
			return fmt.Errorf("%w: variable %d (%s) has lower bound %g above upper bound %g",
				ErrModelRejected, i, v.Name, v.Lower, v.Upper)
		}
		if math.IsNaN(v.Obj) {
			return fmt.Errorf("%w: variable %d (%s) has NaN objective coefficient", ErrModelRejected, i, v.Name)
		}
	}
	for i, c := range m.Constraints {
		if c.Op != Equal && c.Op != LessEqual && c.Op != GreaterEqual {
			return fmt.Errorf("%w: constraint %d (%s) has unknown operator", ErrModelRejected, i, c.Label)
		}
		if len(c.Terms) == 0 {
			return fmt.Errorf("%w: constraint %d (%s) has no terms", ErrModelRejected, i, c.Label)
		}
		for _, t := range c.Terms {
			if t.Var < 0 || t.Var >= len(m.Vars) {
				return fmt.Errorf("%w: constraint %d (%s) references variable %d of %d",
					ErrModelRejected, i, c.Label, t.Var, len(m.Vars))
			}
		}
	}
	return nil
}
