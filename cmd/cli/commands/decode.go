package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/formulation"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// DecodeCmd creates the decode command: turn a solution vector produced by
// an external solver back into a roster, with the defensive re-validation
// pass applied.
func DecodeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input-dir> <solution-file>",
		Short: "Decode an external solver's solution vector into a roster",
		Long: `Read a solution vector (one value per line, in variable-index order)
produced by an external solver for a model exported from the same inputs,
and print the decoded roster.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, solutionPath := args[0], args[1]
			statusName, _ := cmd.Flags().GetString("status")

			status, err := parseStatus(statusName)
			if err != nil {
				return err
			}

			inst, err := loadInstance(app, dir)
			if err != nil {
				return fmt.Errorf("failed to load instance: %w", err)
			}

			values, err := readVector(solutionPath)
			if err != nil {
				return fmt.Errorf("failed to read solution vector: %w", err)
			}

			ix := formulation.NewIndexScheme(inst.Horizon)
			decoded, err := formulation.Decode(inst, ix, &milp.Result{Status: status, Values: values})
			if err != nil {
				return fmt.Errorf("failed to decode solution: %w", err)
			}

			app.Logger.Info("Solution decoded",
				zap.String("status", status.String()),
				zap.Int("values", len(values)))

			if !decoded.Status.HasSolution() {
				fmt.Printf("\nSolver status: %s - no roster produced\n", decoded.Status)
				return nil
			}

			printRoster(app, decoded.Roster)
			printViolations(decoded.Roster.Validate(inst))
			return nil
		},
	}

	cmd.Flags().String("status", "optimal", "Solver status for the vector (optimal, suboptimal, infeasible, unbounded, timelimit)")

	return cmd
}

func parseStatus(name string) (milp.Status, error) {
	switch strings.ToLower(name) {
	case "optimal":
		return milp.StatusOptimal, nil
	case "suboptimal":
		return milp.StatusSuboptimal, nil
	case "infeasible":
		return milp.StatusInfeasible, nil
	case "unbounded":
		return milp.StatusUnbounded, nil
	case "timelimit":
		return milp.StatusTimeLimitNoIncumbent, nil
	default:
		return 0, fmt.Errorf("unknown status %q", name)
	}
}

// readVector parses one float per line; blank lines are skipped.
func readVector(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values []float64
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a number", i+1, line)
		}
		values = append(values, v)
	}
	return values, nil
}
