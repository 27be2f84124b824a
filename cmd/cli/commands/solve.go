package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/services"
)

// SolveCmd creates the solve command. It runs the bundled enumeration
// solver, which only accepts small instances; larger models go through
// export and an external engine instead.
func SolveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [input-dir]",
		Short: "Build and solve a small instance in-process, then print the roster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}

			inst, err := loadInstance(app, dir)
			if err != nil {
				return fmt.Errorf("failed to load instance: %w", err)
			}

			solver := &milp.Enumerator{MaxBinaryVars: app.Cfg.MaxEnumerationVars}
			outcome, err := services.Run(app.Ctx, inst, solver, app.Logger, services.Options{
				TimeLimit: timeLimit(app.Cfg),
				Weights:   app.Cfg.FormulationWeights(),
			})
			if err != nil {
				return fmt.Errorf("solve failed: %w", err)
			}

			printOutcome(app, inst, outcome)
			return nil
		},
	}
}
