package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/formulation"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/milp"
)

// ExportCmd creates the export command: build the model and write it in
// CPLEX LP format for an external optimization engine.
func ExportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input-dir]",
		Short: "Build the model and write it in LP format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			outPath, _ := cmd.Flags().GetString("output")

			inst, err := loadInstance(app, dir)
			if err != nil {
				return fmt.Errorf("failed to load instance: %w", err)
			}

			model, err := formulation.Build(inst, app.Cfg.FormulationWeights())
			if err != nil {
				return fmt.Errorf("failed to build model: %w", err)
			}

			app.Logger.Info("Model built",
				zap.Int("variables", len(model.Vars)),
				zap.Int("constraints", len(model.Constraints)))

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer out.Close()

			if err := milp.WriteLP(out, model); err != nil {
				return fmt.Errorf("failed to write LP file: %w", err)
			}

			fmt.Printf("\n✓ Model written to %s (%d variables, %d constraints)\n",
				outPath, len(model.Vars), len(model.Constraints))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "model.lp", "Output file for the LP model")

	return cmd
}
