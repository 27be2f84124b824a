package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
)

// SynthCmd creates the synth command: write the synthetic toy instance out
// as the conventional CSV inputs, for demos and spreadsheet cross-checks.
func SynthCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth <output-dir>",
		Short: "Write the synthetic toy instance as CSV input files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			staff, _ := cmd.Flags().GetInt("staff")
			shiftTypes, _ := cmd.Flags().GetInt("shift-types")
			days, _ := cmd.Flags().GetInt("days")

			h := instance.Horizon{Staff: staff, ShiftTypes: shiftTypes, Days: days}
			inst, err := instance.Synthetic(h)
			if err != nil {
				return fmt.Errorf("failed to synthesize instance: %w", err)
			}

			if err := inst.Dump(dir); err != nil {
				return fmt.Errorf("failed to write instance files: %w", err)
			}

			app.Logger.Info("Synthetic instance written",
				zap.String("dir", dir),
				zap.Int("staff", h.Staff),
				zap.Int("shift_types", h.ShiftTypes),
				zap.Int("days", h.Days))

			fmt.Printf("\n✓ Synthetic instance written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().Int("staff", instance.ToyHorizon.Staff, "Number of staff")
	cmd.Flags().Int("shift-types", instance.ToyHorizon.ShiftTypes, "Number of shift types")
	cmd.Flags().Int("days", instance.ToyHorizon.Days, "Horizon length in days")

	return cmd
}
