package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InspectCmd creates the inspect command: load (or synthesize) an instance
// and print the input summary without building or solving anything.
func InspectCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input-dir]",
		Short: "Load an instance and print a summary of its inputs",
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

			fmt.Println()
			fmt.Print(inst.Summary())
			return nil
		},
	}
}
