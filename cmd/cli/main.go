package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/cmd/cli/commands"
	"github.com/WinterJet2021/May-Win-NSP-Project/internal/config"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/utils/logging"
)

var (
	env        string
	configPath string
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "nsp",
		Short: "Staff scheduling model engine",
		Long: `Build staff scheduling problems as mixed-integer linear programs,
solve small instances in-process, and decode solver output into rosters.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment label for log files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: nsp_config.yaml lookup)")

	rootCmd.AddCommand(commands.InspectCmd(app))
	rootCmd.AddCommand(commands.SynthCmd(app))
	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.SolveCmd(app))
	rootCmd.AddCommand(commands.DecodeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp fills the shared application context: logger first, then config.
func initApp(app *commands.AppContext) error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application", zap.String("environment", env))

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded",
		zap.Float64("weight_cost", cfg.Weights.Cost),
		zap.Float64("weight_fairness", cfg.Weights.Fairness),
		zap.Float64("weight_preference", cfg.Weights.Preference))

	app.Ctx = context.Background()
	app.Cfg = cfg
	app.Logger = logger

	return nil
}
