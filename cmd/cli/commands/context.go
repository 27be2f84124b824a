package commands

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/internal/config"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
)

// AppContext holds the dependencies shared by all commands. Its fields are
// filled by the root command's PersistentPreRunE before any command runs.
type AppContext struct {
	Ctx    context.Context
	Cfg    *config.Config
	Logger *zap.Logger
}

// loadInstance reads an instance from a directory of CSV inputs, or falls
// back to the synthetic toy instance when no directory is given.
func loadInstance(app *AppContext, dir string) (*instance.Instance, error) {
	if dir == "" {
		app.Logger.Info("No input directory given, using the synthetic instance")
		return instance.Synthetic(instance.ToyHorizon)
	}

	h, err := instance.HorizonFromFile(filepath.Join(dir, instance.SizesFile))
	if err != nil {
		return nil, err
	}

	app.Logger.Info("Loading instance",
		zap.String("dir", dir),
		zap.Int("staff", h.Staff),
		zap.Int("shift_types", h.ShiftTypes),
		zap.Int("days", h.Days))

	return instance.Load(h, instance.DirSources(dir))
}

// timeLimit converts the configured limit into a duration.
func timeLimit(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TimeLimitSeconds) * time.Second
}
