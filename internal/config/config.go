package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/formulation"
)

const configFileName = "nsp_config.yaml"

// Weights configures the three objective terms.
type Weights struct {
	Cost       float64 `yaml:"cost" env:"NSP_WEIGHT_COST" validate:"gte=0"`
	Fairness   float64 `yaml:"fairness" env:"NSP_WEIGHT_FAIRNESS" validate:"gte=0"`
	Preference float64 `yaml:"preference" env:"NSP_WEIGHT_PREFERENCE" validate:"gte=0"`
}

// Config is the application configuration. Values come from built-in
// defaults, then an optional YAML file, then environment overrides.
type Config struct {
	Weights Weights `yaml:"weights"`

	// MorningShift and NightShift designate the adjacent-day pair of the
	// rest rule.
	MorningShift int `yaml:"morningShift" env:"NSP_MORNING_SHIFT" validate:"gte=0"`
	NightShift   int `yaml:"nightShift" env:"NSP_NIGHT_SHIFT" validate:"gte=0"`

	// TimeLimitSeconds bounds each solver call; 0 disables the limit.
	TimeLimitSeconds int `yaml:"timeLimitSeconds" env:"NSP_TIME_LIMIT_SECONDS" validate:"gte=0"`

	// MaxEnumerationVars caps the bundled enumeration solver; 0 keeps the
	// solver's default.
	MaxEnumerationVars int `yaml:"maxEnumerationVars" env:"NSP_MAX_ENUM_VARS" validate:"gte=0"`

	// RosterStart, when set (YYYY-MM-DD), maps day indices to calendar
	// dates in roster output.
	RosterStart string `yaml:"rosterStart,omitempty" env:"NSP_ROSTER_START" validate:"omitempty,datetime=2006-01-02"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Weights: Weights{
			Cost:       formulation.DefaultCostWeight,
			Fairness:   formulation.DefaultFairnessWeight,
			Preference: formulation.DefaultPreferenceWeight,
		},
		MorningShift:     formulation.DefaultMorningShift,
		NightShift:       formulation.DefaultNightShift,
		TimeLimitSeconds: 60,
	}
}

// Load builds the configuration: defaults, then nsp_config.yaml from the
// current or home directory if present, then environment overrides.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the configuration from a specific file. An empty path
// skips the file layer entirely.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate runs struct validation on a configuration.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// FormulationWeights converts the configuration into build weights.
func (c *Config) FormulationWeights() formulation.Weights {
	return formulation.Weights{
		Cost:         c.Weights.Cost,
		Fairness:     c.Weights.Fairness,
		Preference:   c.Weights.Preference,
		MorningShift: c.MorningShift,
		NightShift:   c.NightShift,
	}
}

// findConfigFile searches the current directory then the home directory.
// A missing file is not an error: the defaults stand on their own.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat config file: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}

	homePath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", nil
}
