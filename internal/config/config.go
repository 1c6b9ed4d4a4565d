// Package config loads CLI defaults from the environment. A .env file in the
// working directory is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"goab/domain/core"

	"github.com/joho/godotenv"
)

// Config holds the analysis defaults the CLI starts from. Flags override
// everything here.
type Config struct {
	// Alpha is the default significance level (AB_ALPHA).
	Alpha float64
	// Power is the default statistical power for sample size planning
	// (AB_POWER).
	Power float64
	// DataFile is the default tabular input for continuous analyses
	// (AB_DATA_FILE).
	DataFile string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Alpha:    0.05,
		Power:    0.80,
		DataFile: os.Getenv("AB_DATA_FILE"),
	}

	var err error
	if cfg.Alpha, err = loadRatio("AB_ALPHA", cfg.Alpha); err != nil {
		return nil, fmt.Errorf("%w: AB_ALPHA %v", core.ErrAlphaOutOfRange, err)
	}
	if cfg.Power, err = loadRatio("AB_POWER", cfg.Power); err != nil {
		return nil, fmt.Errorf("%w: AB_POWER %v", core.ErrPowerOutOfRange, err)
	}
	return cfg, nil
}

// loadRatio reads an open-interval (0,1) float from the environment,
// returning fallback when the variable is unset.
func loadRatio(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v >= 1 {
		return 0, fmt.Errorf("value %g outside (0,1)", v)
	}
	return v, nil
}
