package app

import (
	"errors"
	"log/slog"

	"github.com/vk/canonical-data-syncer/internal/options"
)

// ErrOfflineWithoutProbSpecsDir is returned by NewConfig when offline mode is
// requested without a local problem-specifications checkout to work from.
var ErrOfflineWithoutProbSpecsDir = errors.New("offline requires a problem-specifications directory")

// Config is the parsed command line, handed to the syncer once parsing is
// complete. It is never modified after NewConfig returns it.
type Config struct {
	Exercise     string // empty syncs every exercise
	Check        bool
	Mode         options.Mode
	Verbosity    options.Verbosity
	ProbSpecsDir string // empty clones problem-specifications temporarily
	Offline      bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Mode:      options.ModeChoose,
		Verbosity: options.VerbosityNormal,
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Offline && cfg.ProbSpecsDir == "" {
		return nil, ErrOfflineWithoutProbSpecsDir
	}
	return &cfg, nil
}

// LogValue implements slog.LogValuer.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("exercise", c.Exercise),
		slog.Bool("check", c.Check),
		slog.String("mode", c.Mode.String()),
		slog.String("verbosity", c.Verbosity.String()),
		slog.String("prob_specs_dir", c.ProbSpecsDir),
		slog.Bool("offline", c.Offline),
	)
}
