package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/canonical-data-syncer/internal/options"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	expected := Config{
		Exercise:     "",
		Check:        false,
		Mode:         options.ModeChoose,
		Verbosity:    options.VerbosityNormal,
		ProbSpecsDir: "",
		Offline:      false,
	}
	if diff := cmp.Diff(expected, DefaultConfig()); diff != "" {
		t.Errorf("DefaultConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		cfg       Config
		expectErr error
	}{
		{
			name: "defaults are valid",
			cfg:  DefaultConfig(),
		},
		{
			name: "offline with prob-specs dir",
			cfg:  Config{Offline: true, ProbSpecsDir: "./x"},
		},
		{
			name:      "offline without prob-specs dir",
			cfg:       Config{Offline: true},
			expectErr: ErrOfflineWithoutProbSpecsDir,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestConfig_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &Config{Exercise: "two-fer", Mode: options.ModeInclude, Verbosity: options.VerbosityDetailed}

	logger.Info("parsed", "config", cfg)

	out := buf.String()
	assert.Contains(t, out, "config.exercise=two-fer")
	assert.Contains(t, out, "config.mode=include")
	assert.Contains(t, out, "config.verbosity=detailed")
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		verbosity options.Verbosity
		enabled   slog.Level
		disabled  slog.Level
	}{
		{verbosity: options.VerbosityQuiet, enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{verbosity: options.VerbosityNormal, enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{verbosity: options.VerbosityDetailed, enabled: slog.LevelDebug, disabled: slog.LevelDebug - 1},
	}

	for _, tc := range testCases {
		t.Run(tc.verbosity.String(), func(t *testing.T) {
			logger := NewLogger(tc.verbosity, &bytes.Buffer{})
			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tc.enabled))
			assert.False(t, logger.Enabled(ctx, tc.disabled))
		})
	}
}
