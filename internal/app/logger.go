package app

import (
	"io"
	"log/slog"

	"github.com/vk/canonical-data-syncer/internal/options"
)

// NewLogger creates a text slog.Logger whose level follows the requested
// verbosity. It does not set the global logger.
func NewLogger(verbosity options.Verbosity, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch verbosity {
	case options.VerbosityQuiet:
		level = slog.LevelWarn
	case options.VerbosityDetailed:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
