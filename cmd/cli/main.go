package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/vk/canonical-data-syncer/internal/app"
	"github.com/vk/canonical-data-syncer/internal/cli"
	"github.com/vk/canonical-data-syncer/internal/ctxlog"
	"github.com/vk/canonical-data-syncer/internal/options"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = cli.DefaultVersion

// main is the entrypoint for the canonical_data_syncer application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:], color.SupportColor()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string, colorize bool) error {
	reg, err := options.Load(cli.DefaultProgram)
	if err != nil {
		return fmt.Errorf("failed to load option registry: %w", err)
	}

	parser := cli.NewParser(reg, outW, cli.WithVersion(version), cli.WithColor(colorize))
	config, shouldExit, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Hand the configuration to the syncer with a logger matching the
	// requested verbosity.
	logger := app.NewLogger(config.Verbosity, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctxlog.FromContext(ctx).Debug("Configuration parsed.", "config", config)
	return nil
}
