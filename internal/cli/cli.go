package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gookit/color"
	"github.com/vk/canonical-data-syncer/internal/app"
	"github.com/vk/canonical-data-syncer/internal/options"
)

const (
	DefaultProgram = "canonical_data_syncer"
	DefaultVersion = "0.1.0"
)

var errorStyle = color.New(color.FgRed, color.OpBold)

// Parser turns command-line arguments into an app.Config. Help, version and
// error output is written to its output writer.
type Parser struct {
	reg     *options.Registry
	out     io.Writer
	version string
	color   bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithVersion sets the version printed by --version.
func WithVersion(version string) ParserOption {
	return func(p *Parser) {
		p.version = version
	}
}

// WithColor enables the colored "Error: " prefix.
func WithColor(enabled bool) ParserOption {
	return func(p *Parser) {
		p.color = enabled
	}
}

// NewParser creates a Parser over the given option registry.
func NewParser(reg *options.Registry, out io.Writer, opts ...ParserOption) *Parser {
	p := &Parser{
		reg:     reg,
		out:     out,
		version: DefaultVersion,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse processes command-line arguments with the default registry and
// version. See Parser.Parse.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return NewParser(options.MustLoad(DefaultProgram), output).Parse(args)
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly after help or version
// output, or an *ExitError once the error and help text have been written.
func (p *Parser) Parse(args []string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.", "args", len(args))

	s := newScanner(p.reg, args)
	act, err := s.scan()
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, false, p.fail(parseErr)
		}
		return nil, false, err
	}

	switch act {
	case actionHelp:
		slog.Debug("Help requested, printing usage and exiting.")
		p.printHelp()
		return nil, true, nil
	case actionVersion:
		slog.Debug("Version requested, printing it and exiting.")
		p.printVersion()
		return nil, true, nil
	}

	config, err := app.NewConfig(s.cfg)
	if err != nil {
		if errors.Is(err, app.ErrOfflineWithoutProbSpecsDir) {
			msg := fmt.Sprintf("'%s' was given without passing '%s'",
				p.longForm(options.OptOffline), p.longForm(options.OptProbSpecsDir))
			return nil, false, p.fail(&ParseError{Kind: ErrInconsistentFlags, Message: msg})
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// fail reports err and turns it into the exit outcome for the process.
func (p *Parser) fail(err *ParseError) *ExitError {
	slog.Debug("CLI parser failed.", "error", err)
	p.printError(err.Message)
	p.printHelp()
	return &ExitError{Code: 1, Message: err.Message, Err: err}
}

// printError writes the error line followed by a blank line. Errors go to the
// same writer as the help text.
func (p *Parser) printError(msg string) {
	prefix := "Error: "
	if p.color {
		prefix = errorStyle.Sprint(prefix)
	}
	fmt.Fprintf(p.out, "%s%s\n\n", prefix, msg)
}

func (p *Parser) printHelp() {
	fmt.Fprint(p.out, p.reg.Usage())
}

func (p *Parser) printVersion() {
	fmt.Fprintf(p.out, "%s v%s\n", p.reg.Program(), p.version)
}

func (p *Parser) longForm(opt options.Option) string {
	return "--" + p.reg.Info(opt).Name
}
