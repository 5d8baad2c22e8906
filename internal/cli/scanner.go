package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vk/canonical-data-syncer/internal/app"
	"github.com/vk/canonical-data-syncer/internal/options"
)

// action tells Parse how to continue once the scanner stops.
type action int

const (
	actionContinue action = iota
	actionHelp
	actionVersion
)

// scanner walks the arguments once, filling cfg as options are resolved.
type scanner struct {
	reg  *options.Registry
	args []string
	pos  int
	cfg  app.Config
}

func newScanner(reg *options.Registry, args []string) *scanner {
	return &scanner{
		reg:  reg,
		args: args,
		cfg:  app.DefaultConfig(),
	}
}

// scan classifies every argument and applies it. It stops early at a "--"
// terminator, on a help or version request, or at the first error.
func (s *scanner) scan() (action, error) {
	for ; s.pos < len(s.args); s.pos++ {
		arg := s.args[s.pos]

		var act action
		var err error
		switch {
		case arg == "--":
			slog.Debug("Argument terminator reached.", "ignored", len(s.args)-s.pos-1)
			return actionContinue, nil
		case strings.HasPrefix(arg, "--"):
			key, val, hasVal := splitInline(arg[2:])
			act, err = s.option("--", key, val, hasVal)
		case len(arg) > 1 && arg[0] == '-':
			act, err = s.shortCluster(arg[1:])
		default:
			act, err = s.argument(arg)
		}

		if err != nil || act != actionContinue {
			return act, err
		}
	}
	return actionContinue, nil
}

// shortCluster handles the text after a single '-'. Switches may be grouped,
// as in "-co"; a value-bearing option takes the rest of the cluster as its
// value, as in "-etwo-fer" or "-e=two-fer".
func (s *scanner) shortCluster(body string) (action, error) {
	for body != "" {
		_, size := utf8.DecodeRuneInString(body)
		key, rest := body[:size], body[size:]

		if rest != "" && isInlineSeparator(rest[0]) {
			return s.option("-", key, rest[1:], true)
		}
		if rest != "" && s.takesValue(key) {
			return s.option("-", key, rest, true)
		}

		act, err := s.option("-", key, "", false)
		if err != nil || act != actionContinue {
			return act, err
		}
		body = rest
	}
	return actionContinue, nil
}

// option resolves key to an Option and applies it. A value-bearing option
// without an inline value takes the next argument, unless that argument is
// itself an option.
func (s *scanner) option(prefix, key, val string, hasVal bool) (action, error) {
	token := prefix + key
	opt, ok := s.reg.Lookup(key)
	if !ok {
		return actionContinue, s.unknownOption(token, key)
	}

	if s.reg.Info(opt).TakesValue() {
		if !hasVal {
			val, hasVal = s.next()
		}
		if !hasVal || val == "" {
			return actionContinue, &ParseError{
				Kind:    ErrMissingValue,
				Message: fmt.Sprintf("'%s' was given without a value", token),
			}
		}
	}

	slog.Debug("Option resolved.", "token", token, "option", opt.String())
	return s.apply(opt, token, val)
}

func (s *scanner) apply(opt options.Option, token, val string) (action, error) {
	switch opt {
	case options.OptExercise:
		s.cfg.Exercise = val
	case options.OptCheck:
		s.cfg.Check = true
	case options.OptMode:
		mode, err := options.Coerce(options.Modes(), val)
		if err != nil {
			return actionContinue, invalidValue(token, val)
		}
		s.cfg.Mode = mode
	case options.OptVerbosity:
		verbosity, err := options.Coerce(options.Verbosities(), val)
		if err != nil {
			return actionContinue, invalidValue(token, val)
		}
		s.cfg.Verbosity = verbosity
	case options.OptProbSpecsDir:
		s.cfg.ProbSpecsDir = val
	case options.OptOffline:
		s.cfg.Offline = true
	case options.OptHelp:
		return actionHelp, nil
	case options.OptVersion:
		return actionVersion, nil
	default:
		panic(fmt.Sprintf("cli: option %q has no handler", opt))
	}
	return actionContinue, nil
}

// argument handles a bare argument. The only one accepted is "help".
func (s *scanner) argument(arg string) (action, error) {
	if strings.ToLower(arg) == options.OptHelp.String() {
		return actionHelp, nil
	}
	return actionContinue, &ParseError{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("invalid argument: '%s'", arg),
	}
}

// next consumes the following argument as a value.
func (s *scanner) next() (string, bool) {
	if s.pos+1 >= len(s.args) {
		return "", false
	}
	candidate := s.args[s.pos+1]
	if len(candidate) > 1 && candidate[0] == '-' {
		return "", false
	}
	s.pos++
	return candidate, true
}

func (s *scanner) takesValue(key string) bool {
	opt, ok := s.reg.Lookup(key)
	return ok && s.reg.Info(opt).TakesValue()
}

func (s *scanner) unknownOption(token, key string) *ParseError {
	msg := fmt.Sprintf("invalid option: '%s'", token)
	if opt, ok := s.reg.Suggest(key); ok {
		msg += fmt.Sprintf(" (did you mean '--%s'?)", opt)
	}
	return &ParseError{Kind: ErrUnknownOption, Message: msg}
}

func invalidValue(token, val string) *ParseError {
	return &ParseError{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("invalid value for '%s': '%s'", token, val),
	}
}

// splitInline splits "name=value" or "name:value" at the first separator.
func splitInline(body string) (key, val string, hasVal bool) {
	if i := strings.IndexAny(body, "=:"); i >= 0 {
		return body[:i], body[i+1:], true
	}
	return body, "", false
}

func isInlineSeparator(c byte) bool {
	return c == '=' || c == ':'
}
