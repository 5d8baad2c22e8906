package options

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNoMember is returned by Coerce when a value matches no member of the
// target enumeration.
var ErrNoMember = errors.New("no matching member")

// Enum is satisfied by the closed value sets an option can be coerced into.
type Enum interface {
	~uint8
	String() string
}

// Mode is the strategy for handling test cases missing from a track.
type Mode uint8

const (
	ModeChoose Mode = iota
	ModeInclude
	ModeExclude
)

var modeNames = [...]string{
	ModeChoose:  "choose",
	ModeInclude: "include",
	ModeExclude: "exclude",
}

func (m Mode) String() string {
	if int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Modes returns every Mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeChoose, ModeInclude, ModeExclude}
}

// Verbosity controls how much the syncer prints.
type Verbosity uint8

const (
	VerbosityQuiet Verbosity = iota
	VerbosityNormal
	VerbosityDetailed
)

var verbosityNames = [...]string{
	VerbosityQuiet:    "quiet",
	VerbosityNormal:   "normal",
	VerbosityDetailed: "detailed",
}

func (v Verbosity) String() string {
	if int(v) >= len(verbosityNames) {
		return "unknown"
	}
	return verbosityNames[v]
}

// Verbosities returns every Verbosity in declaration order.
func Verbosities() []Verbosity {
	return []Verbosity{VerbosityQuiet, VerbosityNormal, VerbosityDetailed}
}

// Coerce maps a user-supplied value onto one of members. Matching is case
// insensitive. A single character selects the first member, in declaration
// order, whose name starts with it; anything longer must be a full name.
func Coerce[T Enum](members []T, val string) (T, error) {
	val = strings.ToLower(val)
	if utf8.RuneCountInString(val) == 1 {
		for _, m := range members {
			if strings.HasPrefix(m.String(), val) {
				val = m.String()
				break
			}
		}
	}
	for _, m := range members {
		if m.String() == val {
			return m, nil
		}
	}
	var zero T
	return zero, ErrNoMember
}

// memberNames renders the names of members in declaration order.
func memberNames[T Enum](members []T) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}
	return names
}
