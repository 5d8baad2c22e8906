package options

// Option identifies one recognized command-line option. The ordinal fixes the
// order options are listed in help output.
type Option uint8

const (
	OptExercise Option = iota
	OptCheck
	OptMode
	OptVerbosity
	OptProbSpecsDir
	OptOffline
	OptHelp
	OptVersion

	numOptions
)

// optionNames holds the canonical kebab-case name of every Option.
var optionNames = [numOptions]string{
	OptExercise:     "exercise",
	OptCheck:        "check",
	OptMode:         "mode",
	OptVerbosity:    "verbosity",
	OptProbSpecsDir: "prob-specs-dir",
	OptOffline:      "offline",
	OptHelp:         "help",
	OptVersion:      "version",
}

// String returns the canonical kebab-case name of the option.
func (o Option) String() string {
	if o >= numOptions {
		return "unknown"
	}
	return optionNames[o]
}

// All returns every Option in declaration order.
func All() []Option {
	all := make([]Option, 0, numOptions)
	for o := Option(0); o < numOptions; o++ {
		all = append(all, o)
	}
	return all
}

// NoShort is the sentinel short form of an option that can only be spelled
// out in full.
const NoShort rune = 0

// Info is the registry entry for a single Option.
type Info struct {
	Option      Option
	Name        string
	Short       rune
	Param       string
	Description string

	// Values lists the allowed values of an enum-valued option, in
	// declaration order. It is empty for every other option.
	Values []string
}

// TakesValue reports whether the option needs a value. Options without a
// param placeholder are boolean switches.
func (i Info) TakesValue() bool {
	return i.Param != ""
}

// HasShort reports whether the option can be given as a single character.
func (i Info) HasShort() bool {
	return i.Short != NoShort
}
