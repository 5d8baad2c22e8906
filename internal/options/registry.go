package options

import (
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// maxSuggestionDistance bounds how far a mistyped key may be from an option
// name and still be offered as a suggestion.
const maxSuggestionDistance = 2

// Registry holds the Info of every Option and the lookup tables derived from
// them. It is immutable once Load returns, apart from the lazily rendered
// usage text.
type Registry struct {
	program string
	infos   [numOptions]Info
	byKey   map[string]Option
	byShort map[rune]Option

	usageOnce sync.Once
	usage     string
}

// Load builds the Registry from the embedded option manifest. program is the
// name shown in the usage line of the help text.
func Load(program string) (*Registry, error) {
	return load(program, manifestSource, manifestFilename)
}

// MustLoad is like Load but panics if the manifest is inconsistent with the
// Option constants, which is a programming error.
func MustLoad(program string) *Registry {
	reg, err := Load(program)
	if err != nil {
		panic(err)
	}
	return reg
}

func load(program string, src []byte, filename string) (*Registry, error) {
	infos, err := decodeManifest(src, filename)
	if err != nil {
		return nil, err
	}

	byKey, err := indexKeys(infos[:])
	if err != nil {
		return nil, err
	}
	byShort, err := indexShorts(infos[:])
	if err != nil {
		return nil, err
	}

	r := &Registry{
		program: program,
		infos:   infos,
		byKey:   byKey,
		byShort: byShort,
	}

	slog.Debug("Option registry loaded.", "options", len(r.byKey), "short_forms", len(r.byShort))
	return r, nil
}

// indexKeys maps the normalized name of every option to the option.
func indexKeys(infos []Info) (map[string]Option, error) {
	byKey := make(map[string]Option, len(infos))
	for _, info := range infos {
		key := Normalize(info.Name)
		if prev, exists := byKey[key]; exists {
			return nil, fmt.Errorf("option %q normalizes to the same key as %q", info.Name, prev)
		}
		byKey[key] = info.Option
	}
	return byKey, nil
}

// indexShorts maps every short form to its option. Two options sharing a
// short form would make single-character lookups ambiguous.
func indexShorts(infos []Info) (map[rune]Option, error) {
	byShort := make(map[rune]Option, len(infos))
	for _, info := range infos {
		if !info.HasShort() {
			continue
		}
		if prev, exists := byShort[info.Short]; exists {
			return nil, fmt.Errorf("short form '-%c' of option %q is already used by %q", info.Short, info.Name, prev)
		}
		byShort[info.Short] = info.Option
	}
	return byShort, nil
}

// Program returns the program name used in the help text.
func (r *Registry) Program() string {
	return r.program
}

// Info returns the registry entry for o.
func (r *Registry) Info(o Option) Info {
	return r.infos[o]
}

// Lookup resolves a user-supplied option key. A key that normalizes to a
// single character is first matched against the short forms; otherwise, or if
// no short form matches, it must equal a normalized option name.
func (r *Registry) Lookup(key string) (Option, bool) {
	norm := Normalize(key)
	if utf8.RuneCountInString(norm) == 1 {
		short, _ := utf8.DecodeRuneInString(norm)
		if opt, ok := r.byShort[short]; ok {
			return opt, true
		}
	}
	opt, ok := r.byKey[norm]
	return opt, ok
}

// Suggest returns the option whose normalized name is closest to key, if it
// is close enough to be a plausible typo. Ties go to the earlier option.
func (r *Registry) Suggest(key string) (Option, bool) {
	norm := Normalize(key)
	if utf8.RuneCountInString(norm) < 2 {
		return 0, false
	}

	best, bestDist := Option(0), maxSuggestionDistance+1
	for _, info := range r.infos {
		d := levenshtein.Distance(norm, Normalize(info.Name), nil)
		if d < bestDist {
			best, bestDist = info.Option, d
		}
	}
	return best, bestDist <= maxSuggestionDistance
}
