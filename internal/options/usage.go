package options

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Usage returns the help text. It is rendered on first use and cached, so
// repeated calls return identical text.
func (r *Registry) Usage() string {
	r.usageOnce.Do(func() {
		r.usage = r.renderUsage()
	})
	return r.usage
}

func (r *Registry) renderUsage() string {
	prefixes := make([]string, numOptions)
	width := 0
	for i, info := range r.infos {
		prefixes[i] = usagePrefix(info)
		if n := utf8.RuneCountInString(prefixes[i]); n > width {
			width = n
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Usage: %s [options]\n\nOptions:\n", r.program)
	for i, info := range r.infos {
		fmt.Fprintf(&sb, "%-*s  %s\n", width, prefixes[i], usageDescription(info))
	}
	return sb.String()
}

// usagePrefix renders the "  -e, --exercise <slug>" part of a help row.
func usagePrefix(info Info) string {
	var sb strings.Builder
	if info.HasShort() {
		fmt.Fprintf(&sb, "  -%c, ", info.Short)
	} else {
		sb.WriteString("      ")
	}
	sb.WriteString("--")
	sb.WriteString(info.Name)
	if info.TakesValue() {
		fmt.Fprintf(&sb, " <%s>", info.Param)
	}
	return sb.String()
}

// usageDescription appends the allowed values of enum options, written as
// "c[hoose]" so the single-letter form is visible.
func usageDescription(info Info) string {
	if len(info.Values) == 0 {
		return info.Description
	}
	allowed := make([]string, len(info.Values))
	for i, v := range info.Values {
		_, size := utf8.DecodeRuneInString(v)
		allowed[i] = v[:size] + "[" + v[size:] + "]"
	}
	return info.Description + ". Allowed values: " + strings.Join(allowed, ", ")
}
