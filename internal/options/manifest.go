// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes the embedded option manifest and checks it against the Go
// side of the registry.
//
// Why keep option metadata in a manifest?
//
// Descriptions, placeholders and allowed values are documentation, and they
// read better as a declarative file than as Go literals. The Option, Mode and
// Verbosity constants stay in Go so that dispatch remains exhaustive; the
// parity check below guarantees the two never drift apart.
package options

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

//go:embed options.hcl
var manifestSource []byte

const manifestFilename = "options.hcl"

// manifestSchema is the top-level structure of the manifest, one 'option'
// block per Option.
type manifestSchema struct {
	Options []*manifestOption `hcl:"option,block"`
}

type manifestOption struct {
	Name        string    `hcl:"name,label"`
	Description string    `hcl:"description"`
	Param       string    `hcl:"param,optional"`
	Short       *bool     `hcl:"short,optional"`
	Values      cty.Value `hcl:"values,optional"`
}

// enumMembers lists, for every enum-valued option, the member names its
// manifest entry must declare.
var enumMembers = map[Option][]string{
	OptMode:      memberNames(Modes()),
	OptVerbosity: memberNames(Verbosities()),
}

// decodeManifest parses src and turns it into one Info per Option, indexed by
// ordinal. Any mismatch between the manifest and the Option constants is an
// error.
func decodeManifest(src []byte, filename string) ([numOptions]Info, error) {
	var infos [numOptions]Info

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return infos, fmt.Errorf("failed to parse option manifest: %w", diags)
	}

	schema := &manifestSchema{}
	if diags := gohcl.DecodeBody(file.Body, nil, schema); diags.HasErrors() {
		return infos, fmt.Errorf("failed to decode option manifest: %w", diags)
	}

	if len(schema.Options) != int(numOptions) {
		return infos, fmt.Errorf("option manifest declares %d options, expected %d", len(schema.Options), numOptions)
	}

	for i, mo := range schema.Options {
		opt := Option(i)
		if mo.Name != opt.String() {
			return infos, fmt.Errorf("option manifest entry %d is %q, expected %q", i, mo.Name, opt.String())
		}

		values, err := decodeValues(mo.Values)
		if err != nil {
			return infos, fmt.Errorf("option %q: %w", mo.Name, err)
		}
		if err := checkMembers(opt, values); err != nil {
			return infos, fmt.Errorf("option %q: %w", mo.Name, err)
		}
		if len(values) > 0 && mo.Param == "" {
			return infos, fmt.Errorf("option %q: allowed values given for an option that takes no value", mo.Name)
		}

		info := Info{
			Option:      opt,
			Name:        mo.Name,
			Short:       NoShort,
			Param:       mo.Param,
			Description: mo.Description,
			Values:      values,
		}
		if mo.Short == nil || *mo.Short {
			info.Short = deriveShort(mo.Name)
		}
		infos[opt] = info
	}

	return infos, nil
}

// decodeValues converts the optional 'values' attribute into a string slice.
func decodeValues(v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("allowed values must be known constants")
	}

	list, err := convert.Convert(v, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("allowed values must be a list of strings: %w", err)
	}

	var values []string
	if err := gocty.FromCtyValue(list, &values); err != nil {
		return nil, fmt.Errorf("allowed values must be a list of strings: %w", err)
	}
	return values, nil
}

// checkMembers verifies that an option declares exactly the members of its Go
// enumeration, in the same order.
func checkMembers(opt Option, values []string) error {
	want := enumMembers[opt]
	if len(want) != len(values) {
		return fmt.Errorf("allowed values [%s] do not match [%s]", strings.Join(values, ", "), strings.Join(want, ", "))
	}
	for i := range want {
		if want[i] != values[i] {
			return fmt.Errorf("allowed values [%s] do not match [%s]", strings.Join(values, ", "), strings.Join(want, ", "))
		}
	}
	return nil
}

// deriveShort returns the lower-cased first character of name.
func deriveShort(name string) rune {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return NoShort
	}
	return unicode.ToLower(r)
}
