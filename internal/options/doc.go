// Package options defines the closed set of command-line options the syncer
// understands, together with the value enumerations they accept.
//
// The Registry is built once from an embedded HCL manifest (options.hcl) and is
// read-only afterwards. It resolves user spellings of option names, derives the
// single-character short forms, and renders the aligned help text.
package options
