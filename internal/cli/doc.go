// Package cli is responsible for parsing command-line arguments, validating
// user input, and reporting the outcome. It translates the raw arguments into
// the application's configuration, or into help, version or error output plus
// the exit code the process should terminate with.
package cli
