// Package app holds the configuration the syncer runs with, decoupled from the
// command line that produced it, and the logger that configuration implies.
package app
