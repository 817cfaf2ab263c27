// Package app wires application dependencies for the CLI.
//
// It builds the session storage backend, the time store and the formatter
// from config.Config, exposing them via the Wire struct for commands to use.
package app
