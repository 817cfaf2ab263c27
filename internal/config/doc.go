// Package config loads timepick's runtime configuration.
//
// Values come from, in increasing order of precedence: built-in defaults,
// the environment (TIMEPICK_* variables, optionally from a .env file), and
// an optional YAML file. Command-line flags are applied on top by the CLI.
package config
