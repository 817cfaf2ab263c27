// Package commands defines the timepick CLI and wires dependencies for subcommands.
//
// Commands
//
//   - show            Print the session's time ("07:45")
//   - set             Type a value into the hours or minutes field
//   - up, down        Step a field as the Up/Down keys would
//   - edit            Interactive editor with arrow-key stepping
//   - session new     Print a fresh session id for TIMEPICK_SESSION
//   - session clear   Forget the session's stored time
//
// # Implementation
//
// The root command loads configuration, builds the logger and the storage
// wiring before any subcommand runs, and mounts one picker per invocation.
// Each invocation is one mount of the widget: the value is restored from the
// session, the subcommand's input is applied, and every committed change is
// saved back.
package commands
