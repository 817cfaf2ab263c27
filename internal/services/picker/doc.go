// Package picker is the time picker surface offered to a host.
//
// A Picker restores the session's last value (or starts at the current wall
// clock time), owns the hour/minute state, saves every committed change back
// to session storage and renders the value on demand.
//
// Storage problems never reach the host as failures of the picker's input
// methods: a failed load falls back to the current time, and a failed save
// keeps the committed value in memory. Both are logged, and the most recent
// save error is available from Err.
package picker
