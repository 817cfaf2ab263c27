// Package input turns user input on the two picker fields into TimeState
// operations.
//
// KeyHandler routes increase/decrease keys to the counter of the focused
// field. TextHandler parses typed text and applies it as a direct set;
// anything that does not parse, or parses out of range, is dropped without
// changing state or notifying anyone.
package input
