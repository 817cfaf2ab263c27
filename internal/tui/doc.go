// Package tui renders the picker as an interactive terminal prompt.
//
// The prompt shows both fields zero-padded with the focused one in brackets,
// e.g. "[08]:45 > ". Up/Down (or Ctrl-P/Ctrl-N) step the focused field and
// are swallowed before readline can use them for history. Tab moves focus.
// A typed line is applied to the focused field on Enter; "h" and "m" move
// focus, "+" and "-" step, and "q" leaves the editor.
package tui
