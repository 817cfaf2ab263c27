// Package persistence saves and restores the picker value in session storage.
//
// The value is stored under a single key as the decimal epoch milliseconds of
// an instant carrying the chosen hour and minute. The calendar date of that
// instant is whatever day it was when the value was saved; only the hour and
// minute, read back in the same location, are meaningful.
package persistence
