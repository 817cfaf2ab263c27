// Package timestate holds the picker's hour and minute counters.
//
// Both counters are bounded: direct sets outside the valid range are
// rejected, while increment and decrement wrap around (23 -> 0, 0 -> 59).
// The two counters are independent. Every committed change is announced to
// subscribers after the new value has replaced the old one.
package timestate
