package types

import (
	"fmt"
	"time"
)

const (
	// HoursPerDay bounds the hour counter: valid hours are [0, HoursPerDay).
	HoursPerDay = 24
	// MinutesPerHour bounds the minute counter: valid minutes are [0, MinutesPerHour).
	MinutesPerHour = 60
)

// TimeValue is a time of day with minute resolution. The zero value is 00:00.
//
// A TimeValue is immutable; the With* methods return a new value and leave
// the receiver untouched.
type TimeValue struct {
	hours   int
	minutes int
}

// NewTimeValue returns the time value h:m or an error if either component is
// out of range.
func NewTimeValue(h, m int) (TimeValue, error) {
	if !ValidHours(h) {
		return TimeValue{}, fmt.Errorf("hours %d out of range [0,%d]", h, HoursPerDay-1)
	}
	if !ValidMinutes(m) {
		return TimeValue{}, fmt.Errorf("minutes %d out of range [0,%d]", m, MinutesPerHour-1)
	}
	return TimeValue{hours: h, minutes: m}, nil
}

// MustTimeValue is like NewTimeValue but panics on invalid input.
func MustTimeValue(h, m int) TimeValue {
	tv, err := NewTimeValue(h, m)
	if err != nil {
		panic(err)
	}
	return tv
}

// TimeValueOf takes the hour and minute of t in t's location.
func TimeValueOf(t time.Time) TimeValue {
	return TimeValue{hours: t.Hour(), minutes: t.Minute()}
}

// Hours returns the hour component in [0,23].
func (v TimeValue) Hours() int { return v.hours }

// Minutes returns the minute component in [0,59].
func (v TimeValue) Minutes() int { return v.minutes }

// WithHours returns a copy of v with the hour replaced. ok is false, and v is
// returned unchanged, when h is out of range.
func (v TimeValue) WithHours(h int) (TimeValue, bool) {
	if !ValidHours(h) {
		return v, false
	}
	v.hours = h
	return v, true
}

// WithMinutes returns a copy of v with the minute replaced. ok is false, and
// v is returned unchanged, when m is out of range.
func (v TimeValue) WithMinutes(m int) (TimeValue, bool) {
	if !ValidMinutes(m) {
		return v, false
	}
	v.minutes = m
	return v, true
}

// On returns the instant on the calendar day of day, in day's location, at
// v's hour and minute.
func (v TimeValue) On(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, v.hours, v.minutes, 0, 0, day.Location())
}

// String renders v as HH:MM without locale rules.
func (v TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d", v.hours, v.minutes)
}

// ValidHours reports whether h is a valid hour of the day.
func ValidHours(h int) bool { return h >= 0 && h < HoursPerDay }

// ValidMinutes reports whether m is a valid minute of the hour.
func ValidMinutes(m int) bool { return m >= 0 && m < MinutesPerHour }
