package timestate

import (
	"timepick/internal/domain"
	"timepick/internal/domain/types"
)

// State is the single owner of the current time value. It is not safe for
// concurrent use; callers that share it across goroutines must serialise
// access themselves.
type State struct {
	value     domain.TimeValue
	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn domain.TimeObserver
}

// New returns a State starting at initial.
func New(initial domain.TimeValue) *State {
	return &State{value: initial}
}

// Value returns the last committed value.
func (s *State) Value() domain.TimeValue { return s.value }

// SetHours commits h and notifies subscribers. It returns false and leaves
// the state untouched when h is outside [0,23].
func (s *State) SetHours(h int) bool {
	next, ok := s.value.WithHours(h)
	if !ok {
		return false
	}
	s.commit(next)
	return true
}

// SetMinutes commits m and notifies subscribers. It returns false and leaves
// the state untouched when m is outside [0,59].
func (s *State) SetMinutes(m int) bool {
	next, ok := s.value.WithMinutes(m)
	if !ok {
		return false
	}
	s.commit(next)
	return true
}

func (s *State) IncrementHours() {
	s.SetHours((s.value.Hours() + 1) % types.HoursPerDay)
}

func (s *State) DecrementHours() {
	s.SetHours((s.value.Hours() + types.HoursPerDay - 1) % types.HoursPerDay)
}

func (s *State) IncrementMinutes() {
	s.SetMinutes((s.value.Minutes() + 1) % types.MinutesPerHour)
}

func (s *State) DecrementMinutes() {
	s.SetMinutes((s.value.Minutes() + types.MinutesPerHour - 1) % types.MinutesPerHour)
}

// Subscribe registers fn to be called, in subscription order, after every
// committed change. The returned func removes the subscription.
func (s *State) Subscribe(fn domain.TimeObserver) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// commit replaces the value before any observer runs, so observers that read
// Value() see the new value.
func (s *State) commit(next domain.TimeValue) {
	s.value = next
	for _, sub := range s.observers {
		sub.fn(next)
	}
}

// Compile-time assertion that State implements domain.TimeState.
var _ domain.TimeState = (*State)(nil)
