package interfaces

import domaintypes "timepick/internal/domain/types"

// TimeObserver is notified with the full value after every committed change.
type TimeObserver func(value domaintypes.TimeValue)

// TimeState holds the current hour and minute and applies validated
// transitions to them.
type TimeState interface {
	Value() domaintypes.TimeValue

	SetHours(h int) bool
	SetMinutes(m int) bool

	IncrementHours()
	DecrementHours()
	IncrementMinutes()
	DecrementMinutes()

	Subscribe(fn TimeObserver) (unsubscribe func())
}
