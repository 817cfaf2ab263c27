package domain

import (
	interfaces "timepick/internal/domain/interfaces"
	types "timepick/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID  = types.SessionID
	StorageKey = types.StorageKey
	TimeValue  = types.TimeValue
	Field      = types.Field
	Key        = types.Key
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStorage = interfaces.SessionStorage
	TimeStore      = interfaces.TimeStore
	TimeState      = interfaces.TimeState
	TimeObserver   = interfaces.TimeObserver
)

const (
	FieldHours   = types.FieldHours
	FieldMinutes = types.FieldMinutes

	KeyOther    = types.KeyOther
	KeyIncrease = types.KeyIncrease
	KeyDecrease = types.KeyDecrease

	DefaultStorageKey = types.DefaultStorageKey
)

var (
	ErrStorage      = types.ErrStorage
	ErrUnknownField = types.ErrUnknownField
)

// Constructors and helpers re-exported from the types subpackage.
var (
	NewTimeValue  = types.NewTimeValue
	MustTimeValue = types.MustTimeValue
	TimeValueOf   = types.TimeValueOf
	ParseField    = types.ParseField
)
