package types

import (
	"fmt"
	"strings"
)

// Field identifies one of the two input fields of the picker.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
)

// String returns the field's name as used by the rendering side.
func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Other returns the field that does not have focus when f does.
func (f Field) Other() Field {
	if f == FieldHours {
		return FieldMinutes
	}
	return FieldHours
}

// Key is a key press already decoded by the rendering side.
type Key int

const (
	KeyOther Key = iota
	KeyIncrease
	KeyDecrease
)

// String returns a short name for k.
func (k Key) String() string {
	switch k {
	case KeyIncrease:
		return "increase"
	case KeyDecrease:
		return "decrease"
	default:
		return "other"
	}
}

// ParseField maps a field name ("hours", "h", "minutes", "m") to a Field.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hours", "hour", "h":
		return FieldHours, nil
	case "minutes", "minute", "min", "m":
		return FieldMinutes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}
