package input

import (
	"fmt"
	"strconv"
	"strings"

	"timepick/internal/domain"
)

// TextHandler applies typed field contents as direct sets.
type TextHandler struct {
	state domain.TimeState
}

// NewTextHandler returns a TextHandler driving state.
func NewTextHandler(state domain.TimeState) *TextHandler {
	return &TextHandler{state: state}
}

// HandleText parses text as a base-10 integer and sets field to it. It
// reports whether the value was committed; unparsable or out-of-range text
// and unknown fields are ignored.
func (h *TextHandler) HandleText(field domain.Field, text string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	switch field {
	case domain.FieldHours:
		return h.state.SetHours(n)
	case domain.FieldMinutes:
		return h.state.SetMinutes(n)
	default:
		return false
	}
}

// Pad2 renders a field value the way the input fields display it.
func Pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Display returns the padded display value of field in v, or "" for an
// unknown field.
func Display(v domain.TimeValue, field domain.Field) string {
	switch field {
	case domain.FieldHours:
		return Pad2(v.Hours())
	case domain.FieldMinutes:
		return Pad2(v.Minutes())
	default:
		return ""
	}
}
