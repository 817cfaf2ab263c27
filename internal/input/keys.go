package input

import "timepick/internal/domain"

// KeyHandler routes decoded key presses to the focused field's counter.
type KeyHandler struct {
	state domain.TimeState
}

// NewKeyHandler returns a KeyHandler driving state.
func NewKeyHandler(state domain.TimeState) *KeyHandler {
	return &KeyHandler{state: state}
}

// HandleKey applies key to field. It returns true when the key was consumed,
// in which case the caller must suppress the key's default action. Keys other
// than increase and decrease return false and are left to the caller.
// Unknown fields consume nothing.
func (h *KeyHandler) HandleKey(field domain.Field, key domain.Key) bool {
	var step func()
	switch field {
	case domain.FieldHours:
		step = h.hours(key)
	case domain.FieldMinutes:
		step = h.minutes(key)
	}
	if step == nil {
		return false
	}
	step()
	return true
}

func (h *KeyHandler) hours(key domain.Key) func() {
	switch key {
	case domain.KeyIncrease:
		return h.state.IncrementHours
	case domain.KeyDecrease:
		return h.state.DecrementHours
	}
	return nil
}

func (h *KeyHandler) minutes(key domain.Key) func() {
	switch key {
	case domain.KeyIncrease:
		return h.state.IncrementMinutes
	case domain.KeyDecrease:
		return h.state.DecrementMinutes
	}
	return nil
}
