package interfaces

import (
	"context"

	domaintypes "timepick/internal/domain/types"
)

// SessionStorage is a string key/value store whose contents live only as
// long as the current session.
type SessionStorage interface {
	// GetItem returns the value under key and whether it was present.
	GetItem(ctx context.Context, key domaintypes.StorageKey) (string, bool, error)
	// SetItem stores value under key, overwriting any previous value.
	SetItem(ctx context.Context, key domaintypes.StorageKey, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key domaintypes.StorageKey) error
}

// TimeStore persists the picker value for the current session.
type TimeStore interface {
	// Load returns the stored value and true, or false when nothing has been
	// stored yet in this session.
	Load(ctx context.Context) (domaintypes.TimeValue, bool, error)
	Save(ctx context.Context, value domaintypes.TimeValue) error
	Clear(ctx context.Context) error
}
