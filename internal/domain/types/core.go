package types

// SessionID identifies the session a stored value belongs to.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// StorageKey names a single item in session storage.
type StorageKey string

// String returns the string form of the storage key.
func (k StorageKey) String() string { return string(k) }

// DefaultStorageKey is the key the picker value is stored under unless
// configured otherwise.
const DefaultStorageKey StorageKey = "input-time"
