package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"timepick/internal/domain"
)

// SessionTimeStore adapts a domain.SessionStorage into a domain.TimeStore.
type SessionTimeStore struct {
	storage domain.SessionStorage
	key     domain.StorageKey
	clock   clockwork.Clock
	loc     *time.Location
}

// Option configures a SessionTimeStore.
type Option func(*SessionTimeStore)

// WithKey stores the value under key instead of domain.DefaultStorageKey.
func WithKey(key domain.StorageKey) Option {
	return func(s *SessionTimeStore) { s.key = key }
}

// WithClock sets the clock supplying the date of saved instants.
func WithClock(clock clockwork.Clock) Option {
	return func(s *SessionTimeStore) { s.clock = clock }
}

// WithLocation sets the location hours and minutes are read and written in.
// The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *SessionTimeStore) { s.loc = loc }
}

// New returns a SessionTimeStore over storage.
func New(storage domain.SessionStorage, opts ...Option) *SessionTimeStore {
	s := &SessionTimeStore{
		storage: storage,
		key:     domain.DefaultStorageKey,
		clock:   clockwork.NewRealClock(),
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key in use.
func (s *SessionTimeStore) Key() domain.StorageKey { return s.key }

// Load returns the stored value, or false when the session has none.
func (s *SessionTimeStore) Load(ctx context.Context) (domain.TimeValue, bool, error) {
	raw, ok, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		return domain.TimeValue{}, false, storageErr("get", s.key, err)
	}
	if !ok {
		return domain.TimeValue{}, false, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.TimeValue{}, false, fmt.Errorf("%w: decode %s: %w", domain.ErrStorage, s.key, err)
	}
	return Decode(ms, s.loc), true, nil
}

// Save overwrites the stored value with v.
func (s *SessionTimeStore) Save(ctx context.Context, v domain.TimeValue) error {
	ms := Encode(v, s.clock.Now().In(s.loc))
	if err := s.storage.SetItem(ctx, s.key, strconv.FormatInt(ms, 10)); err != nil {
		return storageErr("set", s.key, err)
	}
	return nil
}

// Clear removes the stored value.
func (s *SessionTimeStore) Clear(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, s.key); err != nil {
		return storageErr("remove", s.key, err)
	}
	return nil
}

// storageErr tags err with domain.ErrStorage unless a backend already did.
func storageErr(op string, key domain.StorageKey, err error) error {
	if errors.Is(err, domain.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrStorage, op, key, err)
}

// Encode returns the epoch milliseconds of v on the calendar day of day.
// When v falls in a daylight saving gap on that day, the previous day is
// used instead; gaps never occur on consecutive days.
func Encode(v domain.TimeValue, day time.Time) int64 {
	t := v.On(day)
	if domain.TimeValueOf(t) != v {
		t = v.On(day.AddDate(0, 0, -1))
	}
	return t.UnixMilli()
}

// Decode reads the hour and minute of the instant ms in loc.
func Decode(ms int64, loc *time.Location) domain.TimeValue {
	return domain.TimeValueOf(time.UnixMilli(ms).In(loc))
}

// Compile-time assertion that SessionTimeStore implements domain.TimeStore.
var _ domain.TimeStore = (*SessionTimeStore)(nil)
