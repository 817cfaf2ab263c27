package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/blake2b"

	"timepick/internal/domain"
)

// SessionsDir is the directory under the home directory holding session files.
const SessionsDir = "sessions"

// sessionFile is the on-disk JSON document for one session.
type sessionFile struct {
	Session   domain.SessionID             `json:"session"`
	UpdatedAt time.Time                    `json:"updated_at"`
	Items     map[domain.StorageKey]string `json:"items"`
}

// FileStorage persists one session's items to a JSON file.
//
// The session ends, and its items read as absent, once the file has not been
// written for longer than ttl. A zero ttl never expires.
type FileStorage struct {
	dir     string
	session domain.SessionID
	ttl     time.Duration
	clock   clockwork.Clock

	mu sync.Mutex
}

// NewFileStorage returns a FileStorage for session, keeping its file in dir.
func NewFileStorage(dir string, session domain.SessionID, ttl time.Duration, clock clockwork.Clock) *FileStorage {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &FileStorage{dir: dir, session: session, ttl: ttl, clock: clock}
}

// Path returns the session file location.
func (s *FileStorage) Path() string {
	return filepath.Join(s.dir, SessionFileName(s.session))
}

// SessionFileName maps a session id to a fixed-length file name. Session ids
// come from the environment and may contain path separators.
func SessionFileName(session domain.SessionID) string {
	sum := blake2b.Sum256([]byte(session))
	return hex.EncodeToString(sum[:16]) + ".json"
}

// GetItem returns the value under key and whether it was present.
func (s *FileStorage) GetItem(_ context.Context, key domain.StorageKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := doc.Items[key]
	return v, ok, nil
}

// SetItem stores value under key and renews the session.
func (s *FileStorage) SetItem(_ context.Context, key domain.StorageKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Items[key] = value
	return s.write(doc)
}

// RemoveItem deletes key. The session file is removed with its last item.
func (s *FileStorage) RemoveItem(_ context.Context, key domain.StorageKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Items[key]; !ok {
		return nil
	}
	delete(doc.Items, key)
	if len(doc.Items) == 0 {
		if err := removeFile(s.Path()); err != nil {
			return fmt.Errorf("%w: remove %s: %w", domain.ErrStorage, s.Path(), err)
		}
		return nil
	}
	return s.write(doc)
}

// load reads the session document. A missing or expired file yields an empty
// document.
func (s *FileStorage) load() (sessionFile, error) {
	path := s.Path()
	doc := sessionFile{}
	found, err := readJSON(path, &doc)
	if err != nil {
		return sessionFile{}, fmt.Errorf("%w: read %s: %w", domain.ErrStorage, path, err)
	}
	if !found || s.expired(doc) {
		return sessionFile{Session: s.session, Items: map[domain.StorageKey]string{}}, nil
	}
	if doc.Items == nil {
		doc.Items = map[domain.StorageKey]string{}
	}
	return doc, nil
}

func (s *FileStorage) expired(doc sessionFile) bool {
	return s.ttl > 0 && s.clock.Since(doc.UpdatedAt) > s.ttl
}

func (s *FileStorage) write(doc sessionFile) error {
	doc.Session = s.session
	doc.UpdatedAt = s.clock.Now().UTC()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrStorage, s.dir, err)
	}
	if err := writeJSON(s.Path(), doc, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrStorage, s.Path(), err)
	}
	return nil
}

// Compile-time assertion that FileStorage implements domain.SessionStorage.
var _ domain.SessionStorage = (*FileStorage)(nil)
