// Package session persists the auth token and cached profile between runs.
// It is the client-side analogue of browser local storage: a small SQLite
// key/value table under the user's config directory.
package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/transcall/transcall/internal/api"
)

// Storage keys. One canonical set; mutations persist immediately.
const (
	keyToken           = "token"
	keyUser            = "user"
	keyLastRecordingID = "last_recording_id"
)

// Store is the durable session store.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default session database path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".transcall", "session.sqlite")
	}
	return filepath.Join(dir, "transcall", "session.sqlite")
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	return s.get(keyToken)
}

// IsAuthenticated reports whether a token is present. No expiry check is
// performed client-side; the server answers 401 for stale tokens.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetSession stores the token and user profile from a successful login.
func (s *Store) SetSession(token string, user api.User) error {
	if err := s.set(keyToken, token); err != nil {
		return err
	}
	return s.SetUser(user)
}

// User returns the cached profile. A missing or unparsable cache yields the
// zero User rather than an error.
func (s *Store) User() api.User {
	var user api.User
	raw := s.get(keyUser)
	if raw == "" {
		return user
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return api.User{}
	}
	return user
}

// SetUser replaces the cached profile.
func (s *Store) SetUser(user api.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.set(keyUser, string(raw))
}

// LastRecordingID returns the id persisted by the most recent upload, or 0.
func (s *Store) LastRecordingID() int {
	var id int
	raw := s.get(keyLastRecordingID)
	if raw == "" {
		return 0
	}
	if _, err := fmt.Sscanf(raw, "%d", &id); err != nil {
		return 0
	}
	return id
}

// SetLastRecordingID remembers the recording created by an upload so a later
// transcribe action can address it. At most one id is remembered.
func (s *Store) SetLastRecordingID(id int) error {
	return s.set(keyLastRecordingID, fmt.Sprintf("%d", id))
}

// ClearLastRecordingID forgets the remembered upload.
func (s *Store) ClearLastRecordingID() error {
	return s.delete(keyLastRecordingID)
}

// Clear wipes the whole session: token, cached user, remembered upload.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
