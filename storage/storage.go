// Package storage is the key-value persistence behind the showcase, the
// server-side counterpart of browser local storage.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Logical keys of the persisted records.
const (
	AccountKey       = "gpsShowcaseAccount"
	QuestionnaireKey = "gpsShowcaseQuestionnaire"
	SettingsKey      = "gpsShowcaseSettings"
)

// ErrUnavailable is returned by stores that cannot accept writes.
var ErrUnavailable = errors.New("storage unavailable")

// Store reads and writes serialized records by key. A missing key is not an
// error: Get reports it through the boolean.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// SQLStore keeps entries in the kv_entries table created by database.Migrate.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLStore wraps an open database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv_entries WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-process Store, used when no database is configured and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]string

	// ReadOnly makes every write fail with ErrUnavailable, like a browser with
	// storage disabled.
	ReadOnly bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadOnly {
		return ErrUnavailable
	}
	m.entries[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadOnly {
		return ErrUnavailable
	}
	delete(m.entries, key)
	return nil
}
