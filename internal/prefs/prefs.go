// Package prefs persists user accessibility preferences (locale, reduced
// motion, high contrast) in a small sqlite database under the user config
// directory.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

const dbFile = "prefs.db"

// Preference keys.
const (
	KeyLocale       = "locale"
	KeyReduceMotion = "reduce_motion"
	KeyHighContrast = "high_contrast"
)

// Store wraps the preferences database.
type Store struct {
	conn *sql.DB
	path string
}

// DefaultDir returns the per-user directory the store lives in.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "fokus"), nil
}

// Open opens (creating if needed) the preferences store in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	path := filepath.Join(dir, dbFile)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs database: %w", err)
	}

	// WAL allows concurrent reads while writes are serialized.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create prefs table: %w", err)
	}

	return &Store{conn: conn, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key, or "" if unset.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get pref %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set pref %q: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.conn.Query("SELECT key, value FROM prefs ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list prefs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan pref: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Locale returns the stored locale code, or "" if unset.
func (s *Store) Locale() (string, error) {
	return s.Get(KeyLocale)
}

// SetLocale stores the locale code.
func (s *Store) SetLocale(code string) error {
	return s.Set(KeyLocale, code)
}

// ReduceMotion returns the stored reduce-motion flag.
func (s *Store) ReduceMotion() (bool, error) {
	return s.boolPref(KeyReduceMotion)
}

// SetReduceMotion stores the reduce-motion flag.
func (s *Store) SetReduceMotion(on bool) error {
	return s.Set(KeyReduceMotion, strconv.FormatBool(on))
}

// HighContrast returns the stored high-contrast flag.
func (s *Store) HighContrast() (bool, error) {
	return s.boolPref(KeyHighContrast)
}

// SetHighContrast stores the high-contrast flag.
func (s *Store) SetHighContrast(on bool) error {
	return s.Set(KeyHighContrast, strconv.FormatBool(on))
}

func (s *Store) boolPref(key string) (bool, error) {
	v, err := s.Get(key)
	if err != nil || v == "" {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("pref %q has non-boolean value %q", key, v)
	}
	return b, nil
}
