// Package storage provides SQLite-based persistence for player profiles,
// profile-scoped configuration values and the theme catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Profile represents a named user settings context.
// All configuration values (key bindings included) are stored under a profile.
type Profile struct {
	Name      string
	CreatedAt time.Time
}

// ThemeEntry is a catalog record mapping a theme name to its descriptor file.
type ThemeEntry struct {
	Name string
	File string
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS profile_config (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (profile, key)
		);
		CREATE INDEX IF NOT EXISTS idx_profile_config_profile ON profile_config(profile);

		CREATE TABLE IF NOT EXISTS themes (
			name TEXT PRIMARY KEY,
			file TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateProfile registers a new profile name.
// Creating an existing profile is an error.
func (s *Store) CreateProfile(name string) error {
	if name == "" {
		return fmt.Errorf("storage: profile name cannot be empty")
	}

	_, err := s.db.Exec("INSERT INTO profiles (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("storage: cannot create profile %q: %w", name, err)
	}
	return nil
}

// Profiles returns all known profiles ordered by name.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query("SELECT name, created_at FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var createdAt any
		if err := rows.Scan(&p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			p.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				p.CreatedAt = parsed
			}
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return profiles, nil
}

// ProfileExists checks whether the given profile is registered.
func (s *Store) ProfileExists(name string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM profiles WHERE name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query profile: %w", err)
	}
	return n > 0, nil
}

// DeleteProfile removes a profile and all configuration stored under it.
func (s *Store) DeleteProfile(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM profile_config WHERE profile = ?", name); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot delete profile config: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM profiles WHERE name = ?", name); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot delete profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// ConfigString reads a configuration value stored under the given profile.
// Returns def when the key is absent.
func (s *Store) ConfigString(profile, key, def string) (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM profile_config WHERE profile = ? AND key = ?",
		profile, key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot query config value: %w", err)
	}
	return value, nil
}

// SetConfigString writes a single configuration value under the given profile.
func (s *Store) SetConfigString(profile, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO profile_config (profile, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set config value: %w", err)
	}
	return nil
}

// ConfigBatch groups configuration writes into a single transaction.
// Used when saving a full binding table so a partial write never lands.
type ConfigBatch struct {
	tx *sql.Tx
}

// BeginConfig starts a batched configuration write.
func (s *Store) BeginConfig() (*ConfigBatch, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	return &ConfigBatch{tx: tx}, nil
}

// Set stages one configuration value in the batch.
func (b *ConfigBatch) Set(profile, key, value string) error {
	_, err := b.tx.Exec(
		`INSERT INTO profile_config (profile, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot stage config value: %w", err)
	}
	return nil
}

// Commit applies the batch.
func (b *ConfigBatch) Commit() error {
	if err := b.tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit config batch: %w", err)
	}
	return nil
}

// Rollback abandons the batch.
func (b *ConfigBatch) Rollback() error {
	return b.tx.Rollback()
}

// AddTheme registers a theme name with its descriptor file path.
// An existing entry for the same name is overwritten.
func (s *Store) AddTheme(name, file string) error {
	_, err := s.db.Exec(
		`INSERT INTO themes (name, file) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET file = excluded.file`,
		name, file,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add theme: %w", err)
	}
	return nil
}

// Themes returns the theme catalog ordered by name.
func (s *Store) Themes() ([]ThemeEntry, error) {
	rows, err := s.db.Query("SELECT name, file FROM themes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query themes: %w", err)
	}
	defer rows.Close()

	var entries []ThemeEntry
	for rows.Next() {
		var e ThemeEntry
		if err := rows.Scan(&e.Name, &e.File); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ThemeFile returns the descriptor file registered for a theme name.
// Returns false when the theme is not in the catalog.
func (s *Store) ThemeFile(name string) (string, bool, error) {
	var file string
	err := s.db.QueryRow("SELECT file FROM themes WHERE name = ?", name).Scan(&file)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query theme: %w", err)
	}
	return file, true, nil
}

// ThemeExists checks whether a theme name is in the catalog.
func (s *Store) ThemeExists(name string) (bool, error) {
	_, ok, err := s.ThemeFile(name)
	return ok, err
}

// ClearThemes empties the theme catalog, typically before a rescan.
func (s *Store) ClearThemes() error {
	_, err := s.db.Exec("DELETE FROM themes")
	if err != nil {
		return fmt.Errorf("storage: cannot clear themes: %w", err)
	}
	return nil
}
