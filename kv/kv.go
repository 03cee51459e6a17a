// Package kv is the persistent-storage collaborator of the tracker: a
// named-key store of JSON documents backed by a single sqlite file. It
// plays the role browser-local storage plays in a web app — one
// JSON-serialized value per named collection, no schema beyond that.
package kv

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// DB is a key-value store over one sqlite file.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path. The parent directory
// is created if it does not exist.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store %q: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying database.
func (d *DB) Close() error { return d.db.Close() }

// Put stores value under key, replacing any previous value.
func (d *DB) Put(key string, value []byte) error {
	_, err := d.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (d *DB) Get(key string) ([]byte, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(value), nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (d *DB) Delete(key string) error {
	if _, err := d.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys, ordered.
func (d *DB) Keys() ([]string, error) {
	rows, err := d.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("list keys: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// PutJSON marshals v and stores it under key.
func (d *DB) PutJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return d.Put(key, data)
}

// GetJSON reads the value under key and unmarshals it into v. A missing
// key or an unparseable value is an error; v is left untouched.
func (d *DB) GetJSON(key string, v any) error {
	data, err := d.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %q: %w", key, err)
	}
	return nil
}
