// Package store persists the operator's credential token (and a little
// convenience state) in a local SQLite database under the state dir.
//
// Every public operation is best-effort: a missing state dir, an unwritable
// disk, or a corrupt database degrades to an empty read or a no-op. The
// token is opaque — nothing here validates or inspects it; whether it is
// still good is always the server's call.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	keyToken        = "credentialToken"
	keyLastUsername = "lastUsername"
)

// Store is a handle on the local state database. The zero value with a Dir
// is ready to use; the database file is created on first write.
type Store struct {
	Dir string
}

func (s Store) dbPath() string {
	return filepath.Join(filepath.Clean(s.Dir), "state.sqlite")
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if s.Dir == "" {
		return nil, errors.New("store: no state dir")
	}
	if err := os.MkdirAll(filepath.Clean(s.Dir), 0o700); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid
	// "database is locked" flakiness when a CLI command races the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) getMeta(key string) (string, error) {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()
	var v string
	err = db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s Store) setMeta(key, value string) error {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s Store) delMeta(key string) error {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM meta WHERE key = ?`, key)
	return err
}

// Token returns the stored credential token, or "" when none is stored or
// the store is unavailable.
func (s Store) Token() string {
	v, err := s.getMeta(keyToken)
	if err != nil {
		return ""
	}
	return v
}

// SetToken stores the credential token. Storage failure is swallowed.
func (s Store) SetToken(token string) {
	_ = s.setMeta(keyToken, token)
}

// ClearToken removes the stored credential token. Storage failure is
// swallowed.
func (s Store) ClearToken() {
	_ = s.delMeta(keyToken)
}

// LastUsername returns the username of the last successful login, for
// prefilling the login form. Empty when unknown.
func (s Store) LastUsername() string {
	v, err := s.getMeta(keyLastUsername)
	if err != nil {
		return ""
	}
	return v
}

// SetLastUsername records the username of a successful login.
func (s Store) SetLastUsername(name string) {
	_ = s.setMeta(keyLastUsername, name)
}
