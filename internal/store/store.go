// Package store persists worker profiles, the answer log and user-managed
// vocabulary synonyms in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

// New opens (creating when needed) the database at dbPath and applies the
// schema. The parent directory is created for file paths.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dbPath != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// modernc sqlite serialises writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workers (
		id TEXT PRIMARY KEY,
		phone TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		age TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		skill TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		wage TEXT NOT NULL DEFAULT '',
		languages TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- answer_log keeps every validation attempt, accepted or not
	CREATE TABLE IF NOT EXISTS answer_log (
		id TEXT PRIMARY KEY,
		phone TEXT NOT NULL DEFAULT '',
		question_key TEXT NOT NULL,
		raw_text TEXT NOT NULL,
		source_lang TEXT NOT NULL DEFAULT '',
		is_valid BOOLEAN NOT NULL,
		cleaned_value TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- synonyms extend the built-in vocabularies (spoken form -> canonical)
	CREATE TABLE IF NOT EXISTS synonyms (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		term TEXT NOT NULL,
		canonical TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(domain, term)
	);

	CREATE INDEX IF NOT EXISTS idx_answer_log_phone ON answer_log(phone);
	CREATE INDEX IF NOT EXISTS idx_answer_log_key ON answer_log(question_key);
	CREATE INDEX IF NOT EXISTS idx_synonyms_domain ON synonyms(domain);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// so Devanagari stored from different keyboards compares equal.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
