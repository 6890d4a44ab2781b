package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/valpere/sahayak/internal/vocab"
)

// SynonymEntry is a user-defined spoken form for a canonical value.
type SynonymEntry struct {
	ID        string
	Domain    vocab.Domain
	Term      string
	Canonical string
	CreatedAt time.Time
}

// AddSynonym inserts or replaces the canonical value for term in domain.
// Terms are stored as vocabulary keys.
func (s *Store) AddSynonym(ctx context.Context, domain vocab.Domain, term, canonical string) error {
	key := vocab.Key(term)
	if key == "" || normalizeText(canonical) == "" {
		return fmt.Errorf("synonym term and canonical value are required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO synonyms (id, domain, term, canonical, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(domain, term) DO UPDATE SET canonical = excluded.canonical`,
		uuid.NewString(), string(domain), key, normalizeText(canonical), time.Now().UTC())
	return err
}

// ListSynonyms returns synonyms, optionally filtered by domain (pass "" for
// all).
func (s *Store) ListSynonyms(ctx context.Context, domain vocab.Domain) ([]SynonymEntry, error) {
	query := `SELECT id, domain, term, canonical, created_at FROM synonyms`
	var args []interface{}
	if domain != "" {
		query += ` WHERE domain = ?`
		args = append(args, string(domain))
	}
	query += ` ORDER BY domain, term`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SynonymEntry
	for rows.Next() {
		var e SynonymEntry
		var d string
		if err := rows.Scan(&e.ID, &d, &e.Term, &e.Canonical, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Domain = vocab.Domain(d)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteSynonym removes a synonym by ID.
func (s *Store) DeleteSynonym(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM synonyms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("synonym %s: %w", id, ErrNotFound)
	}
	return nil
}

// LoadSynonyms returns every stored synonym grouped by domain, ready for
// vocab.Set.Extend.
func (s *Store) LoadSynonyms(ctx context.Context) (map[vocab.Domain]map[string]string, error) {
	entries, err := s.ListSynonyms(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make(map[vocab.Domain]map[string]string)
	for _, e := range entries {
		if out[e.Domain] == nil {
			out[e.Domain] = make(map[string]string)
		}
		out[e.Domain][e.Term] = e.Canonical
	}
	return out, nil
}
