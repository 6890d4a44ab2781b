package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Worker is a completed onboarding profile. Fields hold cleaned values.
type Worker struct {
	ID         string    `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Age        string    `json:"age"`
	Gender     string    `json:"gender"`
	Skill      string    `json:"skill"`
	Experience string    `json:"experience"`
	Location   string    `json:"location"`
	Wage       string    `json:"wage"`
	Languages  string    `json:"languages"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WorkerFilter narrows ListWorkers. Empty fields match everything.
type WorkerFilter struct {
	Skill    string
	Location string
	Limit    int
}

const workerColumns = `id, phone, name, age, gender, skill, experience, location, wage, languages, created_at, updated_at`

// UpsertWorker inserts a worker or updates the profile stored for the same
// phone number. The stored ID is written back into w.
func (s *Store) UpsertWorker(ctx context.Context, w *Worker) error {
	if strings.TrimSpace(w.Phone) == "" {
		return fmt.Errorf("worker phone is required")
	}
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workers (`+workerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(phone) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			skill = excluded.skill,
			experience = excluded.experience,
			location = excluded.location,
			wage = excluded.wage,
			languages = excluded.languages,
			updated_at = excluded.updated_at`,
		id, w.Phone, normalizeText(w.Name), w.Age, w.Gender, w.Skill, w.Experience,
		normalizeText(w.Location), w.Wage, w.Languages, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert worker: %w", err)
	}

	stored, err := s.GetWorker(ctx, w.Phone)
	if err != nil {
		return err
	}
	*w = *stored
	return nil
}

// GetWorker returns the worker registered with phone, or ErrNotFound.
func (s *Store) GetWorker(ctx context.Context, phone string) (*Worker, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+workerColumns+` FROM workers WHERE phone = ?`, phone)
	w, err := scanWorker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("worker %s: %w", phone, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkers returns workers ordered by most recently updated.
func (s *Store) ListWorkers(ctx context.Context, f WorkerFilter) ([]Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers`
	var conds []string
	var args []interface{}
	if f.Skill != "" {
		conds = append(conds, `skill = ? COLLATE NOCASE`)
		args = append(args, f.Skill)
	}
	if f.Location != "" {
		conds = append(conds, `location = ? COLLATE NOCASE`)
		args = append(args, f.Location)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY updated_at DESC, phone`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

// DeleteWorker removes the worker registered with phone.
func (s *Store) DeleteWorker(ctx context.Context, phone string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM workers WHERE phone = ?`, phone)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("worker %s: %w", phone, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorker(r rowScanner) (*Worker, error) {
	var w Worker
	err := r.Scan(&w.ID, &w.Phone, &w.Name, &w.Age, &w.Gender, &w.Skill, &w.Experience,
		&w.Location, &w.Wage, &w.Languages, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
