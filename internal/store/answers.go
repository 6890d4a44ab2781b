package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnswerRecord is one validation attempt.
type AnswerRecord struct {
	ID           string
	Phone        string
	QuestionKey  string
	RawText      string
	SourceLang   string
	Valid        bool
	CleanedValue string
	Reason       string
	CreatedAt    time.Time
}

// FieldStats summarises attempts for one question key.
type FieldStats struct {
	QuestionKey string
	Total       int
	Valid       int
	Invalid     int
}

// LogAnswer appends an attempt to the answer log.
func (s *Store) LogAnswer(ctx context.Context, rec AnswerRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answer_log (id, phone, question_key, raw_text, source_lang, is_valid, cleaned_value, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Phone, rec.QuestionKey, normalizeText(rec.RawText), rec.SourceLang,
		rec.Valid, rec.CleanedValue, rec.Reason, rec.CreatedAt)
	return err
}

// AnswerHistory returns the attempts logged for phone, oldest first.
func (s *Store) AnswerHistory(ctx context.Context, phone string) ([]AnswerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, phone, question_key, raw_text, source_lang, is_valid, cleaned_value, reason, created_at
		 FROM answer_log WHERE phone = ? ORDER BY created_at, rowid`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnswerRecord
	for rows.Next() {
		var r AnswerRecord
		if err := rows.Scan(&r.ID, &r.Phone, &r.QuestionKey, &r.RawText, &r.SourceLang,
			&r.Valid, &r.CleanedValue, &r.Reason, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// AnswerStats returns per-question acceptance counts ordered by key.
func (s *Store) AnswerStats(ctx context.Context) ([]FieldStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			question_key,
			COUNT(*),
			COALESCE(SUM(CASE WHEN is_valid THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN NOT is_valid THEN 1 ELSE 0 END), 0)
		FROM answer_log
		GROUP BY question_key
		ORDER BY question_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []FieldStats
	for rows.Next() {
		var fs FieldStats
		if err := rows.Scan(&fs.QuestionKey, &fs.Total, &fs.Valid, &fs.Invalid); err != nil {
			return nil, err
		}
		stats = append(stats, fs)
	}
	return stats, rows.Err()
}
