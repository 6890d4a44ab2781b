package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

var exportHeader = []string{
	"id", "phone", "name", "age", "gender", "skill", "experience",
	"location", "wage", "languages", "created_at", "updated_at",
}

// ExportCSV writes every worker matching f to w as CSV with a header row.
// It returns the number of data rows written.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer, f WorkerFilter) (int, error) {
	workers, err := s.ListWorkers(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("failed to list workers: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, err
	}
	for _, wk := range workers {
		record := []string{
			wk.ID, wk.Phone, wk.Name, wk.Age, wk.Gender, wk.Skill, wk.Experience,
			wk.Location, wk.Wage, wk.Languages,
			wk.CreatedAt.UTC().Format(time.RFC3339), wk.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(workers), nil
}
