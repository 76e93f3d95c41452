package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// ImportEvents appends a batch of point events inside one transaction.
// Events without a timestamp get defaultOccurred. Category names are
// upserted into skill_categories on the fly.
func (r *PostgresRepository) ImportEvents(ctx context.Context, events []PointEvent, defaultOccurred time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin point event transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO point_events (subject_id, project_id, category_id, kind, points, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare point event insert: %w", err)
	}
	defer stmt.Close()

	categoryIDs := make(map[string]int64)
	var inserted int64
	for _, event := range events {
		subjectID, err := strconv.ParseInt(event.SubjectID, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid subject id %q: %w", event.SubjectID, err)
		}

		var projectID any
		if event.ProjectID != "" {
			id, err := strconv.ParseInt(event.ProjectID, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid project id %q: %w", event.ProjectID, err)
			}
			projectID = id
		}

		var categoryID any
		if event.Category != "" {
			id, ok := categoryIDs[event.Category]
			if !ok {
				id, err = upsertCategory(ctx, tx, event.Category)
				if err != nil {
					return 0, err
				}
				categoryIDs[event.Category] = id
			}
			categoryID = id
		}

		occurredAt := event.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = defaultOccurred
		}

		if _, err := stmt.ExecContext(ctx, subjectID, projectID, categoryID, event.Kind, event.Points, occurredAt); err != nil {
			return 0, fmt.Errorf("insert point event subject_id=%s kind=%s: %w", event.SubjectID, event.Kind, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit point event transaction: %w", err)
	}

	return inserted, nil
}

func upsertCategory(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO skill_categories (name)
		VALUES ($1)
		ON CONFLICT (name)
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert skill category %q: %w", name, err)
	}
	return id, nil
}
