package leaderboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) TechnicalEvents(ctx context.Context, category string, since time.Time) ([]PointEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.subject_id, m.display_name, COALESCE(c.name, ''), e.points, e.occurred_at
		FROM point_events e
		JOIN members m ON m.id = e.subject_id
		JOIN skill_categories c ON c.id = e.category_id
		WHERE e.kind = 'skill'
		  AND c.name = $1
		  AND ($2::timestamptz IS NULL OR e.occurred_at >= $2)
	`, category, nullTime(since))
	if err != nil {
		return nil, fmt.Errorf("query technical events: %w", err)
	}
	defer rows.Close()

	var events []PointEvent
	for rows.Next() {
		var (
			subjectID int64
			e         PointEvent
		)
		if err := rows.Scan(&subjectID, &e.SubjectName, &e.Category, &e.Points, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan technical event: %w", err)
		}
		e.SubjectID = strconv.FormatInt(subjectID, 10)
		e.Kind = EventSkill
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PostgresRepository) SoftSkillEvents(ctx context.Context) ([]PointEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.subject_id, m.display_name, e.kind, e.points, e.occurred_at
		FROM point_events e
		JOIN members m ON m.id = e.subject_id
		WHERE e.kind IN ('attendance', 'profile')
	`)
	if err != nil {
		return nil, fmt.Errorf("query soft-skill events: %w", err)
	}
	defer rows.Close()

	var events []PointEvent
	for rows.Next() {
		var (
			subjectID int64
			e         PointEvent
		)
		if err := rows.Scan(&subjectID, &e.SubjectName, &e.Kind, &e.Points, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan soft-skill event: %w", err)
		}
		e.SubjectID = strconv.FormatInt(subjectID, 10)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PostgresRepository) ProjectEvents(ctx context.Context, since time.Time) ([]PointEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.subject_id, m.display_name, e.project_id, p.name, COALESCE(c.name, ''), e.points, e.occurred_at
		FROM point_events e
		JOIN members m ON m.id = e.subject_id
		JOIN projects p ON p.id = e.project_id
		LEFT JOIN skill_categories c ON c.id = e.category_id
		WHERE e.kind = 'project'
		  AND ($1::timestamptz IS NULL OR e.occurred_at >= $1)
	`, nullTime(since))
	if err != nil {
		return nil, fmt.Errorf("query project events: %w", err)
	}
	defer rows.Close()

	var events []PointEvent
	for rows.Next() {
		var (
			subjectID int64
			projectID int64
			e         PointEvent
		)
		if err := rows.Scan(&subjectID, &e.SubjectName, &projectID, &e.ProjectName, &e.Category, &e.Points, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan project event: %w", err)
		}
		e.SubjectID = strconv.FormatInt(subjectID, 10)
		e.ProjectID = strconv.FormatInt(projectID, 10)
		e.Kind = EventProject
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PostgresRepository) TopTechnical(ctx context.Context, category string, since time.Time, limit int) (map[string]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT subject_id, display_name, total_points, latest_update
		FROM leaderboard_technical_top($1, $2, $3)
	`, category, nullTime(since), limit)
	if err != nil {
		return nil, routineErr("leaderboard_technical_top", err)
	}
	defer rows.Close()

	entries := make(map[string]*Entry)
	for rows.Next() {
		var (
			subjectID sql.NullInt64
			name      sql.NullString
			total     sql.NullInt64
			latest    sql.NullTime
		)
		if err := rows.Scan(&subjectID, &name, &total, &latest); err != nil {
			return nil, fmt.Errorf("scan technical row: %w", err)
		}
		e := &Entry{
			SubjectID:    strconv.FormatInt(subjectID.Int64, 10),
			DisplayName:  defaultName(name),
			TotalPoints:  int(total.Int64),
			LatestUpdate: latest.Time,
			Breakdown:    map[string]int{category: int(total.Int64)},
		}
		entries[e.SubjectID] = e
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) TopSoftSkills(ctx context.Context, limit int) (map[string]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT subject_id, display_name, attendance_points, profile_points, total_points
		FROM leaderboard_softskills_top($1)
	`, limit)
	if err != nil {
		return nil, routineErr("leaderboard_softskills_top", err)
	}
	defer rows.Close()

	entries := make(map[string]*Entry)
	for rows.Next() {
		var (
			subjectID  sql.NullInt64
			name       sql.NullString
			attendance sql.NullInt64
			profile    sql.NullInt64
			total      sql.NullInt64
		)
		if err := rows.Scan(&subjectID, &name, &attendance, &profile, &total); err != nil {
			return nil, fmt.Errorf("scan soft-skill row: %w", err)
		}
		e := &Entry{
			SubjectID:        strconv.FormatInt(subjectID.Int64, 10),
			DisplayName:      defaultName(name),
			AttendancePoints: int(attendance.Int64),
			ProfilePoints:    int(profile.Int64),
			TotalPoints:      int(total.Int64),
		}
		entries[e.SubjectID] = e
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) TopProjects(ctx context.Context, since time.Time, limit int) (map[string]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT project_id, project_name, total_points, member_count, breakdown
		FROM leaderboard_projects_top($1, $2)
	`, nullTime(since), limit)
	if err != nil {
		return nil, routineErr("leaderboard_projects_top", err)
	}
	defer rows.Close()

	entries := make(map[string]*Entry)
	for rows.Next() {
		var (
			projectID sql.NullInt64
			name      sql.NullString
			total     sql.NullInt64
			members   sql.NullInt64
			breakdown []byte
		)
		if err := rows.Scan(&projectID, &name, &total, &members, &breakdown); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		e := &Entry{
			SubjectID:   strconv.FormatInt(projectID.Int64, 10),
			DisplayName: defaultName(name),
			TotalPoints: int(total.Int64),
			MemberCount: int(members.Int64),
			Breakdown:   map[string]int{},
		}
		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &e.Breakdown); err != nil {
				return nil, fmt.Errorf("decode project breakdown: %w", err)
			}
		}
		entries[e.SubjectID] = e
	}
	return entries, rows.Err()
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func defaultName(s sql.NullString) string {
	if !s.Valid || s.String == "" {
		return "Unknown"
	}
	return s.String
}

// routineErr maps Postgres undefined_function errors to
// ErrRoutineUnavailable so callers can fall back to manual aggregation.
func routineErr(routine string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42883" {
		return fmt.Errorf("%s: %w", routine, ErrRoutineUnavailable)
	}
	return fmt.Errorf("call %s: %w", routine, err)
}

var _ EventStore = (*PostgresRepository)(nil)
var _ PreAggregator = (*PostgresRepository)(nil)
