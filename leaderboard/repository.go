package leaderboard

import (
	"context"
	"errors"
	"time"
)

// ErrRoutineUnavailable reports that the server-side pre-aggregation
// routine is missing. The service recovers from it by running the manual
// pipeline.
var ErrRoutineUnavailable = errors.New("pre-aggregation routine unavailable")

// EventStore fetches raw point events for the manual aggregation path.
// since is the inclusive lower timestamp bound; the zero time means no
// bound.
type EventStore interface {
	TechnicalEvents(ctx context.Context, category string, since time.Time) ([]PointEvent, error)
	SoftSkillEvents(ctx context.Context) ([]PointEvent, error)
	ProjectEvents(ctx context.Context, since time.Time) ([]PointEvent, error)
}

// PreAggregator is the preferred path: a server-side routine that returns
// rows already aggregated. Rows are re-ranked locally, so both paths share
// one ordering rule.
type PreAggregator interface {
	TopTechnical(ctx context.Context, category string, since time.Time, limit int) (map[string]*Entry, error)
	TopSoftSkills(ctx context.Context, limit int) (map[string]*Entry, error)
	TopProjects(ctx context.Context, since time.Time, limit int) (map[string]*Entry, error)
}
