package leaderboard

import (
	"fmt"
	"time"
)

// Kind selects which of the three boards an aggregation serves.
type Kind string

const (
	KindTechnical  Kind = "technical"
	KindSoftSkills Kind = "soft-skills"
	KindProjects   Kind = "projects"
)

// Window restricts which point events count toward a total.
type Window string

const (
	WindowAll     Window = "all"
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowAll, WindowWeekly, WindowMonthly:
		return Window(s), nil
	}
	return "", fmt.Errorf("unknown timeFilter %q", s)
}

// Event kinds as stored in point_events.kind.
const (
	EventSkill      = "skill"
	EventAttendance = "attendance"
	EventProfile    = "profile"
	EventProject    = "project"
)

// PointEvent is one earned-point record. Events are append-only facts;
// the engine only reads and aggregates them.
type PointEvent struct {
	SubjectID   string    `json:"subjectId"`
	SubjectName string    `json:"subjectName"`
	ProjectID   string    `json:"projectId,omitempty"`
	ProjectName string    `json:"projectName,omitempty"`
	Category    string    `json:"category,omitempty"`
	Kind        string    `json:"kind"`
	Points      int       `json:"points"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Entry is the per-subject rollup produced by Aggregate. TotalPoints always
// equals the sum of Breakdown's values.
type Entry struct {
	SubjectID        string
	DisplayName      string
	TotalPoints      int
	LatestUpdate     time.Time
	Breakdown        map[string]int
	AttendancePoints int
	ProfilePoints    int
	MemberCount      int

	memberIDs map[string]struct{}
}

// Board is the ranked, truncated result returned by the service.
// TotalCount equals len(Entries), never the pre-truncation count.
type Board struct {
	Entries    []*Entry
	TotalCount int
}
