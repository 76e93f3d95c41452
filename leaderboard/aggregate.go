package leaderboard

// Aggregate reduces a sequence of point events to per-subject rollups in a
// single pass. Summation is commutative, so the result does not depend on
// event order.
//
// The subject key is the person id, except for the projects board where
// events roll up under their project id and every contributing person is
// registered so MemberCount can be derived. Soft-skill aggregation keeps
// the attendance and profile sums individually in addition to the total.
func Aggregate(kind Kind, events []PointEvent) map[string]*Entry {
	entries := make(map[string]*Entry)

	for _, e := range events {
		key := e.SubjectID
		name := e.SubjectName
		if kind == KindProjects {
			key = e.ProjectID
			name = e.ProjectName
		}
		if key == "" {
			continue
		}

		entry, ok := entries[key]
		if !ok {
			entry = &Entry{
				SubjectID:   key,
				DisplayName: name,
				Breakdown:   make(map[string]int),
				memberIDs:   make(map[string]struct{}),
			}
			entries[key] = entry
		}

		category := e.Category
		if category == "" {
			category = "Other"
		}

		entry.TotalPoints += e.Points
		entry.Breakdown[category] += e.Points

		if e.OccurredAt.After(entry.LatestUpdate) {
			entry.LatestUpdate = e.OccurredAt
		}

		switch kind {
		case KindProjects:
			if e.SubjectID != "" {
				entry.memberIDs[e.SubjectID] = struct{}{}
				entry.MemberCount = len(entry.memberIDs)
			}
		case KindSoftSkills:
			switch e.Kind {
			case EventAttendance:
				entry.AttendancePoints += e.Points
			case EventProfile:
				entry.ProfilePoints += e.Points
			}
		}
	}

	return entries
}
