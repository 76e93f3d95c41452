package leaderboard

import "time"

// Cutoff returns the inclusive lower bound for a window, computed from the
// given instant. The second return is false for the all-time window, which
// has no bound. Weeks start on Sunday at midnight in now's location.
func (w Window) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeekly:
		start := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
		return start, true
	case WindowMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, true
	}
	return time.Time{}, false
}

// FilterEvents keeps the events whose occurredAt falls inside the window.
// The boundary is inclusive. now must be captured once per request so the
// cutoff cannot shift mid-computation.
func FilterEvents(events []PointEvent, w Window, now time.Time) []PointEvent {
	cutoff, bounded := w.Cutoff(now)
	if !bounded {
		return events
	}

	kept := make([]PointEvent, 0, len(events))
	for _, e := range events {
		if !e.OccurredAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}
