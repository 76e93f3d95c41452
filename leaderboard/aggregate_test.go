package leaderboard

import (
	"testing"
	"time"
)

func TestAggregateTechnical(t *testing.T) {
	t1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)

	events := []PointEvent{
		{SubjectID: "A", SubjectName: "Alice", Category: "Frontend", Points: 60, OccurredAt: t1},
		{SubjectID: "A", SubjectName: "Alice", Category: "Frontend", Points: 40, OccurredAt: t2},
		{SubjectID: "B", SubjectName: "Bob", Category: "Frontend", Points: 90, OccurredAt: t3},
	}

	entries := Aggregate(KindTechnical, events)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	a := entries["A"]
	if a.TotalPoints != 100 {
		t.Fatalf("expected A total 100, got %d", a.TotalPoints)
	}
	if !a.LatestUpdate.Equal(t2) {
		t.Fatalf("expected A latest update %v, got %v", t2, a.LatestUpdate)
	}
	if a.Breakdown["Frontend"] != 100 {
		t.Fatalf("expected A Frontend breakdown 100, got %d", a.Breakdown["Frontend"])
	}
	if entries["B"].TotalPoints != 90 {
		t.Fatalf("expected B total 90, got %d", entries["B"].TotalPoints)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	t1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []PointEvent{
		{SubjectID: "A", Category: "Backend", Points: 10, OccurredAt: t1},
		{SubjectID: "A", Category: "Frontend", Points: 20, OccurredAt: t1.Add(time.Hour)},
		{SubjectID: "A", Category: "Backend", Points: 30, OccurredAt: t1.Add(2 * time.Hour)},
	}
	reversed := []PointEvent{events[2], events[1], events[0]}

	forward := Aggregate(KindTechnical, events)["A"]
	backward := Aggregate(KindTechnical, reversed)["A"]

	if forward.TotalPoints != backward.TotalPoints {
		t.Fatalf("totals differ by order: %d vs %d", forward.TotalPoints, backward.TotalPoints)
	}
	if !forward.LatestUpdate.Equal(backward.LatestUpdate) {
		t.Fatalf("latest updates differ by order: %v vs %v", forward.LatestUpdate, backward.LatestUpdate)
	}
	if forward.Breakdown["Backend"] != backward.Breakdown["Backend"] {
		t.Fatalf("breakdowns differ by order")
	}
}

func TestAggregateBreakdownSumsToTotal(t *testing.T) {
	t1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []PointEvent{
		{SubjectID: "A", Category: "Frontend", Points: 12, OccurredAt: t1},
		{SubjectID: "A", Category: "Backend", Points: 7, OccurredAt: t1},
		{SubjectID: "A", Points: 3, OccurredAt: t1}, // no category folds into Other
	}

	entry := Aggregate(KindTechnical, events)["A"]
	var sum int
	for _, v := range entry.Breakdown {
		sum += v
	}
	if sum != entry.TotalPoints {
		t.Fatalf("breakdown sum %d does not match total %d", sum, entry.TotalPoints)
	}
	if entry.Breakdown["Other"] != 3 {
		t.Fatalf("expected uncategorized points under Other, got %d", entry.Breakdown["Other"])
	}
}

func TestAggregateSoftSkills(t *testing.T) {
	t1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []PointEvent{
		{SubjectID: "A", SubjectName: "Alice", Kind: EventAttendance, Points: 50, OccurredAt: t1},
		{SubjectID: "A", SubjectName: "Alice", Kind: EventProfile, Points: 25, OccurredAt: t1},
	}

	entry := Aggregate(KindSoftSkills, events)["A"]
	if entry.AttendancePoints != 50 {
		t.Fatalf("expected attendance 50, got %d", entry.AttendancePoints)
	}
	if entry.ProfilePoints != 25 {
		t.Fatalf("expected profile 25, got %d", entry.ProfilePoints)
	}
	if entry.TotalPoints != 75 {
		t.Fatalf("expected total 75, got %d", entry.TotalPoints)
	}
}

func TestAggregateProjects(t *testing.T) {
	t1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []PointEvent{
		{SubjectID: "A", ProjectID: "P1", ProjectName: "Platform", Category: "Frontend", Kind: EventProject, Points: 30, OccurredAt: t1},
		{SubjectID: "B", ProjectID: "P1", ProjectName: "Platform", Category: "Backend", Kind: EventProject, Points: 20, OccurredAt: t1.Add(time.Hour)},
		{SubjectID: "A", ProjectID: "P1", ProjectName: "Platform", Category: "Frontend", Kind: EventProject, Points: 10, OccurredAt: t1},
	}

	entry := Aggregate(KindProjects, events)["P1"]
	if entry == nil {
		t.Fatal("expected project P1 entry")
	}
	if entry.TotalPoints != 60 {
		t.Fatalf("expected project total 60, got %d", entry.TotalPoints)
	}
	if entry.MemberCount != 2 {
		t.Fatalf("expected 2 distinct members, got %d", entry.MemberCount)
	}
	if entry.Breakdown["Frontend"] != 40 || entry.Breakdown["Backend"] != 20 {
		t.Fatalf("unexpected breakdown: %+v", entry.Breakdown)
	}
	if entry.DisplayName != "Platform" {
		t.Fatalf("expected project name Platform, got %q", entry.DisplayName)
	}
}

func TestAggregateKeepsZeroTotalsInMap(t *testing.T) {
	t1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []PointEvent{
		{SubjectID: "A", Kind: EventAttendance, Points: 0, OccurredAt: t1},
	}

	entries := Aggregate(KindSoftSkills, events)
	if _, ok := entries["A"]; !ok {
		t.Fatal("zero-total subject should stay in the intermediate map; Rank drops it")
	}
}
