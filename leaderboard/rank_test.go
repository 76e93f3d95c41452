package leaderboard

import (
	"testing"
	"time"
)

func entryMap(entries ...*Entry) map[string]*Entry {
	m := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		m[e.SubjectID] = e
	}
	return m
}

func TestRankTechnicalScenario(t *testing.T) {
	t2 := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)

	entries := entryMap(
		&Entry{SubjectID: "A", DisplayName: "Alice", TotalPoints: 100, LatestUpdate: t2},
		&Entry{SubjectID: "B", DisplayName: "Bob", TotalPoints: 90, LatestUpdate: t3},
	)

	ranked, err := Rank(entries, 10)
	if err != nil {
		t.Fatalf("expected rank to succeed, got error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 leaders, got %d", len(ranked))
	}
	if ranked[0].SubjectID != "A" || ranked[0].TotalPoints != 100 {
		t.Fatalf("expected A with 100 points first, got %s with %d", ranked[0].SubjectID, ranked[0].TotalPoints)
	}
	if ranked[1].SubjectID != "B" || ranked[1].TotalPoints != 90 {
		t.Fatalf("expected B with 90 points second, got %s with %d", ranked[1].SubjectID, ranked[1].TotalPoints)
	}
}

func TestRankTieBreakStable(t *testing.T) {
	entries := entryMap(
		&Entry{SubjectID: "2", DisplayName: "John", TotalPoints: 90},
		&Entry{SubjectID: "1", DisplayName: "Jane", TotalPoints: 90},
	)

	first, err := Rank(entries, 10)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if first[0].DisplayName != "Jane" || first[1].DisplayName != "John" {
		t.Fatalf("expected Jane before John on equal points, got %s then %s", first[0].DisplayName, first[1].DisplayName)
	}

	for i := 0; i < 10; i++ {
		again, err := Rank(entries, 10)
		if err != nil {
			t.Fatalf("rank failed: %v", err)
		}
		if again[0].SubjectID != first[0].SubjectID || again[1].SubjectID != first[1].SubjectID {
			t.Fatalf("tie order changed between calls on unchanged input")
		}
	}
}

func TestRankDropsNonPositiveTotals(t *testing.T) {
	entries := entryMap(
		&Entry{SubjectID: "A", DisplayName: "Alice", TotalPoints: 10},
		&Entry{SubjectID: "B", DisplayName: "Bob", TotalPoints: 0},
	)

	ranked, err := Rank(entries, 10)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(ranked) != 1 || ranked[0].SubjectID != "A" {
		t.Fatalf("expected only the positive-total entry, got %d entries", len(ranked))
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	entries := entryMap(
		&Entry{SubjectID: "A", DisplayName: "Alice", TotalPoints: 30},
		&Entry{SubjectID: "B", DisplayName: "Bob", TotalPoints: 20},
		&Entry{SubjectID: "C", DisplayName: "Carol", TotalPoints: 10},
	)

	ranked, err := Rank(entries, 2)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries after truncation, got %d", len(ranked))
	}
	if ranked[0].SubjectID != "A" || ranked[1].SubjectID != "B" {
		t.Fatalf("expected top two by points, got %s then %s", ranked[0].SubjectID, ranked[1].SubjectID)
	}
}

func TestRankRejectsOutOfRangeLimit(t *testing.T) {
	entries := entryMap(&Entry{SubjectID: "A", DisplayName: "Alice", TotalPoints: 10})

	if _, err := Rank(entries, 0); err == nil {
		t.Fatal("expected error for limit 0")
	}
	if _, err := Rank(entries, 51); err == nil {
		t.Fatal("expected error for limit 51")
	}
	if _, err := Rank(entries, 1); err != nil {
		t.Fatalf("expected limit 1 to be valid, got %v", err)
	}
	if _, err := Rank(entries, 50); err != nil {
		t.Fatalf("expected limit 50 to be valid, got %v", err)
	}
}
