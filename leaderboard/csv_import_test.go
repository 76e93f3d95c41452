package leaderboard

import (
	"strings"
	"testing"
	"time"
)

func TestParseEventsCSVSuccess(t *testing.T) {
	csvData := "subject_id,kind,points,category,occurred_at\n" +
		"101,skill,30,Frontend,2024-07-01T12:00:00Z\n" +
		"202,attendance,5,,\n"

	events, err := ParseEventsCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected parse to succeed, got error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].SubjectID != "101" || events[0].Kind != EventSkill || events[0].Points != 30 {
		t.Fatalf("unexpected first row parsed: %+v", events[0])
	}
	if events[0].Category != "Frontend" {
		t.Fatalf("expected category Frontend, got %q", events[0].Category)
	}
	want := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	if !events[0].OccurredAt.Equal(want) {
		t.Fatalf("expected occurred_at %v, got %v", want, events[0].OccurredAt)
	}
	if !events[1].OccurredAt.IsZero() {
		t.Fatalf("expected empty occurred_at cell to parse as zero time")
	}
}

func TestParseEventsCSVMissingRequiredColumn(t *testing.T) {
	csvData := `subject_id,points
101,12
`

	_, err := ParseEventsCSV(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected missing required column error, got nil")
	}
}

func TestParseEventsCSVRejectsNegativePoints(t *testing.T) {
	csvData := "subject_id,kind,points\n101,skill,-5\n"

	_, err := ParseEventsCSV(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected negative points to be rejected, got nil")
	}
}

func TestParseEventsCSVRequiresProjectIDForProjectEvents(t *testing.T) {
	csvData := "subject_id,kind,points,project_id\n101,project,10,\n"

	_, err := ParseEventsCSV(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected project event without project_id to be rejected, got nil")
	}
}
