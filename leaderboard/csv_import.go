package leaderboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var importKinds = map[string]bool{
	EventSkill:      true,
	EventAttendance: true,
	EventProfile:    true,
	EventProject:    true,
}

// ParseEventsCSV reads a point-event backfill file. Required columns are
// subject_id, kind and points; category, project_id and occurred_at
// (RFC 3339) are optional.
func ParseEventsCSV(reader io.Reader) ([]PointEvent, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv must include a header row and at least one data row")
	}

	headers := make(map[string]int, len(records[0]))
	for idx, col := range records[0] {
		headers[strings.ToLower(strings.TrimSpace(col))] = idx
	}

	required := []string{"subject_id", "kind", "points"}
	for _, col := range required {
		if _, ok := headers[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	events := make([]PointEvent, 0, len(records)-1)
	for i, record := range records[1:] {
		lineNo := i + 2

		subjectID := strings.TrimSpace(readValue(record, headers["subject_id"]))
		if subjectID == "" {
			return nil, fmt.Errorf("line %d subject_id: value is required", lineNo)
		}

		kind := strings.TrimSpace(readValue(record, headers["kind"]))
		if !importKinds[kind] {
			return nil, fmt.Errorf("line %d kind: unknown kind %q", lineNo, kind)
		}

		points, err := readInt(record, headers["points"])
		if err != nil {
			return nil, fmt.Errorf("line %d points: %w", lineNo, err)
		}
		if points < 0 {
			return nil, fmt.Errorf("line %d points: must not be negative", lineNo)
		}

		event := PointEvent{
			SubjectID: subjectID,
			Kind:      kind,
			Points:    points,
		}

		if idx, ok := headers["category"]; ok {
			event.Category = strings.TrimSpace(readValue(record, idx))
		}
		if idx, ok := headers["project_id"]; ok {
			event.ProjectID = strings.TrimSpace(readValue(record, idx))
		}
		if kind == EventProject && event.ProjectID == "" {
			return nil, fmt.Errorf("line %d project_id: required for project events", lineNo)
		}

		if idx, ok := headers["occurred_at"]; ok {
			value := strings.TrimSpace(readValue(record, idx))
			if value != "" {
				occurredAt, err := time.Parse(time.RFC3339, value)
				if err != nil {
					return nil, fmt.Errorf("line %d occurred_at: invalid timestamp %q", lineNo, value)
				}
				event.OccurredAt = occurredAt
			}
		}

		events = append(events, event)
	}

	return events, nil
}

func readInt(record []string, idx int) (int, error) {
	value := strings.TrimSpace(readValue(record, idx))
	if value == "" {
		return 0, fmt.Errorf("value is required")
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", value)
	}
	return parsed, nil
}

func readValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
