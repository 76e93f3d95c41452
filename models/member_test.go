package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMemberListingJSONShape(t *testing.T) {
	m := Member{
		ID:                7,
		DisplayName:       "Alice",
		RoleID:            RoleCodev,
		Points:            120,
		InternalStatus:    StatusTraining,
		ApplicationStatus: ApplicationPassed,
		Available:         true,
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal member: %v", err)
	}

	body := string(data)
	for _, key := range []string{`"subjectId":7`, `"displayName":"Alice"`, `"role":4`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected member JSON to contain %s, got %s", key, body)
		}
	}
	if strings.Contains(body, `"id":`) || strings.Contains(body, `"roleId":`) {
		t.Fatalf("member JSON still uses old field names: %s", body)
	}
}
