package roster

import (
	"testing"

	"codev-backend/models"
)

func TestScoreMonotoneInPoints(t *testing.T) {
	base := models.Member{ID: 1, Points: 50, YearsOfExperience: 2}
	more := base
	more.Points = 80

	if Score(more, false) <= Score(base, false) {
		t.Fatal("expected score to grow with points")
	}
}

func TestScoreMonotoneInExperience(t *testing.T) {
	base := models.Member{ID: 1, Points: 50, YearsOfExperience: 2}
	more := base
	more.YearsOfExperience = 5

	if Score(more, false) <= Score(base, false) {
		t.Fatal("expected score to grow with years of experience")
	}
}

func TestAvailableMemberOutranksEqualUnavailable(t *testing.T) {
	unavailable := models.Member{ID: 1, DisplayName: "Alice", Points: 50}
	available := models.Member{ID: 2, DisplayName: "Bob", Points: 50, Available: true}

	ordered := Prioritize([]models.Member{unavailable, available}, false)
	if ordered[0].ID != available.ID {
		t.Fatalf("expected available member first, got member %d", ordered[0].ID)
	}
}

func TestStrictModeSinksUnpassedApplications(t *testing.T) {
	passed := models.Member{ID: 1, DisplayName: "Alice", Points: 10, ApplicationStatus: models.ApplicationPassed}
	unpassed := models.Member{ID: 2, DisplayName: "Bob", Points: 500, YearsOfExperience: 10, Available: true}

	loose := Prioritize([]models.Member{passed, unpassed}, false)
	if loose[0].ID != unpassed.ID {
		t.Fatalf("expected high scorer first in loose mode, got member %d", loose[0].ID)
	}

	strict := Prioritize([]models.Member{passed, unpassed}, true)
	if strict[0].ID != passed.ID {
		t.Fatalf("expected passed member first in strict mode, got member %d", strict[0].ID)
	}
}

func TestPrioritizeKeepsEveryMember(t *testing.T) {
	members := []models.Member{
		{ID: 1, DisplayName: "Alice", Points: 0},
		{ID: 2, DisplayName: "Bob", Points: 10},
		{ID: 3, DisplayName: "Carol", InternalStatus: models.StatusInactive},
	}

	ordered := Prioritize(members, true)
	if len(ordered) != len(members) {
		t.Fatalf("prioritize must not filter: expected %d members, got %d", len(members), len(ordered))
	}
}

func TestPrioritizeTieBreakDeterministic(t *testing.T) {
	members := []models.Member{
		{ID: 2, DisplayName: "John", Points: 90},
		{ID: 1, DisplayName: "Jane", Points: 90},
	}

	first := Prioritize(members, false)
	if first[0].DisplayName != "Jane" {
		t.Fatalf("expected Jane before John on equal score, got %s", first[0].DisplayName)
	}
	for i := 0; i < 10; i++ {
		again := Prioritize(members, false)
		if again[0].ID != first[0].ID || again[1].ID != first[1].ID {
			t.Fatal("tie order changed between calls on unchanged input")
		}
	}
}

func TestPrioritizeDoesNotMutateInput(t *testing.T) {
	members := []models.Member{
		{ID: 1, DisplayName: "Low", Points: 1},
		{ID: 2, DisplayName: "High", Points: 100},
	}

	Prioritize(members, false)
	if members[0].ID != 1 || members[1].ID != 2 {
		t.Fatal("input slice order changed")
	}
}
