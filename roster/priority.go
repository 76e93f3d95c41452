package roster

import (
	"sort"

	"codev-backend/models"
)

// Composite score weights. The score is monotone in points and in years of
// experience; status and availability act as fixed modifiers.
const (
	yearWeight       = 25
	experienceWeight = 10
	availableBonus   = 100
	graduatedBonus   = 50
	trainingBonus    = 30
)

// Score computes the display-priority score for one member. In strict mode
// members whose application has not passed score zero, sinking below every
// passed member.
func Score(m models.Member, strict bool) int {
	if strict && m.ApplicationStatus != models.ApplicationPassed {
		return 0
	}

	score := m.Points
	score += yearWeight * m.YearsOfExperience
	score += experienceWeight * m.WorkExperienceCount

	switch m.InternalStatus {
	case models.StatusGraduated:
		score += graduatedBonus
	case models.StatusTraining:
		score += trainingBonus
	}
	if m.Available {
		score += availableBonus
	}
	return score
}

// Prioritize orders a roster for the prioritized listing, highest score
// first. This is an ordering, not a filter: every member stays in the
// result. Ties break by ascending display name, then id, so repeated calls
// on the same roster always produce the same order.
func Prioritize(members []models.Member, strict bool) []models.Member {
	ordered := make([]models.Member, len(members))
	copy(ordered, members)

	scores := make(map[int]int, len(ordered))
	for _, m := range ordered {
		scores[m.ID] = Score(m, strict)
	}

	sort.Slice(ordered, func(i, j int) bool {
		si, sj := scores[ordered[i].ID], scores[ordered[j].ID]
		if si != sj {
			return si > sj
		}
		if ordered[i].DisplayName != ordered[j].DisplayName {
			return ordered[i].DisplayName < ordered[j].DisplayName
		}
		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}
