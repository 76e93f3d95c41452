package roster

import (
	"fmt"

	"codev-backend/models"
)

// GraduationPoints is the cumulative skill-point bar for the public
// showcase listing.
const GraduationPoints = 100

var excludedStatuses = map[models.InternalStatus]bool{
	models.StatusInactive: true,
	models.StatusDeployed: true,
	models.StatusAdmin:    true,
	models.StatusMentor:   true,
}

var activeStatuses = map[models.InternalStatus]bool{
	models.StatusTraining:  true,
	models.StatusGraduated: true,
}

// Qualifies reports whether a member is eligible for the public showcase.
// Pure predicate: same snapshot in, same answer out.
func Qualifies(m models.Member) bool {
	return Disqualification(m) == ""
}

// Disqualification returns the first reason a member fails the showcase
// rule, or "" if the member qualifies. The excluded-status check runs
// before the active-set check, so an excluded member never qualifies on
// points alone.
func Disqualification(m models.Member) string {
	if excludedStatuses[m.InternalStatus] {
		return fmt.Sprintf("status %s is excluded", m.InternalStatus)
	}
	// An unset status is a legacy record, treated as active.
	if m.InternalStatus != "" && !activeStatuses[m.InternalStatus] {
		return fmt.Sprintf("status %s is not active", m.InternalStatus)
	}
	if m.Points < GraduationPoints {
		return fmt.Sprintf("points %d below graduation bar %d", m.Points, GraduationPoints)
	}
	if m.ApplicationStatus != models.ApplicationPassed {
		return fmt.Sprintf("application status %q has not passed", m.ApplicationStatus)
	}
	if !m.Available {
		return "not available"
	}
	return ""
}
