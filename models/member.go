package models

import "time"

// Role ids for the roster scope served by the prioritized listing.
const (
	RoleIntern = 3
	RoleCodev  = 4
)

type InternalStatus string

const (
	StatusTraining  InternalStatus = "TRAINING"
	StatusGraduated InternalStatus = "GRADUATED"
	StatusDeployed  InternalStatus = "DEPLOYED"
	StatusInactive  InternalStatus = "INACTIVE"
	StatusAdmin     InternalStatus = "ADMIN"
	StatusMentor    InternalStatus = "MENTOR"
)

const ApplicationPassed = "passed"

// Member listings share the subjectId/displayName vocabulary of the
// leaderboard endpoints.
type Member struct {
	ID                  int            `json:"subjectId"`
	DisplayName         string         `json:"displayName"`
	RoleID              int            `json:"role"`
	Points              int            `json:"points"`
	InternalStatus      InternalStatus `json:"internalStatus,omitempty"`
	ApplicationStatus   string         `json:"applicationStatus"`
	Available           bool           `json:"available"`
	YearsOfExperience   int            `json:"yearsOfExperience"`
	WorkExperienceCount int            `json:"workExperienceCount"`
	JoinedAt            time.Time      `json:"joinedAt"`
}
