package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"codev-backend/database"
	"codev-backend/models"
	"codev-backend/roster"
)

// GetPrioritizedMembers returns the intern/codev roster ordered by the
// priority scorer. No qualification filter is applied here: this listing
// shows everyone in scope, only the order changes.
func GetPrioritizedMembers(c *fiber.Ctx) error {
	strict := c.QueryBool("strict")

	members, err := fetchRoster(c)
	if err != nil {
		log.Println("Error when querying members:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	return c.JSON(roster.Prioritize(members, strict))
}

// GetShowcaseMembers returns only the members passing the public showcase
// qualification rule.
func GetShowcaseMembers(c *fiber.Ctx) error {
	members, err := fetchRoster(c)
	if err != nil {
		log.Println("Error when querying members:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	qualified := make([]models.Member, 0, len(members))
	for _, m := range members {
		if reason := roster.Disqualification(m); reason != "" {
			log.Printf("member %d excluded from showcase: %s", m.ID, reason)
			continue
		}
		qualified = append(qualified, m)
	}

	// Showcase keeps the prioritized order for the members that remain.
	return c.JSON(roster.Prioritize(qualified, true))
}

func fetchRoster(c *fiber.Ctx) ([]models.Member, error) {
	rows, err := database.DB.QueryContext(c.Context(), `
		SELECT
			m.id, m.display_name, m.role_id,
			COALESCE(m.internal_status, ''), COALESCE(m.application_status, ''),
			m.available, m.years_of_experience, m.joined_at,
			COALESCE(p.total, 0) AS points,
			COALESCE(w.total, 0) AS work_experiences
		FROM members m
		LEFT JOIN (
			SELECT subject_id, SUM(points) AS total
			FROM point_events
			WHERE kind = 'skill'
			GROUP BY subject_id
		) p ON p.subject_id = m.id
		LEFT JOIN (
			SELECT member_id, COUNT(*) AS total
			FROM work_experiences
			GROUP BY member_id
		) w ON w.member_id = m.id
		WHERE m.role_id IN ($1, $2)
	`, models.RoleIntern, models.RoleCodev)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		var status string
		if err := rows.Scan(
			&m.ID, &m.DisplayName, &m.RoleID,
			&status, &m.ApplicationStatus,
			&m.Available, &m.YearsOfExperience, &m.JoinedAt,
			&m.Points, &m.WorkExperienceCount,
		); err != nil {
			return nil, err
		}
		m.InternalStatus = models.InternalStatus(status)
		members = append(members, m)
	}
	return members, rows.Err()
}
