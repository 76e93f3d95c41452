package controllers

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"codev-backend/leaderboard"
)

// Leaderboards is wired in main once the database connection exists.
var Leaderboards *leaderboard.Service

const defaultLimit = 10

type TechnicalLeader struct {
	SubjectID    string    `json:"subjectId"`
	DisplayName  string    `json:"displayName"`
	TotalPoints  int       `json:"totalPoints"`
	LatestUpdate time.Time `json:"latestUpdate"`
}

type SoftSkillsLeader struct {
	SubjectID        string `json:"subjectId"`
	DisplayName      string `json:"displayName"`
	AttendancePoints int    `json:"attendancePoints"`
	ProfilePoints    int    `json:"profilePoints"`
	TotalPoints      int    `json:"totalPoints"`
}

type ProjectLeader struct {
	ProjectID   string         `json:"projectId"`
	ProjectName string         `json:"projectName"`
	TotalPoints int            `json:"totalPoints"`
	MemberCount int            `json:"memberCount"`
	Breakdown   map[string]int `json:"breakdown"`
}

func GetTechnicalLeaderboard(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category is required"})
	}

	window, err := parseWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	board, err := Leaderboards.TopTechnical(c.Context(), category, window, limit)
	if err != nil {
		return leaderboardError(c, err)
	}

	leaders := make([]TechnicalLeader, 0, len(board.Entries))
	for _, e := range board.Entries {
		leaders = append(leaders, TechnicalLeader{
			SubjectID:    e.SubjectID,
			DisplayName:  e.DisplayName,
			TotalPoints:  e.TotalPoints,
			LatestUpdate: e.LatestUpdate,
		})
	}

	return c.JSON(fiber.Map{"leaders": leaders, "totalCount": board.TotalCount})
}

func GetSoftSkillsLeaderboard(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	board, err := Leaderboards.TopSoftSkills(c.Context(), limit)
	if err != nil {
		return leaderboardError(c, err)
	}

	leaders := make([]SoftSkillsLeader, 0, len(board.Entries))
	for _, e := range board.Entries {
		leaders = append(leaders, SoftSkillsLeader{
			SubjectID:        e.SubjectID,
			DisplayName:      e.DisplayName,
			AttendancePoints: e.AttendancePoints,
			ProfilePoints:    e.ProfilePoints,
			TotalPoints:      e.TotalPoints,
		})
	}

	return c.JSON(fiber.Map{"leaders": leaders, "totalCount": board.TotalCount})
}

func GetProjectLeaderboard(c *fiber.Ctx) error {
	window, err := parseWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	board, err := Leaderboards.TopProjects(c.Context(), window, limit)
	if err != nil {
		return leaderboardError(c, err)
	}

	leaders := make([]ProjectLeader, 0, len(board.Entries))
	for _, e := range board.Entries {
		leaders = append(leaders, ProjectLeader{
			ProjectID:   e.SubjectID,
			ProjectName: e.DisplayName,
			TotalPoints: e.TotalPoints,
			MemberCount: e.MemberCount,
			Breakdown:   e.Breakdown,
		})
	}

	return c.JSON(fiber.Map{"leaders": leaders, "totalCount": board.TotalCount})
}

func parseWindow(c *fiber.Ctx) (leaderboard.Window, error) {
	raw := c.Query("timeFilter")
	if raw == "" {
		return leaderboard.WindowAll, nil
	}
	return leaderboard.ParseWindow(raw)
}

func parseLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer")
	}
	if err := leaderboard.ValidateLimit(limit); err != nil {
		return 0, err
	}
	return limit, nil
}

func leaderboardError(c *fiber.Ctx, err error) error {
	log.Println("leaderboard request failed:", err)
	body := fiber.Map{"error": "Failed to load leaderboard"}
	if os.Getenv("APP_ENV") == "development" {
		body["detail"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
