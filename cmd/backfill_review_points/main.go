package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"codev-backend/leaderboard"
)

// Pulls the weekly code-review scoreboard published as an HTML page and
// backfills the scores as skill point events under the Code Review
// category.

type report struct {
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Summary    map[string]int `json:"summary"`
	Exceptions []string       `json:"exceptions"`
	RunID      string         `json:"run_id"`
}

type reviewScore struct {
	email  string
	points int
}

func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	boardURL := os.Getenv("REVIEW_BOARD_URL")
	if strings.TrimSpace(boardURL) == "" {
		log.Fatal("REVIEW_BOARD_URL is not set")
	}

	dsn := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	r := &report{
		StartedAt: time.Now().UTC(),
		Summary:   map[string]int{},
		RunID:     uuid.NewString(),
	}
	if err := runBackfill(db, boardURL, r); err != nil {
		log.Fatalf("backfill failed: %v", err)
	}
	r.FinishedAt = time.Now().UTC()

	if err := writeReport(r); err != nil {
		log.Fatalf("write report: %v", err)
	}

	log.Printf("backfill complete: %+v", r.Summary)
}

func runBackfill(db *sql.DB, boardURL string, r *report) error {
	scores, err := scrapeScores(boardURL)
	if err != nil {
		return err
	}
	r.Summary["scoreboard_rows"] = len(scores)

	occurredAt := time.Now().UTC()
	repo := leaderboard.NewPostgresRepository(db)

	var events []leaderboard.PointEvent
	for _, score := range scores {
		memberID, err := memberIDByEmail(db, score.email)
		if err != nil {
			r.Exceptions = append(r.Exceptions, fmt.Sprintf("member %s: %v", score.email, err))
			continue
		}
		events = append(events, leaderboard.PointEvent{
			SubjectID:  strconv.FormatInt(memberID, 10),
			Category:   "Code Review",
			Kind:       leaderboard.EventSkill,
			Points:     score.points,
			OccurredAt: occurredAt,
		})
	}

	inserted, err := repo.ImportEvents(context.Background(), events, occurredAt)
	if err != nil {
		return fmt.Errorf("import review events: %w", err)
	}
	r.Summary["inserted_events"] = int(inserted)
	return nil
}

func scrapeScores(boardURL string) ([]reviewScore, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(boardURL)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse scoreboard html: %w", err)
	}

	var scores []reviewScore
	doc.Find("table.scoreboard tbody tr").Each(func(_ int, row *goquery.Selection) {
		email := strings.TrimSpace(row.Find("td.reviewer").Text())
		pointsText := strings.TrimSpace(row.Find("td.points").Text())
		if email == "" || pointsText == "" {
			return
		}
		points, err := strconv.Atoi(pointsText)
		if err != nil || points <= 0 {
			return
		}
		scores = append(scores, reviewScore{email: email, points: points})
	})

	if len(scores) == 0 {
		return nil, fmt.Errorf("no scoreboard rows found at %s", boardURL)
	}
	return scores, nil
}

func memberIDByEmail(db *sql.DB, email string) (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT id FROM members WHERE LOWER(email) = LOWER($1)`, email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("lookup by email: %w", err)
	}
	return id, nil
}

func writeReport(r *report) error {
	if err := os.MkdirAll("reports", 0o755); err != nil {
		return err
	}
	path := filepath.Join("reports", fmt.Sprintf("review_backfill_%s.json", r.StartedAt.Format("20060102T150405Z")))
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
