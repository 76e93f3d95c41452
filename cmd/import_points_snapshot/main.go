package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"codev-backend/database"
	"codev-backend/leaderboard"
)

func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	var (
		csvPath     = flag.String("csv", "", "Path to CSV file containing point events")
		defaultDate = flag.String("date", "", "Fallback date (YYYY-MM-DD) for rows without occurred_at")
	)
	flag.Parse()

	if strings.TrimSpace(*csvPath) == "" {
		log.Fatal("--csv is required")
	}

	occurred := time.Now().UTC()
	if strings.TrimSpace(*defaultDate) != "" {
		parsed, err := time.Parse("2006-01-02", *defaultDate)
		if err != nil {
			log.Fatalf("invalid --date value: %v", err)
		}
		occurred = parsed
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv file: %v", err)
	}
	defer file.Close()

	events, err := leaderboard.ParseEventsCSV(file)
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}

	database.ConnectDB()
	repo := leaderboard.NewPostgresRepository(database.DB)

	inserted, err := repo.ImportEvents(context.Background(), events, occurred)
	if err != nil {
		log.Fatalf("import point events: %v", err)
	}

	fmt.Printf("Imported %d point events\n", inserted)
}
