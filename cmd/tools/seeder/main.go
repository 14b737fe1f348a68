// Seeder inserts a fixed set of demo sessions so the dashboard has
// something to show. Demonstration helper only, not part of the API.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/quddos/vr-rehab-dashboard/internal/config"
	sessionModel "github.com/quddos/vr-rehab-dashboard/internal/model/session"
	"github.com/quddos/vr-rehab-dashboard/internal/store"
)

var samples = []sessionModel.Payload{
	{
		SessionID:       "UNITY-001",
		Smoothness:      0.82,
		TimeScore:       0.74,
		FinalScore:      0.78,
		Duration:        320,
		LeftSmoothness:  0.85,
		RightSmoothness: 0.79,
		Date:            "2025-03-24T10:30:00Z",
	},
	{
		SessionID:       "UNITY-002",
		Smoothness:      0.76,
		TimeScore:       0.69,
		FinalScore:      0.72,
		Duration:        295,
		LeftSmoothness:  0.71,
		RightSmoothness: 0.77,
		Date:            "2025-03-26T09:00:00Z",
	},
	{
		SessionID:       "UNITY-003",
		Smoothness:      0.88,
		TimeScore:       0.81,
		FinalScore:      0.86,
		Duration:        340,
		LeftSmoothness:  0.9,
		RightSmoothness: 0.85,
		Date:            "2025-03-29T13:15:00Z",
	},
	{
		SessionID:       "UNITY-004",
		Smoothness:      0.69,
		TimeScore:       0.61,
		FinalScore:      0.65,
		Duration:        280,
		LeftSmoothness:  0.58,
		RightSmoothness: 0.7,
		Date:            "2025-04-01T08:45:00Z",
	},
	{
		SessionID:       "UNITY-005",
		Smoothness:      0.8,
		TimeScore:       0.76,
		FinalScore:      0.82,
		Duration:        330,
		LeftSmoothness:  0.84,
		RightSmoothness: 0.78,
		Date:            "2025-04-05T11:20:00Z",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file, using system environment variables: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.Database.DSN == "" {
		log.Fatal("DATABASE_URL is not defined. Make sure it exists in .env or the shell.")
	}

	sessionStore := store.New(cfg.Database.DSN)
	defer sessionStore.Close()

	ctx := context.Background()

	log.Printf("Seeding %d VR rehab sessions...", len(samples))
	for _, sample := range samples {
		if err := sessionStore.Insert(ctx, sample); err != nil {
			log.Fatalf("failed to seed %s: %v", sample.SessionID, err)
		}
		log.Printf("• %s seeded", sample.SessionID)
	}
	log.Println("Seed complete.")
}
