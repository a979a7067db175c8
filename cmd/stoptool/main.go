package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"ride-view-service/internal/adapters/backend"
	"ride-view-service/internal/adapters/cache"
	"ride-view-service/internal/adapters/repositories"
	"ride-view-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// stoptool snapshots the backend's stop directory into the shared
// Postgres cache, so server instances can start without hitting the
// backend.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	backendURL := os.Getenv("BACKEND_URL")
	if strings.TrimSpace(backendURL) == "" {
		log.Fatal("BACKEND_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing stop cache schema...")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	client, err := backend.NewClient(backendURL)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stops, err := client.ListStops(ctx)
	if err != nil {
		log.Fatalf("fetching stops failed: %v", err)
	}
	if len(stops) == 0 {
		log.Fatal("backend returned no stops")
	}

	if err := cache.NewSQLStopCache(pg).PutAll(ctx, stops); err != nil {
		log.Fatalf("caching stops failed: %v", err)
	}

	log.Printf("Stop cache refreshed count=%d", len(stops))
}
