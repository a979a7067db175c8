package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"ride-view-service/internal/adapters/backend"
	"ride-view-service/internal/adapters/cache"
	"ride-view-service/internal/adapters/repositories"
	"ride-view-service/internal/api"
	"ride-view-service/internal/domain"
	"ride-view-service/internal/platform/db"
	"ride-view-service/internal/ports"
	"ride-view-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (backend API, stop caches) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	backendURL := getEnv("BACKEND_URL", "http://localhost:8080")
	port := getEnv("PORT", "8081")

	policy, err := services.ParseDistancePolicy(os.Getenv("DISTANCE_POLICY"))
	if err != nil {
		log.Fatal(err)
	}

	client, err := backend.NewClient(backendURL)
	if err != nil {
		log.Fatal(err)
	}

	stopCache, closeCache, err := openStopCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	// The stop directory is loaded once per session; orders are fetched
	// fresh on every projection request.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	stops, err := loadStops(ctx, stopCache, client)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Stop directory ready count=%d", stops.Len())

	router := api.NewRouter(stops, client, policy)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStopCache picks a stop-cache backend: Redis when REDIS_ADDR is
// set, Postgres when DATABASE_URL is set, a local SQLite file
// otherwise.
func openStopCache() (ports.StopCache, func(), error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		return cache.NewRedisStopCache(client, 24*time.Hour), func() { _ = client.Close() }, nil
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		pg, err := db.Open(url)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return cache.NewSQLStopCache(pg), func() { _ = pg.Close() }, nil
	}

	path := getEnv("STOP_CACHE_PATH", "data/stops.db")
	lite, err := openSqlite(path)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}

	// Optional local stop dump, for runs without a reachable backend.
	if seedPath := os.Getenv("STOPS_SEED_PATH"); seedPath != "" {
		if err := repositories.SeedFromJSON(lite, seedPath); err != nil {
			lite.Close()
			return nil, nil, err
		}
	}

	return cache.NewSqliteStopCache(lite), func() { _ = lite.Close() }, nil
}

func openSqlite(path string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", path, err)
	}

	return lite, nil
}

// loadStops serves the directory from cache when possible and falls
// back to the backend, refreshing the cache on the way.
func loadStops(ctx context.Context, stopCache ports.StopCache, source ports.StopSource) (*domain.StopIndex, error) {
	stops, err := stopCache.GetAll(ctx)
	if err != nil {
		log.Printf("stop cache read failed: %v", err)
		stops = nil
	}

	if len(stops) == 0 {
		stops, err = source.ListStops(ctx)
		if err != nil {
			return nil, fmt.Errorf("load stops: %w", err)
		}
		if err := stopCache.PutAll(ctx, stops); err != nil {
			log.Printf("stop cache write failed: %v", err)
		}
	}

	if len(stops) == 0 {
		return nil, fmt.Errorf("load stops: no stops available")
	}

	return domain.NewStopIndex(stops), nil
}
