package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres stop-cache schema (used by cmd/stoptool and
// deployments sharing one cache across instances).
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		id BIGINT PRIMARY KEY,
		no TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		bearing DOUBLE PRECISION NOT NULL DEFAULT 0,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	if _, err := db.Exec(createStopsQuery); err != nil {
		return fmt.Errorf("init schema: create stops table: %w", err)
	}

	return nil
}
