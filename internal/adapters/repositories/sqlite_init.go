package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite stop-cache schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		id INTEGER PRIMARY KEY,
		no TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		bearing REAL NOT NULL DEFAULT 0,
		latitude REAL NOT NULL DEFAULT 0,
		longitude REAL NOT NULL DEFAULT 0
	);
	`

	if _, err := db.Exec(createStopsQuery); err != nil {
		return fmt.Errorf("init schema: create stops table: %w", err)
	}

	return nil
}

type StopSeed struct {
	ID        int64   `json:"id"`
	No        string  `json:"no"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Bearing   float64 `json:"bearing"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Populate the stop cache from a JSON stop dump, for local runs without
// a reachable backend.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stops: read %q: %w", jsonPath, err)
	}

	var data []StopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stops: parse json: %w", err)
	}

	rows := make([]StopSeed, 0, len(data))
	for i, item := range data {
		if item.ID <= 0 {
			return fmt.Errorf("seed stops: invalid stop id at index %d: %d", i+1, item.ID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed stops: item at index %d: name cannot be empty", i+1)
		}
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO stops (id, no, name, type, bearing, latitude, longitude)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.ID, s.No, s.Name, s.Type, s.Bearing, s.Latitude, s.Longitude); err != nil {
			return fmt.Errorf("seed stops: insert id=%d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}
