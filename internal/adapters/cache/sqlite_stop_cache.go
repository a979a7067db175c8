package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ride-view-service/internal/domain"
)

// SQLite-backed cache for the session's stop directory, for single-node
// local runs where a Postgres or Redis instance would be overkill.
type SqliteStopCache struct {
	DB *sql.DB
}

func NewSqliteStopCache(db *sql.DB) *SqliteStopCache {
	return &SqliteStopCache{DB: db}
}

// Fetch the cached stop list; an empty table is a miss, not an error.
func (s *SqliteStopCache) GetAll(ctx context.Context) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("stop cache: db is nil")
	}

	q := `
	SELECT id, no, name, type, bearing, latitude, longitude
    FROM stops
    ORDER BY id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get stop cache: query stops table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Stop, 0, 64)
	for rows.Next() {
		var st domain.Stop
		if err := rows.Scan(&st.ID, &st.No, &st.Name, &st.Type, &st.Bearing, &st.Latitude, &st.Longitude); err != nil {
			return nil, fmt.Errorf("get stop cache: scan rows: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get stop cache: row iteration: %w", err)
	}

	return out, nil
}

// Replace the cached stop list wholesale.
func (s *SqliteStopCache) PutAll(ctx context.Context, stops []domain.Stop) error {
	if s.DB == nil {
		return errors.New("stop cache: db is nil")
	}

	if len(stops) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert stop cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO stops (id, no, name, type, bearing, latitude, longitude)
    VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert stop cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, st := range stops {
		if _, err := stmt.ExecContext(ctx, st.ID, st.No, st.Name, st.Type, st.Bearing, st.Latitude, st.Longitude); err != nil {
			return fmt.Errorf("insert stop cache id=%d: %w", st.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert stop cache commit: %w", err)
	}

	return nil
}
