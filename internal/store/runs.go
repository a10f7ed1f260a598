package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// StartRun records the beginning of one scrape run and returns its id.
func StartRun(ctx context.Context, db *sql.DB) (string, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO runs(id, started_at) VALUES(?, ?);`,
		id, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// FinishRun closes out a run row with its outcome counts.
func FinishRun(ctx context.Context, db *sql.DB, runID, status string, total, added int) error {
	_, err := db.ExecContext(ctx, `
UPDATE runs
SET finished_at = ?, status = ?, records_total = ?, records_added = ?
WHERE id = ?;`,
		time.Now().UTC().Format(time.RFC3339), status, total, added, runID,
	)
	return err
}
