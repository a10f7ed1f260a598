package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobscout-engine/internal/domain"
)

// InsertRecordIfNew persists one canonical record unless a posting with the
// same source id already exists. Returns whether a row was added.
func InsertRecordIfNew(ctx context.Context, db *sql.DB, rec domain.Record, runID string) (bool, error) {
	if rec.URL == "" {
		return false, errors.New("missing url")
	}

	posted := ""
	if rec.PostedDate != nil {
		posted = rec.PostedDate.Format("2006-01-02")
	}

	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs(source, job_id, title, company, location, work_mode, employment_type, salary, posted_date, url, retrieved_at, run_id, source_id)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		string(rec.Source),
		rec.JobID,
		rec.Title,
		rec.Company,
		rec.LocationText,
		string(rec.WorkMode),
		rec.EmploymentType,
		rec.SalaryText,
		posted,
		rec.URL,
		rec.RetrievedAt.UTC().Format(time.RFC3339),
		runID,
		rec.SourceID(),
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
