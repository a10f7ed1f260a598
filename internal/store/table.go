package store

import "database/sql"

// Migrate brings the schema to the current version. Versioned through
// PRAGMA user_version so re-running is a no-op.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL,
  job_id TEXT NOT NULL,
  title TEXT NOT NULL,
  company TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  work_mode TEXT NOT NULL DEFAULT 'Unknown',
  employment_type TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL,
  retrieved_at TEXT NOT NULL,
  run_id TEXT NOT NULL DEFAULT '',
  source_id TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_source_id ON jobs(source_id);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  finished_at TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'running',
  records_total INTEGER NOT NULL DEFAULT 0,
  records_added INTEGER NOT NULL DEFAULT 0
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
