// Package export writes run results as dated per-source CSV files, the
// tabular handoff format downstream spreadsheets consume.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"jobscout-engine/internal/domain"
)

var header = []string{
	"job_id", "title", "company", "location", "work_mode",
	"employment_type", "salary", "posted_date", "url", "source", "retrieved_at",
}

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns today's output file for a source:
// <dir>/<YYYY-MM-DD>/output_<Source>.csv
func (w *Writer) Path(src domain.Source, day time.Time) string {
	return filepath.Join(w.dir, day.Format("2006-01-02"),
		fmt.Sprintf("output_%s.csv", src.CSVName()))
}

// WriteRecords writes one source's records. With appendMode the rows are
// added to an existing file (header only when the file is new); otherwise the
// file is replaced. A sidecar flock serializes concurrent writers on the same
// file. Zero records is a no-op.
func (w *Writer) WriteRecords(src domain.Source, recs []domain.Record, day time.Time, appendMode bool) (string, error) {
	if len(recs) == 0 {
		return "", nil
	}

	path := w.Path(src, day)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}

	cw := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := cw.Write(header); err != nil {
			return "", err
		}
	}

	for _, r := range recs {
		posted := ""
		if r.PostedDate != nil {
			posted = r.PostedDate.Format("2006-01-02")
		}
		row := []string{
			r.JobID,
			r.Title,
			r.Company,
			r.LocationText,
			string(r.WorkMode),
			r.EmploymentType,
			r.SalaryText,
			posted,
			r.URL,
			string(r.Source),
			r.RetrievedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return path, nil
}
