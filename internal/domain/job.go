package domain

import "time"

// Source identifies which board a record came from.
type Source string

const (
	SourceCareerBuilder Source = "careerbuilder"
	SourceIndeed        Source = "indeed"
	SourceDice          Source = "dice"
)

// CSVName is the label used in output file names.
func (s Source) CSVName() string {
	switch s {
	case SourceCareerBuilder:
		return "CareerBuilder"
	case SourceIndeed:
		return "Indeed"
	case SourceDice:
		return "Dice"
	}
	return string(s)
}

// WorkMode is the location arrangement of a posting.
type WorkMode string

const (
	WorkModeOnsite  WorkMode = "On-site"
	WorkModeHybrid  WorkMode = "Hybrid"
	WorkModeRemote  WorkMode = "Remote"
	WorkModeUnknown WorkMode = "Unknown"
)

// Record is the normalized, source-independent posting. The assembler builds
// it once; nothing mutates it afterwards.
type Record struct {
	JobID          string
	Title          string
	Company        string
	LocationText   string
	WorkMode       WorkMode
	EmploymentType string
	SalaryText     string
	PostedDate     *time.Time // nil when the source date could not be parsed
	URL            string
	Source         Source
	RetrievedAt    time.Time
}

// SourceID is the store identity: a posting is the same posting across runs
// iff source and job id match.
func (r Record) SourceID() string {
	return string(r.Source) + ":" + r.JobID
}

// DedupKey collapses exact-duplicate listings within a run. Two records equal
// under this key are the same listing seen twice (e.g. on adjacent pages).
func (r Record) DedupKey() string {
	return string(r.Source) + "\x00" + r.JobID + "\x00" + r.Title + "\x00" +
		r.Company + "\x00" + r.LocationText + "\x00" + r.SalaryText
}
