package scrape

import (
	"strings"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/domain"
)

// ShouldKeepRecord applies the run-level record filters. Today that is only
// the employment-type blocklist (e.g. dropping Full-time postings when the
// run targets contract work).
func ShouldKeepRecord(cfg config.Config, r domain.Record) (keep bool, reason string) {
	et := strings.ToLower(strings.TrimSpace(r.EmploymentType))
	for _, b := range cfg.Filters.EmploymentTypesBlock {
		if et == strings.ToLower(strings.TrimSpace(b)) {
			return false, "employment_type"
		}
	}
	return true, ""
}
