package util

import (
	"strings"

	"jobscout-engine/internal/domain"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// ClassifyWorkMode scans free text for work-mode keywords. Matching is
// case-sensitive and the tier order is fixed: a string containing several
// keywords resolves to the first matching tier, so "Onsite and Remote" is
// On-site, not Remote.
func ClassifyWorkMode(text string) domain.WorkMode {
	switch {
	case strings.Contains(text, "Onsite"):
		return domain.WorkModeOnsite
	case strings.Contains(text, "Hybrid"):
		return domain.WorkModeHybrid
	case strings.Contains(text, "Remote"):
		return domain.WorkModeRemote
	default:
		return domain.WorkModeUnknown
	}
}

// WorkModeFromRemoteFlag is the two-value form used by sources that expose
// remoteness as a boolean instead of free text. A false flag means on-site or
// hybrid without saying which; it maps to Hybrid.
func WorkModeFromRemoteFlag(remote bool) domain.WorkMode {
	if remote {
		return domain.WorkModeRemote
	}
	return domain.WorkModeHybrid
}
