package util

import (
	"strconv"
	"strings"
	"time"
)

// ResolveRelativeDate turns a board's human relative-date string ("today",
// "yesterday", "3 days ago") into a calendar date anchored on now. Anything
// it does not recognize comes back nil; callers treat that as an absent date,
// never as an error.
func ResolveRelativeDate(text string, now time.Time) *time.Time {
	text = CleanText(text)
	if text == "" {
		return nil
	}

	day := func(t time.Time) *time.Time {
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return &d
	}

	low := strings.ToLower(text)
	switch {
	case strings.Contains(low, "today"):
		return day(now)
	case strings.Contains(low, "yesterday"), strings.Contains(low, "1 day ago"):
		return day(now.AddDate(0, 0, -1))
	case strings.Contains(low, "days ago"):
		n, err := strconv.Atoi(strings.Fields(text)[0])
		if err != nil {
			return nil
		}
		return day(now.AddDate(0, 0, -n))
	}
	return nil
}

// ParseAbsoluteDate handles the date shapes seen on API sources: RFC3339,
// plain YYYY-MM-DD, and epoch seconds/milliseconds as a string.
func ParseAbsoluteDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		var t time.Time
		if n >= 1_000_000_000_000 {
			t = time.UnixMilli(n).UTC()
		} else {
			t = time.Unix(n, 0).UTC()
		}
		return &t
	}
	return nil
}
