package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	currency    = message.NewPrinter(language.AmericanEnglish)
	periodCaser = cases.Title(language.AmericanEnglish)
)

// FormatSalaryRange renders "$MIN - $MAX a PERIOD" with comma-grouped
// two-decimal amounts. Any absent input yields "". When min equals max the
// MIN side renders as $0.00; the upstream site has always shown equal-bound
// ranges this way and downstream consumers key on the literal string.
func FormatSalaryRange(min, max *float64, period string) string {
	period = strings.TrimSpace(period)
	if min == nil || max == nil || period == "" {
		return ""
	}

	lo := "$0.00"
	if *min != *max {
		lo = currency.Sprintf("$%.2f", *min)
	}
	hi := currency.Sprintf("$%.2f", *max)

	return lo + " - " + hi + " a " + periodCaser.String(strings.ToLower(period))
}
