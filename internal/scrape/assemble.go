package scrape

import (
	"fmt"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/careerbuilder"
	"jobscout-engine/internal/scrape/dice"
	"jobscout-engine/internal/scrape/indeed"
	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/scrape/util"
)

// AssemblyError reports a raw listing that cannot become a record. The caller
// drops that listing and keeps going; it never aborts a page.
type AssemblyError struct {
	Source domain.Source
	Field  string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("%s: listing missing %s", e.Source, e.Field)
}

// FromCareerBuilder maps one markup listing onto the canonical record.
// Dates are relative phrases resolved against the fetch time; work mode comes
// from keyword classification of the location and title text.
func FromCareerBuilder(l careerbuilder.Listing, fctx types.FetchContext) (domain.Record, error) {
	if l.Title == "" {
		return domain.Record{}, &AssemblyError{Source: domain.SourceCareerBuilder, Field: "title"}
	}
	jobURL := util.AbsoluteURL(fctx.BaseURL, l.Href)
	if jobURL == "" {
		return domain.Record{}, &AssemblyError{Source: domain.SourceCareerBuilder, Field: "url"}
	}

	return domain.Record{
		JobID:          util.JobIDFromURL(jobURL),
		Title:          l.Title,
		Company:        l.Company,
		LocationText:   l.Location,
		WorkMode:       util.ClassifyWorkMode(l.Location + " " + l.Title),
		EmploymentType: l.EmploymentType,
		SalaryText:     l.ResultText,
		PostedDate:     util.ResolveRelativeDate(l.PublishTime, fctx.RetrievedAt),
		URL:            jobURL,
		Source:         domain.SourceCareerBuilder,
		RetrievedAt:    fctx.RetrievedAt,
	}, nil
}

// FromIndeed maps one embedded-JSON job card onto the canonical record.
func FromIndeed(c indeed.JobCard, fctx types.FetchContext) (domain.Record, error) {
	if c.Title == "" {
		return domain.Record{}, &AssemblyError{Source: domain.SourceIndeed, Field: "title"}
	}
	jobURL := util.AbsoluteURL(fctx.BaseURL, c.ViewJobLink)
	if jobURL == "" {
		return domain.Record{}, &AssemblyError{Source: domain.SourceIndeed, Field: "url"}
	}

	var salary string
	if s := c.Salary(); s != nil {
		salary = util.FormatSalaryRange(s.Min, s.Max, s.Type)
	}

	var posted *time.Time
	if c.PubDate > 0 {
		t := time.UnixMilli(c.PubDate).UTC()
		posted = &t
	}

	return domain.Record{
		JobID:          c.JobKey,
		Title:          c.Title,
		Company:        c.Company,
		LocationText:   c.FormattedLocation,
		WorkMode:       util.WorkModeFromRemoteFlag(c.RemoteLocation),
		EmploymentType: c.JobTypes(),
		SalaryText:     salary,
		PostedDate:     posted,
		URL:            jobURL,
		Source:         domain.SourceIndeed,
		RetrievedAt:    fctx.RetrievedAt,
	}, nil
}

// FromDice maps one REST item onto the canonical record. Dice links are
// already absolute and its salary is free text, carried verbatim.
func FromDice(it dice.Item, fctx types.FetchContext) (domain.Record, error) {
	if it.Title == "" {
		return domain.Record{}, &AssemblyError{Source: domain.SourceDice, Field: "title"}
	}
	if it.DetailsPageURL == "" {
		return domain.Record{}, &AssemblyError{Source: domain.SourceDice, Field: "url"}
	}

	return domain.Record{
		JobID:          it.ID,
		Title:          it.Title,
		Company:        it.CompanyName,
		LocationText:   it.LocationName(),
		WorkMode:       util.WorkModeFromRemoteFlag(it.IsRemote),
		EmploymentType: it.EmploymentType,
		SalaryText:     util.CleanText(it.Salary),
		PostedDate:     util.ParseAbsoluteDate(it.PostedDate),
		URL:            it.DetailsPageURL,
		Source:         domain.SourceDice,
		RetrievedAt:    fctx.RetrievedAt,
	}, nil
}
