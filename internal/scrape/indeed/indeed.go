// Package indeed parses the job-card JSON Indeed embeds in its result pages.
package indeed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/scrape/types"
)

// SalaryRange mirrors Indeed's extracted/estimated salary objects. Bounds are
// pointers because the site omits them on partial estimates.
type SalaryRange struct {
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Type string   `json:"type"`
}

// TaxonomyAttribute is one node of the nested attribute taxonomy attached to
// each card (job types, shifts, benefits, ...).
type TaxonomyAttribute struct {
	Label      string              `json:"label"`
	Attributes []TaxonomyAttribute `json:"attributes"`
}

// JobCard is the raw per-posting extraction from the embedded payload.
type JobCard struct {
	Company            string              `json:"company"`
	FormattedLocation  string              `json:"formattedLocation"`
	RemoteLocation     bool                `json:"remoteLocation"`
	EstimatedSalary    *SalaryRange        `json:"estimatedSalary"`
	ExtractedSalary    *SalaryRange        `json:"extractedSalary"`
	JobKey             string              `json:"jobkey"`
	PubDate            int64               `json:"pubDate"` // epoch milliseconds
	TaxonomyAttributes []TaxonomyAttribute `json:"taxonomyAttributes"`
	ViewJobLink        string              `json:"viewJobLink"` // site-relative
	Title              string              `json:"title"`
}

// Salary returns the card's salary range, preferring the extracted one over
// the site's estimate.
func (c JobCard) Salary() *SalaryRange {
	if c.ExtractedSalary != nil {
		return c.ExtractedSalary
	}
	return c.EstimatedSalary
}

// JobTypes walks the taxonomy for the first "job-types" labeled node and
// returns its first sub-attribute label ("" when the taxonomy has none).
func (c JobCard) JobTypes() string {
	for _, attr := range c.TaxonomyAttributes {
		if !strings.Contains(attr.Label, "job-types") {
			continue
		}
		for _, sub := range attr.Attributes {
			if sub.Label != "" {
				return sub.Label
			}
		}
		return ""
	}
	return ""
}

const scriptSel = "script#mosaic-data"

// providerPattern cuts the job-cards provider assignment out of the mosaic
// bootstrap script. Non-greedy so sibling providers on the same line are not
// swallowed.
var providerPattern = regexp.MustCompile(
	`(?s)window\.mosaic\.providerData\["mosaic-provider-jobcards"\]\s*=\s*(\{.*?\});`)

type mosaicPayload struct {
	MetaData struct {
		MosaicProviderJobCardsModel struct {
			Results []JobCard `json:"results"`
		} `json:"mosaicProviderJobCardsModel"`
	} `json:"metaData"`
}

// Extract locates the mosaic script block in one fetched page and decodes its
// job cards. A page without the block or without a matching assignment yields
// an empty slice, not an error.
func Extract(doc []byte, fctx types.FetchContext) ([]JobCard, error) {
	page, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("indeed parse html: %w", err)
	}

	script := page.Find(scriptSel).First()
	if script.Length() == 0 {
		log.Printf("[indeed] mosaic script block not found (keyword=%q page=%d)", fctx.Keyword, fctx.Page)
		return nil, nil
	}

	m := providerPattern.FindStringSubmatch(script.Text())
	if m == nil {
		log.Printf("[indeed] provider assignment not found in script block (keyword=%q page=%d)",
			fctx.Keyword, fctx.Page)
		return nil, nil
	}

	var payload mosaicPayload
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		return nil, fmt.Errorf("indeed decode provider payload: %w", err)
	}

	return payload.MetaData.MosaicProviderJobCardsModel.Results, nil
}
